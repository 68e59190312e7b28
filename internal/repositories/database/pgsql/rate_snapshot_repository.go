package pgsql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
	"github.com/wishinsured/fx_backend/internal/utils/mapping"
)

// snapshotsKept bounds the history retained; at an hourly refresh this is a
// day of tables.
const snapshotsKept = 24

// PgxRateSnapshotRepository implements the rate snapshot repository port using pgxpool.
type PgxRateSnapshotRepository struct {
	BaseRepository
}

func newPgxRateSnapshotRepository(db *pgxpool.Pool) *PgxRateSnapshotRepository {
	return &PgxRateSnapshotRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindLatestSnapshot retrieves the most recently fetched rate table.
func (r *PgxRateSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error) {
	query := `
		SELECT snapshot_id, base_code, rates_json, fetched_at
		FROM rate_snapshots
		ORDER BY fetched_at DESC
		LIMIT 1;
	`

	var m models.RateSnapshot
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.SnapshotID, &m.BaseCode, &m.RatesJSON, &m.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate snapshot stored")
		}
		return nil, apperrors.NewAppError(500, "failed to find rate snapshot", err)
	}

	table, err := mapping.ToDomainRateTable(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode rate snapshot", err)
	}
	return &table, nil
}

// SaveSnapshot persists a fetched rate table and prunes old rows in the same
// transaction.
func (r *PgxRateSnapshotRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	m, err := mapping.ToModelRateSnapshot(table, uuid.NewString())
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode rate snapshot", err)
	}

	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO rate_snapshots (snapshot_id, base_code, rates_json, fetched_at)
			VALUES ($1, $2, $3, $4);`,
			m.SnapshotID, m.BaseCode, m.RatesJSON, m.FetchedAt,
		); err != nil {
			return apperrors.NewAppError(500, "failed to save rate snapshot", err)
		}
		if _, err := tx.Exec(ctx, `
			DELETE FROM rate_snapshots
			WHERE snapshot_id NOT IN (
				SELECT snapshot_id FROM rate_snapshots
				ORDER BY fetched_at DESC
				LIMIT $1
			);`, snapshotsKept,
		); err != nil {
			return apperrors.NewAppError(500, "failed to prune rate snapshots", err)
		}
		return nil
	})
}
