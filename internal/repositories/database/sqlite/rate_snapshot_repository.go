package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
	"github.com/wishinsured/fx_backend/internal/utils/mapping"
)

// snapshotsKept bounds the history retained; at an hourly refresh this is a
// day of tables.
const snapshotsKept = 24

// SQLiteRateSnapshotRepository implements the rate snapshot repository port
// on database/sql.
type SQLiteRateSnapshotRepository struct {
	BaseRepository
}

func newSQLiteRateSnapshotRepository(db *sql.DB) *SQLiteRateSnapshotRepository {
	return &SQLiteRateSnapshotRepository{BaseRepository: BaseRepository{DB: db}}
}

// FindLatestSnapshot retrieves the most recently fetched rate table.
func (r *SQLiteRateSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error) {
	query := `
		SELECT snapshot_id, base_code, rates_json, fetched_at
		FROM rate_snapshots
		ORDER BY fetched_at DESC
		LIMIT 1;
	`

	var m models.RateSnapshot
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&m.SnapshotID, &m.BaseCode, &m.RatesJSON, &m.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

// SaveSnapshot persists a fetched rate table and prunes old rows.
func (r *SQLiteRateSnapshotRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	m, err := mapping.ToModelRateSnapshot(table, uuid.NewString())
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode rate snapshot", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO rate_snapshots (snapshot_id, base_code, rates_json, fetched_at)
		VALUES (?, ?, ?, ?);`,
		m.SnapshotID, m.BaseCode, m.RatesJSON, m.FetchedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save rate snapshot", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		DELETE FROM rate_snapshots
		WHERE snapshot_id NOT IN (
			SELECT snapshot_id FROM rate_snapshots
			ORDER BY fetched_at DESC
			LIMIT ?
		);`, snapshotsKept)
	if err != nil {
		return apperrors.NewAppError(500, "failed to prune rate snapshots", err)
	}
	return nil
}
