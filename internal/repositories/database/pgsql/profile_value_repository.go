package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/models"
)

// PgxProfileValueRepository implements the profile value repository port using pgxpool.
type PgxProfileValueRepository struct {
	BaseRepository
}

func newPgxProfileValueRepository(db *pgxpool.Pool) *PgxProfileValueRepository {
	return &PgxProfileValueRepository{BaseRepository: BaseRepository{Pool: db}}
}

// ListValues retrieves every stored field value.
func (r *PgxProfileValueRepository) ListValues(ctx context.Context) (map[string]float64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT field_name, base_value, updated_at
		FROM profile_values;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list profile values", err)
	}
	defer rows.Close()

	values := map[string]float64{}
	for rows.Next() {
		var m models.ProfileValue
		if err := rows.Scan(&m.FieldName, &m.BaseValue, &m.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan profile value", err)
		}
		values[m.FieldName] = m.BaseValue
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating profile values", err)
	}
	return values, nil
}

// UpsertValue stores one field value.
func (r *PgxProfileValueRepository) UpsertValue(ctx context.Context, fieldName string, value float64) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO profile_values (field_name, base_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (field_name) DO UPDATE SET
			base_value = EXCLUDED.base_value,
			updated_at = EXCLUDED.updated_at;`,
		fieldName, value, time.Now().UTC(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert profile value", err)
	}
	return nil
}

// ResetValues removes every stored field value.
func (r *PgxProfileValueRepository) ResetValues(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM profile_values;`); err != nil {
		return apperrors.NewAppError(500, "failed to reset profile values", err)
	}
	return nil
}
