package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/models"
)

// SQLiteProfileValueRepository implements the profile value repository port
// on database/sql.
type SQLiteProfileValueRepository struct {
	BaseRepository
}

func newSQLiteProfileValueRepository(db *sql.DB) *SQLiteProfileValueRepository {
	return &SQLiteProfileValueRepository{BaseRepository: BaseRepository{DB: db}}
}

// ListValues retrieves every stored field value.
func (r *SQLiteProfileValueRepository) ListValues(ctx context.Context) (map[string]float64, error) {
	rows, err := r.DB.QueryContext(ctx, `
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
func (r *SQLiteProfileValueRepository) UpsertValue(ctx context.Context, fieldName string, value float64) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO profile_values (field_name, base_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(field_name) DO UPDATE SET
			base_value = excluded.base_value,
			updated_at = excluded.updated_at;`,
		fieldName, value, time.Now().UTC(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert profile value", err)
	}
	return nil
}

// ResetValues removes every stored field value.
func (r *SQLiteProfileValueRepository) ResetValues(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM profile_values;`); err != nil {
		return apperrors.NewAppError(500, "failed to reset profile values", err)
	}
	return nil
}
