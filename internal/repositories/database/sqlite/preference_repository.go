package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
	"github.com/wishinsured/fx_backend/internal/utils/mapping"
)

// SQLitePreferenceRepository implements the preference repository port on
// database/sql.
type SQLitePreferenceRepository struct {
	BaseRepository
}

func newSQLitePreferenceRepository(db *sql.DB) *SQLitePreferenceRepository {
	return &SQLitePreferenceRepository{BaseRepository: BaseRepository{DB: db}}
}

// FindPreference retrieves the stored country selection.
func (r *SQLitePreferenceRepository) FindPreference(ctx context.Context) (*domain.Preference, error) {
	query := `
		SELECT id, home_country_key, comparison_country_key, updated_at
		FROM preferences
		WHERE id = 1;
	`

	var m models.Preference
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&m.ID, &m.HomeCountryKey, &m.ComparisonCountryKey, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no preference stored")
		}
		return nil, apperrors.NewAppError(500, "failed to find preference", err)
	}

	pref := mapping.ToDomainPreference(m)
	return &pref, nil
}

// SavePreference upserts the stored country selection.
func (r *SQLitePreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	m := mapping.ToModelPreference(pref)
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO preferences (id, home_country_key, comparison_country_key, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			home_country_key = excluded.home_country_key,
			comparison_country_key = excluded.comparison_country_key,
			updated_at = excluded.updated_at;`,
		m.HomeCountryKey, m.ComparisonCountryKey, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save preference", err)
	}
	return nil
}
