package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
	"github.com/wishinsured/fx_backend/internal/utils/mapping"
)

// PgxPreferenceRepository implements the preference repository port using pgxpool.
type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindPreference retrieves the stored country selection.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context) (*domain.Preference, error) {
	query := `
		SELECT id, home_country_key, comparison_country_key, updated_at
		FROM preferences
		WHERE id = 1;
	`

	var m models.Preference
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ID, &m.HomeCountryKey, &m.ComparisonCountryKey, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no preference stored")
		}
		return nil, apperrors.NewAppError(500, "failed to find preference", err)
	}

	pref := mapping.ToDomainPreference(m)
	return &pref, nil
}

// SavePreference upserts the stored country selection.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	m := mapping.ToModelPreference(pref)
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO preferences (id, home_country_key, comparison_country_key, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			home_country_key = EXCLUDED.home_country_key,
			comparison_country_key = EXCLUDED.comparison_country_key,
			updated_at = EXCLUDED.updated_at;`,
		m.HomeCountryKey, m.ComparisonCountryKey, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save preference", err)
	}
	return nil
}
