package repositories

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// PreferenceReader defines read operations for the persisted country selection
type PreferenceReader interface {
	// FindPreference retrieves the stored home/comparison selection.
	// Returns apperrors.ErrNotFound when nothing has been saved yet.
	FindPreference(ctx context.Context) (*domain.Preference, error)
}

// PreferenceWriter defines write operations for the persisted country selection
type PreferenceWriter interface {
	// SavePreference upserts the stored selection.
	SavePreference(ctx context.Context, pref domain.Preference) error
}

// PreferenceRepositoryFacade combines all preference repository interfaces
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
