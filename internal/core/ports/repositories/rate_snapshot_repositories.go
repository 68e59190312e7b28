package repositories

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// RateSnapshotReader defines read operations for persisted rate tables
type RateSnapshotReader interface {
	// FindLatestSnapshot retrieves the most recently fetched rate table.
	// Returns apperrors.ErrNotFound when no snapshot has been stored.
	FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error)
}

// RateSnapshotWriter defines write operations for persisted rate tables
type RateSnapshotWriter interface {
	// SaveSnapshot persists a fetched rate table so restarts can serve real
	// rates before the first fetch completes.
	SaveSnapshot(ctx context.Context, table domain.RateTable) error
}

// RateSnapshotRepositoryFacade combines all rate snapshot repository interfaces
type RateSnapshotRepositoryFacade interface {
	RateSnapshotReader
	RateSnapshotWriter
}
