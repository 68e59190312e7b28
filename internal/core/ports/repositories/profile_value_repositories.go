package repositories

import "context"

// ProfileValueReader defines read operations for persisted financial profile values
type ProfileValueReader interface {
	// ListValues retrieves every stored field value. Fields never written are
	// simply absent from the map.
	ListValues(ctx context.Context) (map[string]float64, error)
}

// ProfileValueWriter defines write operations for persisted financial profile values
type ProfileValueWriter interface {
	// UpsertValue stores one field value, replacing any previous one.
	UpsertValue(ctx context.Context, fieldName string, value float64) error

	// ResetValues removes every stored field value.
	ResetValues(ctx context.Context) error
}

// ProfileValueRepositoryFacade combines all profile value repository interfaces
type ProfileValueRepositoryFacade interface {
	ProfileValueReader
	ProfileValueWriter
}
