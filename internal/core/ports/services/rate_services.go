package services

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// RateReaderSvc defines read operations over the in-memory rate store.
type RateReaderSvc interface {
	// CurrentRates returns a copy of the rate table currently being served.
	CurrentRates() domain.RateTable

	// Rate returns the units-per-USD rate for a currency code, at parity for
	// unknown codes. Satisfies domain.RateProvider.
	Rate(currencyCode string) float64

	// IsStale reports whether the current table is older than the refresh
	// interval.
	IsStale() bool

	// Convert re-expresses an amount between two country keys through the
	// USD base. Identical resolved currencies return the amount untouched.
	Convert(amount float64, fromCountryKey, toCountryKey string) float64
}

// RateRefresherSvc defines operations that replace the rate table.
type RateRefresherSvc interface {
	// RefreshRates fetches from the remote source, atomically replaces the
	// table on success, and persists a snapshot. On failure the previous
	// table keeps serving and the error is returned.
	RefreshRates(ctx context.Context) (domain.RateTable, error)

	// SeedFromStorage loads the latest persisted snapshot into the store so
	// restarts serve real rates before the first fetch. Missing or corrupt
	// snapshots are discarded silently; the static table keeps serving.
	SeedFromStorage(ctx context.Context)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}
