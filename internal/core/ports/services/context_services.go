package services

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// ContextReaderSvc defines read operations on the currency context.
type ContextReaderSvc interface {
	// Snapshot returns a copy of the current context state. Safe in every
	// lifecycle phase.
	Snapshot() domain.ContextSnapshot

	// ConvertToComparison re-expresses a home-currency amount in the
	// comparison currency. Returns apperrors.ErrNotReady before hydration.
	ConvertToComparison(amount float64) (float64, error)

	// FormatHomeAmount renders an amount with the home currency's symbol,
	// grouping, and fraction digits.
	FormatHomeAmount(amount float64) (string, error)

	// FormatComparisonAmount renders an amount in the comparison currency.
	FormatComparisonAmount(amount float64) (string, error)
}

// ContextWriterSvc defines operations that mutate the currency context.
type ContextWriterSvc interface {
	// SetHomeCountry switches the home country and persists the selection.
	// Stored base values are reinterpreted in the new currency, never
	// rescaled. Unknown keys return apperrors.ErrValidation and leave the
	// selection untouched.
	SetHomeCountry(ctx context.Context, countryKey string) error

	// SetComparisonCountry switches the comparison country and persists it.
	SetComparisonCountry(ctx context.Context, countryKey string) error

	// UpdateValue stores one financial profile value in home-currency units.
	UpdateValue(ctx context.Context, fieldName string, value float64) error

	// ResetValues zeroes every financial profile value.
	ResetValues(ctx context.Context) error

	// RefreshRates triggers an immediate rate fetch through the shared
	// single-flight path and reports its outcome. The periodic refresher
	// swallows the same errors; this surfaces them for manual refreshes.
	RefreshRates(ctx context.Context) error
}

// ContextLifecycleSvc defines startup and shutdown of the currency context.
type ContextLifecycleSvc interface {
	// Hydrate loads persisted state, seeds rates, fires the initial fetch,
	// and starts the periodic refresher. It moves the context from
	// UNINITIALIZED through HYDRATING to READY exactly once.
	Hydrate(ctx context.Context) error

	// Close stops the periodic refresher. Idempotent.
	Close()
}

// ContextSvcFacade combines all currency context service interfaces
type ContextSvcFacade interface {
	ContextReaderSvc
	ContextWriterSvc
	ContextLifecycleSvc
}
