package repositories

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// RateSource is the outbound port to the public exchange rate API.
type RateSource interface {
	// FetchLatest retrieves the current USD-based rate table. Concurrent
	// callers are expected to be coalesced into a single upstream request by
	// the implementation. Failures are reported as apperrors.ErrRateFetch or
	// apperrors.ErrRateFetchValidation; the implementation never retries.
	FetchLatest(ctx context.Context) (domain.RateTable, error)
}
