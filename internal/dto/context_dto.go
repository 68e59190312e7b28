package dto

import (
	"time"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// SetCountryRequest defines the data needed to switch the home or comparison country.
type SetCountryRequest struct {
	CountryKey string `json:"countryKey" binding:"required,lowercase"`
}

// UpdateValueRequest defines the data needed to store one financial profile value.
// The field name travels in the URL.
type UpdateValueRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// ContextResponse defines the structure for API responses describing the
// currency context.
type ContextResponse struct {
	State                string             `json:"state"`
	HomeCountryKey       string             `json:"homeCountryKey"`
	ComparisonCountryKey string             `json:"comparisonCountryKey"`
	HomeCurrency         CurrencyResponse   `json:"homeCurrency"`
	ComparisonCurrency   CurrencyResponse   `json:"comparisonCurrency"`
	BaseValues           map[string]float64 `json:"baseValues"`
	LastRefreshAt        *time.Time         `json:"lastRefreshAt,omitempty"`
}

// ToContextResponse converts a domain.ContextSnapshot to ContextResponse DTO
func ToContextResponse(snap domain.ContextSnapshot) ContextResponse {
	home := domain.ResolveCurrency(snap.HomeCountryKey)
	comparison := domain.ResolveCurrency(snap.ComparisonCountryKey)

	resp := ContextResponse{
		State:                string(snap.State),
		HomeCountryKey:       snap.HomeCountryKey,
		ComparisonCountryKey: snap.ComparisonCountryKey,
		HomeCurrency:         ToCurrencyResponse(&home),
		ComparisonCurrency:   ToCurrencyResponse(&comparison),
		BaseValues:           snap.BaseValues,
	}
	if !snap.LastRefreshAt.IsZero() {
		lastRefreshAt := snap.LastRefreshAt
		resp.LastRefreshAt = &lastRefreshAt
	}
	return resp
}
