package dto

import (
	"time"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// RateTableResponse defines the structure for API responses carrying the
// active exchange rate table.
type RateTableResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt *time.Time         `json:"fetchedAt,omitempty"`
	Source    string             `json:"source"`
	Stale     bool               `json:"stale"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO
func ToRateTableResponse(table domain.RateTable, stale bool) RateTableResponse {
	resp := RateTableResponse{
		Base:   table.Base,
		Rates:  table.Rates,
		Source: table.Source,
		Stale:  stale,
	}
	if !table.FetchedAt.IsZero() {
		fetchedAt := table.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	return resp
}

// ConvertRequest defines the structure for a one-off currency conversion.
type ConvertRequest struct {
	Amount         *float64 `json:"amount" binding:"required"`
	FromCountryKey string   `json:"fromCountryKey" binding:"required"`
	ToCountryKey   string   `json:"toCountryKey" binding:"required"`
}

// ConvertResponse defines the structure for a conversion result.
type ConvertResponse struct {
	FromCountryKey     string  `json:"fromCountryKey"`
	ToCountryKey       string  `json:"toCountryKey"`
	FromCurrencyCode   string  `json:"fromCurrencyCode"`
	ToCurrencyCode     string  `json:"toCurrencyCode"`
	OriginalAmount     float64 `json:"originalAmount"`
	ConvertedAmount    float64 `json:"convertedAmount"`
	FormattedOriginal  string  `json:"formattedOriginal"`
	FormattedConverted string  `json:"formattedConverted"`
}
