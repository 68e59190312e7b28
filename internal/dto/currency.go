package dto

import (
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a catalogue entry.
type CurrencyResponse struct {
	CountryKey     string `json:"countryKey"`
	CurrencyCode   string `json:"currencyCode"`
	Symbol         string `json:"symbol"`
	CurrencyName   string `json:"currencyName"`
	CountryName    string `json:"countryName"`
	Flag           string `json:"flag"`
	FractionDigits int    `json:"fractionDigits"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CountryKey:     curr.CountryKey,
		CurrencyCode:   curr.CurrencyCode,
		Symbol:         curr.Symbol,
		CurrencyName:   curr.CurrencyName,
		CountryName:    curr.CountryName,
		Flag:           curr.Flag,
		FractionDigits: curr.FractionDigits,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr) // Reuse the single converter
	}
	return res
}
