package services

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency catalogue.
// The catalogue is fixed at build time, so there is no writer counterpart.
type CurrencyReaderSvc interface {
	// GetCurrencyByCountryKey retrieves a specific currency by its country key.
	GetCurrencyByCountryKey(ctx context.Context, countryKey string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies in catalogue order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
