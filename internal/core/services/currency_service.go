package services

import (
	"context"
	"fmt"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// CurrencyService serves the fixed currency catalogue. The catalogue is
// compiled in, so there is no repository behind this service.
type CurrencyService struct{}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// GetCurrencyByCountryKey retrieves a specific currency by its country key.
func (s *CurrencyService) GetCurrencyByCountryKey(ctx context.Context, countryKey string) (*domain.Currency, error) {
	currency, ok := domain.LookupCurrency(countryKey)
	if !ok {
		return nil, fmt.Errorf("currency for country %q: %w", countryKey, apperrors.ErrNotFound)
	}
	return &currency, nil
}

// ListCurrencies retrieves all supported currencies in catalogue order.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.ListCurrencies(), nil
}
