package services

import (
	"context"

	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// AdvisoryReaderSvc defines read operations for country financial profiles.
type AdvisoryReaderSvc interface {
	// GetCountryProfile retrieves the advisory profile for a country key.
	GetCountryProfile(ctx context.Context, countryKey string) (*domain.CountryProfile, error)

	// ListCountryProfiles retrieves every advisory profile in catalogue order.
	ListCountryProfiles(ctx context.Context) ([]domain.CountryProfile, error)
}

// AdvisoryComputeSvc defines the advisory calculations.
type AdvisoryComputeSvc interface {
	// LocalizePremium adjusts a base USD premium by the country's coverage
	// multiplier and re-expresses it in the local currency at live rates.
	// Unknown countries fall back to the US market.
	LocalizePremium(ctx context.Context, basePremiumUSD float64, countryKey, insuranceType string) (*domain.LocalizedPremium, error)

	// GenerateAdvice derives a budgeting breakdown from an annual income in
	// the country's local currency. Non-positive incomes default to the
	// country's average salary.
	GenerateAdvice(ctx context.Context, countryKey string, annualIncome float64) (*domain.FinancialAdvice, error)
}

// AdvisorySvcFacade combines all advisory service interfaces
type AdvisorySvcFacade interface {
	AdvisoryReaderSvc
	AdvisoryComputeSvc
}
