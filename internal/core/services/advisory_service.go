package services

import (
	"context"
	"fmt"
	"math"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/utils"
)

// Budgeting heuristics applied to monthly income, carried over from the
// product's paper model: 70% living expenses, a 6 month emergency cushion,
// 10% insurance budget, and 70% of what is left going to investments.
const (
	expenseShare        = 0.70
	emergencyFundMonths = 6
	insuranceShare      = 0.10
	investmentShare     = 0.70
)

// AdvisoryService computes country-aware premium localization and budgeting
// advice on top of the live rate store.
type AdvisoryService struct {
	rates portssvc.RateReaderSvc
}

// NewAdvisoryService creates a new AdvisoryService.
func NewAdvisoryService(rates portssvc.RateReaderSvc) *AdvisoryService {
	return &AdvisoryService{rates: rates}
}

// GetCountryProfile retrieves the advisory profile for a country key.
func (s *AdvisoryService) GetCountryProfile(ctx context.Context, countryKey string) (*domain.CountryProfile, error) {
	profile, ok := domain.LookupCountryProfile(countryKey)
	if !ok {
		return nil, fmt.Errorf("country profile %q: %w", countryKey, apperrors.ErrNotFound)
	}
	return &profile, nil
}

// ListCountryProfiles retrieves every advisory profile in catalogue order.
func (s *AdvisoryService) ListCountryProfiles(ctx context.Context) ([]domain.CountryProfile, error) {
	return domain.ListCountryProfiles(), nil
}

// LocalizePremium adjusts a base USD premium by the country's coverage
// multiplier and re-expresses it in the local currency at live rates.
// Unknown countries fall back to the US market; unknown insurance types get
// a 1.0 multiplier.
func (s *AdvisoryService) LocalizePremium(ctx context.Context, basePremiumUSD float64, countryKey, insuranceType string) (*domain.LocalizedPremium, error) {
	if basePremiumUSD <= 0 || math.IsNaN(basePremiumUSD) || math.IsInf(basePremiumUSD, 0) {
		return nil, fmt.Errorf("%w: base premium must be a positive amount", apperrors.ErrValidation)
	}

	if !domain.IsSupportedCountry(countryKey) {
		countryKey = domain.DefaultHomeCountryKey
	}
	profile, ok := domain.LookupCountryProfile(countryKey)
	if !ok {
		return nil, fmt.Errorf("country profile %q: %w", countryKey, apperrors.ErrNotFound)
	}

	multiplier := 1.0
	if m, ok := profile.InsuranceMultipliers[insuranceType]; ok {
		multiplier = m
	}

	adjustedUSD := basePremiumUSD * multiplier
	local := domain.NewMoney(adjustedUSD, domain.DefaultHomeCountryKey).ConvertTo(s.rates, countryKey)
	currency := local.Currency()

	return &domain.LocalizedPremium{
		CountryKey:       countryKey,
		InsuranceType:    insuranceType,
		Multiplier:       multiplier,
		CurrencyCode:     currency.CurrencyCode,
		Symbol:           currency.Symbol,
		Amount:           utils.RoundForDisplay(local.Amount, 2),
		USDEquivalent:    utils.RoundForDisplay(adjustedUSD, 2),
		Monthly:          utils.RoundForDisplay(local.Amount/12, 2),
		Quarterly:        utils.RoundForDisplay(local.Amount/4, 2),
		FormattedAmount:  utils.FormatWithCurrency(local.Amount, currency),
		FormattedMonthly: utils.FormatWithCurrency(local.Amount/12, currency),
	}, nil
}

// GenerateAdvice derives a budgeting breakdown from an annual income in the
// country's local currency. Non-positive incomes default to the country's
// average salary.
func (s *AdvisoryService) GenerateAdvice(ctx context.Context, countryKey string, annualIncome float64) (*domain.FinancialAdvice, error) {
	profile, ok := domain.LookupCountryProfile(countryKey)
	if !ok {
		return nil, fmt.Errorf("country profile %q: %w", countryKey, apperrors.ErrNotFound)
	}
	currency := domain.ResolveCurrency(countryKey)

	if annualIncome <= 0 || math.IsNaN(annualIncome) || math.IsInf(annualIncome, 0) {
		annualIncome = profile.AvgAnnualSalary
	}

	monthlyIncome := annualIncome / 12
	monthlyExpenses := monthlyIncome * expenseShare
	disposable := monthlyIncome - monthlyExpenses
	emergencyFund := monthlyExpenses * emergencyFundMonths
	insuranceBudget := monthlyIncome * insuranceShare
	investmentCapacity := disposable * investmentShare

	figure := func(v float64) domain.AdviceFigure {
		return domain.AdviceFigure{
			Value:     utils.RoundForDisplay(v, 2),
			Formatted: utils.FormatWithCurrency(v, currency),
		}
	}

	return &domain.FinancialAdvice{
		CountryKey:          countryKey,
		CurrencyCode:        currency.CurrencyCode,
		AnnualIncome:        figure(annualIncome),
		MonthlyIncome:       figure(monthlyIncome),
		MonthlyExpenses:     figure(monthlyExpenses),
		DisposableIncome:    figure(disposable),
		EmergencyFundTarget: figure(emergencyFund),
		InsuranceBudget:     figure(insuranceBudget),
		InvestmentCapacity:  figure(investmentCapacity),
		RetirementAge:       profile.RetirementAge,
		TaxRate:             profile.TaxRate,
		AvgAnnualSalary:     figure(profile.AvgAnnualSalary),
		InvestmentOptions:   profile.InvestmentOptions,
		ExpectedReturns:     profile.ExpectedReturns,
		TaxAdvantages:       profile.TaxAdvantages,
	}, nil
}
