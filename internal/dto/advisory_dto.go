package dto

import (
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// CountryProfileResponse defines the structure for API responses containing
// a country's advisory profile alongside its currency.
type CountryProfileResponse struct {
	CountryKey           string             `json:"countryKey"`
	Currency             CurrencyResponse   `json:"currency"`
	TaxRate              float64            `json:"taxRate"`
	AvgAnnualSalary      float64            `json:"avgAnnualSalary"`
	CostOfLivingIndex    float64            `json:"costOfLivingIndex"`
	HealthcareSystem     string             `json:"healthcareSystem"`
	RetirementAge        int                `json:"retirementAge"`
	InsuranceMultipliers map[string]float64 `json:"insuranceMultipliers"`
	InvestmentOptions    []string           `json:"investmentOptions"`
	ExpectedReturns      map[string]float64 `json:"expectedReturns"`
	TaxAdvantages        []string           `json:"taxAdvantages"`
}

// ToCountryProfileResponse converts a domain.CountryProfile to CountryProfileResponse DTO
func ToCountryProfileResponse(profile *domain.CountryProfile) CountryProfileResponse {
	currency := domain.ResolveCurrency(profile.CountryKey)
	return CountryProfileResponse{
		CountryKey:           profile.CountryKey,
		Currency:             ToCurrencyResponse(&currency),
		TaxRate:              profile.TaxRate,
		AvgAnnualSalary:      profile.AvgAnnualSalary,
		CostOfLivingIndex:    profile.CostOfLivingIndex,
		HealthcareSystem:     profile.HealthcareSystem,
		RetirementAge:        profile.RetirementAge,
		InsuranceMultipliers: profile.InsuranceMultipliers,
		InvestmentOptions:    profile.InvestmentOptions,
		ExpectedReturns:      profile.ExpectedReturns,
		TaxAdvantages:        profile.TaxAdvantages,
	}
}

// ToListCountryProfileResponse converts a slice of domain.CountryProfile to a slice of CountryProfileResponse DTOs.
func ToListCountryProfileResponse(profiles []domain.CountryProfile) []CountryProfileResponse {
	responses := make([]CountryProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ToCountryProfileResponse(&profile)
	}
	return responses
}

// LocalizePremiumRequest defines the data needed to localize a base USD premium.
type LocalizePremiumRequest struct {
	BasePremiumUSD *float64 `json:"basePremiumUSD" binding:"required,gt=0"`
	CountryKey     string   `json:"countryKey" binding:"required"`
	InsuranceType  string   `json:"insuranceType" binding:"required"`
}

// LocalizedPremiumResponse defines the structure for API responses containing
// a localized premium breakdown.
type LocalizedPremiumResponse struct {
	CountryKey       string  `json:"countryKey"`
	InsuranceType    string  `json:"insuranceType"`
	Multiplier       float64 `json:"multiplier"`
	CurrencyCode     string  `json:"currencyCode"`
	Symbol           string  `json:"symbol"`
	Amount           float64 `json:"amount"`
	USDEquivalent    float64 `json:"usdEquivalent"`
	Monthly          float64 `json:"monthly"`
	Quarterly        float64 `json:"quarterly"`
	FormattedAmount  string  `json:"formattedAmount"`
	FormattedMonthly string  `json:"formattedMonthly"`
}

// ToLocalizedPremiumResponse converts a domain.LocalizedPremium to LocalizedPremiumResponse DTO
func ToLocalizedPremiumResponse(premium *domain.LocalizedPremium) LocalizedPremiumResponse {
	return LocalizedPremiumResponse{
		CountryKey:       premium.CountryKey,
		InsuranceType:    premium.InsuranceType,
		Multiplier:       premium.Multiplier,
		CurrencyCode:     premium.CurrencyCode,
		Symbol:           premium.Symbol,
		Amount:           premium.Amount,
		USDEquivalent:    premium.USDEquivalent,
		Monthly:          premium.Monthly,
		Quarterly:        premium.Quarterly,
		FormattedAmount:  premium.FormattedAmount,
		FormattedMonthly: premium.FormattedMonthly,
	}
}

// AdviceRequest defines the data needed to generate a budgeting breakdown.
// A missing or zero income falls back to the country's average salary.
type AdviceRequest struct {
	CountryKey   string  `json:"countryKey" binding:"required"`
	AnnualIncome float64 `json:"annualIncome" binding:"omitempty,gte=0"`
}

// AdviceFigureResponse pairs a raw amount with its formatted local-currency string.
type AdviceFigureResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// FinancialAdviceResponse defines the structure for API responses containing
// the budgeting breakdown.
type FinancialAdviceResponse struct {
	CountryKey          string               `json:"countryKey"`
	CurrencyCode        string               `json:"currencyCode"`
	AnnualIncome        AdviceFigureResponse `json:"annualIncome"`
	MonthlyIncome       AdviceFigureResponse `json:"monthlyIncome"`
	MonthlyExpenses     AdviceFigureResponse `json:"monthlyExpenses"`
	DisposableIncome    AdviceFigureResponse `json:"disposableIncome"`
	EmergencyFundTarget AdviceFigureResponse `json:"emergencyFundTarget"`
	InsuranceBudget     AdviceFigureResponse `json:"insuranceBudget"`
	InvestmentCapacity  AdviceFigureResponse `json:"investmentCapacity"`
	RetirementAge       int                  `json:"retirementAge"`
	TaxRate             float64              `json:"taxRate"`
	AvgAnnualSalary     AdviceFigureResponse `json:"avgAnnualSalary"`
	InvestmentOptions   []string             `json:"investmentOptions"`
	ExpectedReturns     map[string]float64   `json:"expectedReturns"`
	TaxAdvantages       []string             `json:"taxAdvantages"`
}

// ToFinancialAdviceResponse converts a domain.FinancialAdvice to FinancialAdviceResponse DTO
func ToFinancialAdviceResponse(advice *domain.FinancialAdvice) FinancialAdviceResponse {
	figure := func(f domain.AdviceFigure) AdviceFigureResponse {
		return AdviceFigureResponse{Value: f.Value, Formatted: f.Formatted}
	}
	return FinancialAdviceResponse{
		CountryKey:          advice.CountryKey,
		CurrencyCode:        advice.CurrencyCode,
		AnnualIncome:        figure(advice.AnnualIncome),
		MonthlyIncome:       figure(advice.MonthlyIncome),
		MonthlyExpenses:     figure(advice.MonthlyExpenses),
		DisposableIncome:    figure(advice.DisposableIncome),
		EmergencyFundTarget: figure(advice.EmergencyFundTarget),
		InsuranceBudget:     figure(advice.InsuranceBudget),
		InvestmentCapacity:  figure(advice.InvestmentCapacity),
		RetirementAge:       advice.RetirementAge,
		TaxRate:             advice.TaxRate,
		AvgAnnualSalary:     figure(advice.AvgAnnualSalary),
		InvestmentOptions:   advice.InvestmentOptions,
		ExpectedReturns:     advice.ExpectedReturns,
		TaxAdvantages:       advice.TaxAdvantages,
	}
}
