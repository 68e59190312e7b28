package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/services"
)

// --- Test Suite ---
//
// The advisory service reads rates through a real RateService left on its
// static table, so every expected number below is deterministic.
type AdvisoryServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *services.AdvisoryService
}

func (suite *AdvisoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	rates := services.NewRateService(new(MockRateSource), new(MockRateSnapshotRepository), time.Hour)
	suite.service = services.NewAdvisoryService(rates)
}

// --- Test Cases ---

func (suite *AdvisoryServiceTestSuite) TestGetCountryProfile_Success() {
	profile, err := suite.service.GetCountryProfile(suite.ctx, "india")

	suite.NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal("india", profile.CountryKey)
	suite.Equal(60, profile.RetirementAge)
	suite.InDelta(0.20, profile.TaxRate, 1e-12)
	suite.Contains(profile.InvestmentOptions, "PPF")
}

func (suite *AdvisoryServiceTestSuite) TestGetCountryProfile_NotFound() {
	profile, err := suite.service.GetCountryProfile(suite.ctx, "atlantis")

	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdvisoryServiceTestSuite) TestListCountryProfiles_CatalogueOrder() {
	profiles, err := suite.service.ListCountryProfiles(suite.ctx)

	suite.NoError(err)
	suite.Require().Len(profiles, 6)
	suite.Equal("usa", profiles[0].CountryKey)
	suite.Equal("germany", profiles[5].CountryKey)
}

func (suite *AdvisoryServiceTestSuite) TestLocalizePremium_India() {
	premium, err := suite.service.LocalizePremium(suite.ctx, 1000, "india", "health")

	suite.NoError(err)
	suite.Require().NotNil(premium)
	suite.Equal("india", premium.CountryKey)
	suite.Equal("INR", premium.CurrencyCode)
	suite.Equal("₹", premium.Symbol)
	suite.InDelta(0.15, premium.Multiplier, 1e-12)
	suite.InDelta(150, premium.USDEquivalent, 1e-9)
	// 150 USD at 83.15 INR per USD
	suite.InDelta(12472.50, premium.Amount, 0.01)
	suite.InDelta(1039.38, premium.Monthly, 0.01)
	suite.InDelta(3118.13, premium.Quarterly, 0.01)
	suite.Equal("₹12,473", premium.FormattedAmount)
	suite.Equal("₹1,039", premium.FormattedMonthly)
}

func (suite *AdvisoryServiceTestSuite) TestLocalizePremium_HomeMarketIsIdentity() {
	premium, err := suite.service.LocalizePremium(suite.ctx, 500, "usa", "health")

	suite.NoError(err)
	suite.InDelta(1.0, premium.Multiplier, 1e-12)
	suite.Equal(500.0, premium.Amount)
	suite.Equal("USD", premium.CurrencyCode)
	suite.Equal("$500", premium.FormattedAmount)
}

func (suite *AdvisoryServiceTestSuite) TestLocalizePremium_UnknownCountryFallsBackToUS() {
	premium, err := suite.service.LocalizePremium(suite.ctx, 500, "atlantis", "health")

	suite.NoError(err)
	suite.Equal("usa", premium.CountryKey)
	suite.Equal(500.0, premium.Amount)
}

func (suite *AdvisoryServiceTestSuite) TestLocalizePremium_UnknownInsuranceTypeAtParity() {
	premium, err := suite.service.LocalizePremium(suite.ctx, 800, "uk", "spacecraft")

	suite.NoError(err)
	suite.InDelta(1.0, premium.Multiplier, 1e-12)
	// 800 USD at 0.79 GBP per USD
	suite.InDelta(632, premium.Amount, 0.01)
}

func (suite *AdvisoryServiceTestSuite) TestLocalizePremium_RejectsNonPositiveAmounts() {
	for _, amount := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		premium, err := suite.service.LocalizePremium(suite.ctx, amount, "india", "health")
		suite.Nil(premium)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *AdvisoryServiceTestSuite) TestGenerateAdvice_DefaultsToAverageSalary() {
	advice, err := suite.service.GenerateAdvice(suite.ctx, "usa", 0)

	suite.NoError(err)
	suite.Require().NotNil(advice)
	suite.Equal("usa", advice.CountryKey)
	suite.Equal("USD", advice.CurrencyCode)
	suite.InDelta(75000, advice.AnnualIncome.Value, 0.01)
	suite.InDelta(6250, advice.MonthlyIncome.Value, 0.01)
	suite.InDelta(4375, advice.MonthlyExpenses.Value, 0.01)
	suite.InDelta(1875, advice.DisposableIncome.Value, 0.01)
	suite.InDelta(26250, advice.EmergencyFundTarget.Value, 0.01)
	suite.InDelta(625, advice.InsuranceBudget.Value, 0.01)
	suite.InDelta(1312.50, advice.InvestmentCapacity.Value, 0.01)
	suite.Equal("$6,250", advice.MonthlyIncome.Formatted)
	suite.Equal("$26,250", advice.EmergencyFundTarget.Formatted)
	suite.Equal(65, advice.RetirementAge)
	suite.InDelta(0.25, advice.TaxRate, 1e-12)
}

func (suite *AdvisoryServiceTestSuite) TestGenerateAdvice_UsesProvidedIncome() {
	advice, err := suite.service.GenerateAdvice(suite.ctx, "india", 1200000)

	suite.NoError(err)
	suite.Equal("INR", advice.CurrencyCode)
	suite.InDelta(100000, advice.MonthlyIncome.Value, 0.01)
	suite.InDelta(70000, advice.MonthlyExpenses.Value, 0.01)
	suite.InDelta(420000, advice.EmergencyFundTarget.Value, 0.01)
	suite.Equal("₹100,000", advice.MonthlyIncome.Formatted)
	suite.Contains(advice.TaxAdvantages, "80C deductions")
	suite.NotEmpty(advice.ExpectedReturns)
}

func (suite *AdvisoryServiceTestSuite) TestGenerateAdvice_UnknownCountry() {
	advice, err := suite.service.GenerateAdvice(suite.ctx, "narnia", 50000)

	suite.Nil(advice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAdvisoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceTestSuite))
}
