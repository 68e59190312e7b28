package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/services"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.service = services.NewCurrencyService()
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCountryKey_Success() {
	currency, err := suite.service.GetCurrencyByCountryKey(suite.ctx, "india")

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("INR", currency.CurrencyCode)
	suite.Equal("₹", currency.Symbol)
	suite.Equal("India", currency.CountryName)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCountryKey_NotFound() {
	currency, err := suite.service.GetCurrencyByCountryKey(suite.ctx, "atlantis")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_CatalogueOrder() {
	currencies, err := suite.service.ListCurrencies(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(currencies, 6)
	suite.Equal("usa", currencies[0].CountryKey)
	suite.Equal("germany", currencies[5].CountryKey)

	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.CurrencyCode)
	}
	suite.Equal([]string{"USD", "INR", "GBP", "CAD", "AUD", "EUR"}, codes)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
