package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/dto"
	"github.com/wishinsured/fx_backend/internal/handlers"
	"github.com/wishinsured/fx_backend/internal/platform/config"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) CurrentRates() domain.RateTable {
	args := m.Called()
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateService) Rate(currencyCode string) float64 {
	args := m.Called(currencyCode)
	return args.Get(0).(float64)
}

func (m *MockRateService) IsStale() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRateService) Convert(amount float64, fromCountryKey, toCountryKey string) float64 {
	args := m.Called(amount, fromCountryKey, toCountryKey)
	return args.Get(0).(float64)
}

func (m *MockRateService) RefreshRates(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateService) SeedFromStorage(ctx context.Context) {
	m.Called(ctx)
}

// Ensure mock implements the interface
var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockRateService *MockRateService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockRateService = new(MockRateService)

	container := newTestContainer(new(MockCurrencyService), suite.mockRateService, new(MockContextService), new(MockAdvisoryService))
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func testRateTable() domain.RateTable {
	return domain.RateTable{
		Base: domain.BaseCurrencyCode,
		Rates: map[string]float64{
			"USD": 1.0, "INR": 83.15, "GBP": 0.79, "CAD": 1.35, "AUD": 1.52, "EUR": 0.92,
		},
		FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:    domain.RateSourceRemote,
	}
}

// --- Test Cases ---

func (suite *RateHandlerTestSuite) TestGetRates_Success() {
	suite.mockRateService.On("CurrentRates").Return(testRateTable()).Once()
	suite.mockRateService.On("IsStale").Return(false).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RateTableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.Equal("remote", resp.Source)
	suite.False(resp.Stale)
	suite.InDelta(83.15, resp.Rates["INR"], 1e-9)
	suite.Require().NotNil(resp.FetchedAt)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestRefreshRates_Success() {
	suite.mockRateService.On("RefreshRates", mock.Anything).Return(testRateTable(), nil).Once()
	suite.mockRateService.On("IsStale").Return(false).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RateTableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("remote", resp.Source)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestRefreshRates_SourceDown() {
	suite.mockRateService.On("RefreshRates", mock.Anything).
		Return(domain.RateTable{}, apperrors.ErrRateFetch).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestRefreshRates_InvalidPayloadFromSource() {
	suite.mockRateService.On("RefreshRates", mock.Anything).
		Return(domain.RateTable{}, apperrors.ErrRateFetchValidation).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *RateHandlerTestSuite) TestConvert_Success() {
	suite.mockRateService.On("Convert", 1000.0, "usa", "india").Return(83150.0).Once()

	body, _ := json.Marshal(gin.H{"amount": 1000, "fromCountryKey": "usa", "toCountryKey": "india"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.FromCurrencyCode)
	suite.Equal("INR", resp.ToCurrencyCode)
	suite.InDelta(83150, resp.ConvertedAmount, 1e-9)
	suite.Equal("$1,000", resp.FormattedOriginal)
	suite.Equal("₹83,150", resp.FormattedConverted)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestConvert_UnknownCountryKey() {
	body, _ := json.Marshal(gin.H{"amount": 1000, "fromCountryKey": "atlantis", "toCountryKey": "india"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRateService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestConvert_MissingAmount() {
	body, _ := json.Marshal(gin.H{"fromCountryKey": "usa", "toCountryKey": "india"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Suite ---
func TestRateHandler(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
