package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetLatestRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateService) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyInfo), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetDisplayCurrency(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceService) SetDisplayCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

var _ portssvc.PreferenceSvcFacade = (*MockPreferenceService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockRateSvc *MockRateService
	mockPrefSvc *MockPreferenceService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRateSvc = new(MockRateService)
	suite.mockPrefSvc = new(MockPreferenceService)

	services := &portssvc.ServiceContainer{
		Rate:       suite.mockRateSvc,
		Preference: suite.mockPrefSvc,
	}
	cfg := &config.Config{IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *CurrencyHandlerTestSuite) performRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestGetRates_Success() {
	table := &domain.RateTable{
		Rates: map[string]decimal.Decimal{
			"RON": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("5.0903"),
		},
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local),
		Provenance: domain.RateProvenanceCached,
	}
	suite.mockRateSvc.On("GetLatestRates", mock.Anything).Return(table, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currency/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-06-15", resp["date"])
	suite.Equal("cached", resp["source"])
	suite.Equal("RON", resp["baseCurrency"])
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetRates_Unavailable() {
	suite.mockRateSvc.On("GetLatestRates", mock.Anything).Return(nil, apperrors.ErrRatesUnavailable).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currency/rates", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestConvert_Success() {
	suite.mockRateSvc.On("ConvertAmount", mock.Anything, mock.Anything, "EUR", "USD").
		Return(decimal.RequireFromString("115.75"), nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/currency/convert", gin.H{
		"amount":       100,
		"fromCurrency": "EUR",
		"toCurrency":   "USD",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("115.75", resp["convertedAmount"])
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestConvert_InvalidCurrencyCode() {
	w := suite.performRequest(http.MethodPost, "/api/v1/currency/convert", gin.H{
		"amount":       100,
		"fromCurrency": "EURO",
		"toCurrency":   "USD",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "ConvertAmount")
}

func (suite *CurrencyHandlerTestSuite) TestConvert_UnknownCurrency() {
	suite.mockRateSvc.On("ConvertAmount", mock.Anything, mock.Anything, "EUR", "XYZ").
		Return(decimal.Decimal{}, apperrors.ErrRateNotFound).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/currency/convert", gin.H{
		"amount":       100,
		"fromCurrency": "EUR",
		"toCurrency":   "XYZ",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestGetPreference_Default() {
	suite.mockPrefSvc.On("GetDisplayCurrency", mock.Anything).Return("RON", nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/currency/preference", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("RON", resp["displayCurrency"])
}

func (suite *CurrencyHandlerTestSuite) TestUpdatePreference_Success() {
	suite.mockPrefSvc.On("SetDisplayCurrency", mock.Anything, "EUR").Return(nil).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/currency/preference", gin.H{
		"displayCurrency": "EUR",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPrefSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestHealthCheck() {
	w := suite.performRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
