package services_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/core/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRatesByDate(ctx context.Context, day time.Time) (*domain.RateTable, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateRepository) FindMostRecentRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateRepository) SaveRates(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// --- Mock RateSourceClient ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateRepository
	mockSource   *MockRateSource
	service      portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.mockSource = new(MockRateSource)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewRateService(suite.mockRateRepo, suite.mockSource, logger)
}

func sampleTable(date time.Time) *domain.RateTable {
	return &domain.RateTable{
		Rates: map[string]decimal.Decimal{
			"RON": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("5.0903"),
			"USD": decimal.RequireFromString("4.3975"),
			"JPY": decimal.RequireFromString("0.030744"),
		},
		Date:       date,
		Provenance: domain.RateProvenanceFetched,
	}
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestGetLatestRates_CacheHitSkipsFetch() {
	ctx := context.Background()
	today := time.Now()
	cached := sampleTable(today)

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(cached, nil).Once()

	table, err := suite.service.GetLatestRates(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(table)
	suite.Equal(domain.RateProvenanceCached, table.Provenance)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRates")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetLatestRates_FetchesAndSavesOnCacheMiss() {
	ctx := context.Background()
	fetched := sampleTable(time.Now())

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRates", ctx).Return(fetched, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.AnythingOfType("domain.RateTable")).Return(nil).Once()

	table, err := suite.service.GetLatestRates(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.RateProvenanceFetched, table.Provenance)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetLatestRates_SaveFailureStillReturnsFetched() {
	ctx := context.Background()
	fetched := sampleTable(time.Now())

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRates", ctx).Return(fetched, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.AnythingOfType("domain.RateTable")).
		Return(fmt.Errorf("%w: connection refused", apperrors.ErrPersistence)).Once()

	table, err := suite.service.GetLatestRates(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(table)
	suite.Equal(domain.RateProvenanceFetched, table.Provenance)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetLatestRates_StaleFallbackWhenFetchFails() {
	ctx := context.Background()
	stale := sampleTable(time.Now().AddDate(0, 0, -3))

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRates", ctx).Return(nil, apperrors.ErrSourceUnavailable).Once()
	suite.mockRateRepo.On("FindMostRecentRates", ctx).Return(stale, nil).Once()

	table, err := suite.service.GetLatestRates(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.RateProvenanceStaleFallback, table.Provenance)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRates")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetLatestRates_ColdStartUnavailable() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRates", ctx).Return(nil, apperrors.ErrSourceUnavailable).Once()
	suite.mockRateRepo.On("FindMostRecentRates", ctx).Return(nil, apperrors.ErrNotFound).Once()

	table, err := suite.service.GetLatestRates(ctx)

	suite.Require().Error(err)
	suite.Nil(table)
	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
}

func (suite *RateServiceTestSuite) TestConvertAmount_IdentitySkipsResolution() {
	ctx := context.Background()
	amount := decimal.RequireFromString("123.456")

	result, err := suite.service.ConvertAmount(ctx, amount, "eur", "EUR")

	suite.Require().NoError(err)
	suite.True(result.Equal(amount))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRatesByDate")
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRates")
}

func (suite *RateServiceTestSuite) TestConvertAmount_PivotsThroughBase() {
	ctx := context.Background()
	cached := sampleTable(time.Now())

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(cached, nil).Once()

	result, err := suite.service.ConvertAmount(ctx, decimal.NewFromInt(100), "EUR", "USD")

	suite.Require().NoError(err)
	// 100 * 5.0903 / 4.3975 = 115.7544..., rounded to 115.75
	suite.Equal("115.75", result.StringFixed(2))
}

func (suite *RateServiceTestSuite) TestConvertAmount_MissingCode() {
	ctx := context.Background()
	cached := sampleTable(time.Now())

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(cached, nil).Once()

	_, err := suite.service.ConvertAmount(ctx, decimal.NewFromInt(10), "EUR", "XYZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.Contains(err.Error(), "XYZ")
}

func (suite *RateServiceTestSuite) TestListCurrencies_SortedWithNames() {
	ctx := context.Background()
	cached := sampleTable(time.Now())

	suite.mockRateRepo.On("FindRatesByDate", ctx, mock.AnythingOfType("time.Time")).Return(cached, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(currencies, 4)
	suite.Equal("EUR", currencies[0].Code)
	suite.Equal("Euro", currencies[0].Name)
	suite.Equal("USD", currencies[3].Code)
}

// --- Pure conversion ---

func TestConvert_RoundTripDrift(t *testing.T) {
	table := sampleTable(time.Now())
	amount := decimal.RequireFromString("250.00")

	toUSD, err := services.Convert(amount, "EUR", "USD", table)
	if err != nil {
		t.Fatalf("forward conversion failed: %v", err)
	}
	back, err := services.Convert(toUSD, "USD", "EUR", table)
	if err != nil {
		t.Fatalf("reverse conversion failed: %v", err)
	}

	drift := back.Sub(amount).Abs()
	if drift.GreaterThan(decimal.RequireFromString("0.02")) {
		t.Fatalf("round-trip drift %s exceeds 0.02", drift)
	}
}

func TestConvert_ToBaseCurrency(t *testing.T) {
	table := sampleTable(time.Now())

	result, err := services.Convert(decimal.NewFromInt(10), "EUR", "RON", table)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if result.StringFixed(2) != "50.90" {
		t.Fatalf("expected 50.90, got %s", result)
	}
}

func TestConvert_RoundsHalfAwayFromZero(t *testing.T) {
	table := &domain.RateTable{
		Rates: map[string]decimal.Decimal{
			"RON": decimal.NewFromInt(1),
			"ABC": decimal.RequireFromString("0.125"),
		},
		Date: time.Now(),
	}

	// 1 * 0.125 = 0.125, the half digit rounds up to 0.13
	result, err := services.Convert(decimal.NewFromInt(1), "ABC", "RON", table)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if result.StringFixed(2) != "0.13" {
		t.Fatalf("expected 0.13, got %s", result)
	}
}

// --- Run Suite ---
func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
