package services_test

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/core/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumBudgets(ctx context.Context, month, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpenses(ctx context.Context, month, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CountPendingBillsDueBetween(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountOverdueBills(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) SpendingByCategory(ctx context.Context, month, year int) ([]domain.CategorySpending, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpending), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockTxnRepo       *MockTransactionRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockTxnRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary() {
	ctx := context.Background()

	suite.mockReportingRepo.On("SumBudgets", ctx, 6, 2025).Return(decimal.NewFromInt(1500), nil).Once()
	suite.mockReportingRepo.On("SumExpenses", ctx, 6, 2025).Return(decimal.RequireFromString("923.40"), nil).Once()
	suite.mockReportingRepo.On("CountPendingBillsDueBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(2, nil).Once()
	suite.mockReportingRepo.On("CountOverdueBills", ctx, mock.AnythingOfType("time.Time")).Return(1, nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, 6, 2025)

	suite.Require().NoError(err)
	suite.Equal("576.60", summary.Remaining.StringFixed(2))
	suite.Equal(2, summary.UpcomingBills)
	suite.Equal(1, summary.OverdueBills)
	suite.Equal(6, summary.Month)
	suite.Equal(2025, summary.Year)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetRecentTransactions_DefaultLimit() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, 5).
		Return([]domain.Transaction{{TransactionID: 1}}, nil).Once()

	txns, err := suite.service.GetRecentTransactions(ctx, 0)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetRecentTransactions_ClampsLimit() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, 50).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetRecentTransactions(ctx, 500)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
