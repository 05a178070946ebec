package services_test

import (
	"context"
	"testing"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/core/services"
	"finance-tracker/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetSpending(ctx context.Context, month, year int) ([]domain.BudgetSpending, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetSpending), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: 7,
		Amount:     decimal.NewFromInt(500),
		Month:      6,
		Year:       2025,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(7)).
		Return(&domain.Category{CategoryID: 7, Type: domain.CategoryTypeExpense}, nil).Once()
	suite.mockBudgetRepo.On("CreateBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.CategoryID == 7 && b.Currency == domain.BaseCurrency && b.Month == 6 && b.Year == 2025
	})).Return(&domain.Budget{BudgetID: 1, CategoryID: 7}, nil).Once()

	created, err := suite.service.CreateBudget(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), created.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: 7,
		Amount:     decimal.NewFromInt(500),
		Month:      6,
		Year:       2025,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(7)).
		Return(&domain.Category{CategoryID: 7}, nil).Once()
	suite.mockBudgetRepo.On("CreateBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Return(nil, apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateBudget(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID: 99,
		Amount:     decimal.NewFromInt(500),
		Month:      6,
		Year:       2025,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateBudget(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "CreateBudget")
}

func (suite *BudgetServiceTestSuite) TestGetBudgetSpending_RejectsBadMonth() {
	ctx := context.Background()

	spendings, err := suite.service.GetBudgetSpending(ctx, 13, 2025)

	suite.Require().Error(err)
	suite.Nil(spendings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "ListBudgetSpending")
}

// --- Run Suite ---
func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
