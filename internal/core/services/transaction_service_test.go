package services_test

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/core/services"
	"finance-tracker/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	categoryID := int64(3)
	req := dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("42.50"),
		Currency:    "EUR",
		CategoryID:  &categoryID,
		Description: "groceries",
		Date:        "2025-06-15",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, Name: "Food", Type: domain.CategoryTypeExpense}, nil).Once()
	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Currency == "EUR" &&
			txn.Date.Format("2006-01-02") == "2025-06-15" &&
			txn.Amount.Equal(req.Amount)
	})).Return(&domain.Transaction{TransactionID: 1, Amount: req.Amount, Currency: "EUR"}, nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(10),
		Date:   "2025-06-15",
	}

	suite.mockTxnRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Currency == domain.BaseCurrency
	})).Return(&domain.Transaction{TransactionID: 2, Currency: domain.BaseCurrency}, nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.BaseCurrency, created.Currency)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	categoryID := int64(99)
	req := dto.CreateTransactionRequest{
		Amount:     decimal.NewFromInt(10),
		CategoryID: &categoryID,
		Date:       "2025-06-15",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(10),
		Date:   "15/06/2025",
	}

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesFilter() {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	filter := domain.TransactionFilter{StartDate: &start}

	suite.mockTxnRepo.On("ListTransactions", ctx, filter).
		Return([]domain.Transaction{{TransactionID: 1}}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
