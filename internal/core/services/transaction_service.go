package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portsrepo "finance-tracker/internal/core/ports/repositories"
	"finance-tracker/internal/dto"

	"github.com/shopspring/decimal"
)

// TransactionService provides business logic for transactions.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateTransaction persists a new transaction. An explicit category must
// exist; the currency defaults to the base currency when omitted.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(ctx, req.Amount, req.Currency, req.CategoryID, req.Description, req.Date, req.IsRecurring, req.RecurrenceInterval)
	if err != nil {
		return nil, err
	}
	created, err := s.txnRepo.CreateTransaction(ctx, *txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// GetTransactionByID retrieves a single transaction with its joined category.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves transactions newest-first, optionally filtered
// by date range and category.
func (s *TransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, filter)
}

// UpdateTransaction replaces an existing transaction's fields.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(ctx, req.Amount, req.Currency, req.CategoryID, req.Description, req.Date, req.IsRecurring, req.RecurrenceInterval)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = transactionID
	return s.txnRepo.UpdateTransaction(ctx, *txn)
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return s.txnRepo.DeleteTransaction(ctx, transactionID)
}

func (s *TransactionService) buildTransaction(
	ctx context.Context,
	amount decimal.Decimal,
	currency string,
	categoryID *int64,
	description, date string,
	isRecurring bool,
	recurrenceInterval *string,
) (*domain.Transaction, error) {
	day, err := time.ParseInLocation(dto.DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, date)
	}
	if currency == "" {
		currency = domain.BaseCurrency
	}

	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %d not found", apperrors.ErrValidation, *categoryID)
			}
			return nil, fmt.Errorf("failed to validate category %d: %w", *categoryID, err)
		}
	}

	var interval *domain.RecurrenceInterval
	if recurrenceInterval != nil {
		v := domain.RecurrenceInterval(*recurrenceInterval)
		interval = &v
	}

	return &domain.Transaction{
		Amount:             amount,
		Currency:           currency,
		CategoryID:         categoryID,
		Description:        description,
		Date:               day,
		IsRecurring:        isRecurring,
		RecurrenceInterval: interval,
	}, nil
}
