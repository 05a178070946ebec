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

// BillService provides business logic for one-off and recurring bills.
type BillService struct {
	billRepo     portsrepo.BillRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewBillService creates a new BillService.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, categoryRepo portsrepo.CategoryReader) *BillService {
	return &BillService{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBill persists a new bill, defaulting the status to pending.
func (s *BillService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	bill, err := s.buildBill(ctx, req.Name, req.Amount, req.Currency, req.DueDate, req.CategoryID, req.IsRecurring, req.RecurrenceInterval, req.Status)
	if err != nil {
		return nil, err
	}
	created, err := s.billRepo.CreateBill(ctx, *bill)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	return created, nil
}

// GetBillByID retrieves a single bill.
func (s *BillService) GetBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

// ListBills retrieves bills ordered by due date, optionally filtered by
// status or restricted to the next seven days.
func (s *BillService) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	return s.billRepo.ListBills(ctx, filter)
}

// UpdateBill replaces an existing bill's fields.
func (s *BillService) UpdateBill(ctx context.Context, billID int64, req dto.UpdateBillRequest) (*domain.Bill, error) {
	bill, err := s.buildBill(ctx, req.Name, req.Amount, req.Currency, req.DueDate, req.CategoryID, req.IsRecurring, req.RecurrenceInterval, req.Status)
	if err != nil {
		return nil, err
	}
	bill.BillID = billID
	return s.billRepo.UpdateBill(ctx, *bill)
}

// UpdateBillStatus marks a bill pending or paid without touching other fields.
func (s *BillService) UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.Bill, error) {
	return s.billRepo.UpdateBillStatus(ctx, billID, status)
}

// DeleteBill removes a bill.
func (s *BillService) DeleteBill(ctx context.Context, billID int64) error {
	return s.billRepo.DeleteBill(ctx, billID)
}

func (s *BillService) buildBill(
	ctx context.Context,
	name string,
	amount decimal.Decimal,
	currency, dueDate string,
	categoryID *int64,
	isRecurring bool,
	recurrenceInterval *string,
	status string,
) (*domain.Bill, error) {
	due, err := time.ParseInLocation(dto.DateLayout, dueDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, dueDate)
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

	billStatus := domain.BillStatusPending
	if status != "" {
		billStatus = domain.BillStatus(status)
	}

	return &domain.Bill{
		Name:               name,
		Amount:             amount,
		Currency:           currencyOrBase(currency),
		DueDate:            due,
		CategoryID:         categoryID,
		IsRecurring:        isRecurring,
		RecurrenceInterval: interval,
		Status:             billStatus,
	}, nil
}
