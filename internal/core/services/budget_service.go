package services

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portsrepo "finance-tracker/internal/core/ports/repositories"
	"finance-tracker/internal/dto"
)

// BudgetService provides business logic for monthly category budgets.
type BudgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudget persists a new budget. At most one budget may exist per
// (category, month, year); a second attempt fails with ErrDuplicate.
func (s *BudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	budget := domain.Budget{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Currency:   currencyOrBase(req.Currency),
		Month:      req.Month,
		Year:       req.Year,
	}
	created, err := s.budgetRepo.CreateBudget(ctx, budget)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: budget for category %d in %d/%d already exists",
				apperrors.ErrDuplicate, req.CategoryID, req.Month, req.Year)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return created, nil
}

// GetBudgetByID retrieves a single budget.
func (s *BudgetService) GetBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, budgetID)
}

// ListBudgets retrieves budgets optionally filtered by month and/or year.
func (s *BudgetService) ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, month, year)
}

// GetBudgetSpending returns each budget of the given month joined with the
// expenses recorded against its category.
func (s *BudgetService) GetBudgetSpending(ctx context.Context, month, year int) ([]domain.BudgetSpending, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	return s.budgetRepo.ListBudgetSpending(ctx, month, year)
}

// UpdateBudget replaces an existing budget's fields.
func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:   budgetID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Currency:   currencyOrBase(req.Currency),
		Month:      req.Month,
		Year:       req.Year,
	}
	return s.budgetRepo.UpdateBudget(ctx, budget)
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID int64) error {
	return s.budgetRepo.DeleteBudget(ctx, budgetID)
}

func (s *BudgetService) validateCategory(ctx context.Context, categoryID int64) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %d not found", apperrors.ErrValidation, categoryID)
		}
		return fmt.Errorf("failed to validate category %d: %w", categoryID, err)
	}
	return nil
}

func currencyOrBase(currency string) string {
	if currency == "" {
		return domain.BaseCurrency
	}
	return currency
}
