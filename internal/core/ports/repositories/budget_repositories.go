package repositories

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)
	// ListBudgets returns budgets optionally filtered by month and/or year.
	ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error)
	// ListBudgetSpending returns each budget of the given month joined with
	// the expense total recorded against its category.
	ListBudgetSpending(ctx context.Context, month, year int) ([]domain.BudgetSpending, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// CreateBudget fails with apperrors.ErrDuplicate when a budget already
	// exists for the same (category, month, year).
	CreateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
