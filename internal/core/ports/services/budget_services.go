package services

import (
	"context"

	"finance-tracker/internal/core/domain"
	"finance-tracker/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data.
type BudgetReaderSvc interface {
	GetBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)
	ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error)
	GetBudgetSpending(ctx context.Context, month, year int) ([]domain.BudgetSpending, error)
}

// BudgetWriterSvc defines write operations for budget data.
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int64) error
}

// BudgetSvcFacade combines all budget-related service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
