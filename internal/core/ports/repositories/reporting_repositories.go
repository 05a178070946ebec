package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ReportingReader defines the aggregate queries behind the dashboard.
type ReportingReader interface {
	// SumBudgets totals all budget amounts for one calendar month.
	SumBudgets(ctx context.Context, month, year int) (decimal.Decimal, error)
	// SumExpenses totals all expense-category transactions for one calendar month.
	SumExpenses(ctx context.Context, month, year int) (decimal.Decimal, error)
	// CountPendingBillsDueBetween counts pending bills with a due date in [from, to].
	CountPendingBillsDueBetween(ctx context.Context, from, to time.Time) (int, error)
	// CountOverdueBills counts pending bills due strictly before the given day.
	CountOverdueBills(ctx context.Context, before time.Time) (int, error)
	// SpendingByCategory returns per-category expense totals for one month,
	// omitting categories with no spending, highest total first.
	SpendingByCategory(ctx context.Context, month, year int) ([]domain.CategorySpending, error)
}
