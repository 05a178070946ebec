package services

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// ReportingSvcFacade serves the dashboard aggregation endpoints.
type ReportingSvcFacade interface {
	// GetDashboardSummary aggregates the given month's budget position and
	// pending bill counts.
	GetDashboardSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, error)
	GetSpendingByCategory(ctx context.Context, month, year int) ([]domain.CategorySpending, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}
