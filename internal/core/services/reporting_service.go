package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/core/domain"
	portsrepo "finance-tracker/internal/core/ports/repositories"
)

const (
	upcomingBillWindowDays = 7
	defaultRecentTxnLimit  = 5
	maxRecentTxnLimit      = 50
)

// ReportingService aggregates budgets, transactions and bills into the
// dashboard views.
type ReportingService struct {
	reportingRepo portsrepo.ReportingReader
	txnRepo       portsrepo.TransactionReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingReader, txnRepo portsrepo.TransactionReader) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		txnRepo:       txnRepo,
	}
}

// GetDashboardSummary aggregates the month's budget position together with
// pending bill counts. Bills count as upcoming when due within the next
// seven days and as overdue when still pending past their due date.
func (s *ReportingService) GetDashboardSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, error) {
	totalBudget, err := s.reportingRepo.SumBudgets(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum budgets: %w", err)
	}
	totalSpent, err := s.reportingRepo.SumExpenses(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	today := dateOnly(time.Now())
	upcoming, err := s.reportingRepo.CountPendingBillsDueBetween(ctx, today, today.AddDate(0, 0, upcomingBillWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming bills: %w", err)
	}
	overdue, err := s.reportingRepo.CountOverdueBills(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue bills: %w", err)
	}

	return &domain.DashboardSummary{
		TotalBudget:   totalBudget,
		TotalSpent:    totalSpent,
		Remaining:     totalBudget.Sub(totalSpent),
		UpcomingBills: upcoming,
		OverdueBills:  overdue,
		Month:         month,
		Year:          year,
	}, nil
}

// GetSpendingByCategory returns per-category expense totals for one month.
func (s *ReportingService) GetSpendingByCategory(ctx context.Context, month, year int) ([]domain.CategorySpending, error) {
	return s.reportingRepo.SpendingByCategory(ctx, month, year)
}

// GetRecentTransactions returns the newest transactions, clamping the limit
// to a sane range.
func (s *ReportingService) GetRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentTxnLimit
	}
	if limit > maxRecentTxnLimit {
		limit = maxRecentTxnLimit
	}
	return s.txnRepo.ListRecentTransactions(ctx, limit)
}
