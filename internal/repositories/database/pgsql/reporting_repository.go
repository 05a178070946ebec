package pgsql

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository implements the dashboard aggregate queries using pgxpool.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SumBudgets totals all budget amounts for one calendar month.
func (r *PgxReportingRepository) SumBudgets(ctx context.Context, month, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM budgets
		WHERE month = $1 AND year = $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, month, year).Scan(&total); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: failed to sum budgets: %v", apperrors.ErrPersistence, err)
	}
	return total, nil
}

// SumExpenses totals all transactions against expense categories for one
// calendar month.
func (r *PgxReportingRepository) SumExpenses(ctx context.Context, month, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE c.type = 'expense'
			AND EXTRACT(MONTH FROM t.date) = $1
			AND EXTRACT(YEAR FROM t.date) = $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, month, year).Scan(&total); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: failed to sum expenses: %v", apperrors.ErrPersistence, err)
	}
	return total, nil
}

// CountPendingBillsDueBetween counts pending bills with a due date in [from, to].
func (r *PgxReportingRepository) CountPendingBillsDueBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bills
		WHERE status = 'pending' AND due_date BETWEEN $1 AND $2;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count upcoming bills: %v", apperrors.ErrPersistence, err)
	}
	return count, nil
}

// CountOverdueBills counts pending bills due strictly before the given day.
func (r *PgxReportingRepository) CountOverdueBills(ctx context.Context, before time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bills
		WHERE status = 'pending' AND due_date < $1;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, before).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count overdue bills: %v", apperrors.ErrPersistence, err)
	}
	return count, nil
}

// SpendingByCategory returns per-category expense totals for one month,
// omitting categories with no spending, highest total first.
func (r *PgxReportingRepository) SpendingByCategory(ctx context.Context, month, year int) ([]domain.CategorySpending, error) {
	query := `
		SELECT c.name, c.color, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE c.type = 'expense'
			AND EXTRACT(MONTH FROM t.date) = $1
			AND EXTRACT(YEAR FROM t.date) = $2
		GROUP BY c.name, c.color
		HAVING SUM(t.amount) > 0
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query spending by category: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	spendings := []domain.CategorySpending{}
	for rows.Next() {
		var cs domain.CategorySpending
		if err := rows.Scan(&cs.Name, &cs.Color, &cs.Total); err != nil {
			return nil, fmt.Errorf("%w: failed to scan category spending: %v", apperrors.ErrPersistence, err)
		}
		spendings = append(spendings, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating category spending: %v", apperrors.ErrPersistence, err)
	}
	return spendings, nil
}
