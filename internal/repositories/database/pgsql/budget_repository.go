package pgsql

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// PgxBudgetRepository implements the budget repository using pgxpool.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const budgetSelect = `
	SELECT
		b.id, b.category_id, b.amount, b.currency, b.month, b.year, b.created_at,
		c.name, c.color
	FROM budgets b
	JOIN categories c ON c.id = b.category_id
`

// CreateBudget inserts a new budget. The unique constraint on
// (category_id, month, year) surfaces as apperrors.ErrDuplicate.
func (r *PgxBudgetRepository) CreateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	query := `
		INSERT INTO budgets (category_id, amount, currency, month, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		budget.CategoryID, budget.Amount, budget.Currency, budget.Month, budget.Year,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("%w: failed to insert budget: %v", apperrors.ErrPersistence, err)
	}
	return r.FindBudgetByID(ctx, id)
}

// FindBudgetByID retrieves a budget with its joined category.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.Pool.QueryRow(ctx, budgetSelect+` WHERE b.id = $1;`, budgetID).Scan(
		&budget.BudgetID, &budget.CategoryID, &budget.Amount, &budget.Currency,
		&budget.Month, &budget.Year, &budget.CreatedAt,
		&budget.CategoryName, &budget.CategoryColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("%w: failed to find budget %d: %v", apperrors.ErrPersistence, budgetID, err)
	}
	return &budget, nil
}

// ListBudgets retrieves budgets optionally filtered by month and/or year.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error) {
	query := budgetSelect + ` WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if month != nil {
		query += fmt.Sprintf(" AND b.month = $%d", argNum)
		args = append(args, *month)
		argNum++
	}
	if year != nil {
		query += fmt.Sprintf(" AND b.year = $%d", argNum)
		args = append(args, *year)
		argNum++
	}
	query += " ORDER BY b.year DESC, b.month DESC, c.name;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budgets: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var budget domain.Budget
		err := rows.Scan(
			&budget.BudgetID, &budget.CategoryID, &budget.Amount, &budget.Currency,
			&budget.Month, &budget.Year, &budget.CreatedAt,
			&budget.CategoryName, &budget.CategoryColor,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget: %v", apperrors.ErrPersistence, err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating budgets: %v", apperrors.ErrPersistence, err)
	}
	return budgets, nil
}

// ListBudgetSpending retrieves every budget of one month joined with the
// expense total recorded against its category in that month.
func (r *PgxBudgetRepository) ListBudgetSpending(ctx context.Context, month, year int) ([]domain.BudgetSpending, error) {
	query := `
		SELECT
			b.id, b.category_id, b.amount, b.currency, b.month, b.year, b.created_at,
			c.name, c.color,
			COALESCE(SUM(t.amount), 0) AS spent
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		LEFT JOIN transactions t
			ON t.category_id = b.category_id
			AND EXTRACT(MONTH FROM t.date) = b.month
			AND EXTRACT(YEAR FROM t.date) = b.year
		WHERE b.month = $1 AND b.year = $2
		GROUP BY b.id, c.name, c.color
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budget spending: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	spendings := []domain.BudgetSpending{}
	for rows.Next() {
		var bs domain.BudgetSpending
		err := rows.Scan(
			&bs.BudgetID, &bs.CategoryID, &bs.Amount, &bs.Currency,
			&bs.Month, &bs.Year, &bs.CreatedAt,
			&bs.CategoryName, &bs.CategoryColor,
			&bs.Spent,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget spending: %v", apperrors.ErrPersistence, err)
		}
		bs.Budgeted = bs.Amount
		spendings = append(spendings, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating budget spending: %v", apperrors.ErrPersistence, err)
	}
	return spendings, nil
}

// UpdateBudget replaces a budget's fields and returns the updated row.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	query := `
		UPDATE budgets
		SET category_id = $1, amount = $2, currency = $3, month = $4, year = $5
		WHERE id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		budget.CategoryID, budget.Amount, budget.Currency, budget.Month, budget.Year, budget.BudgetID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("%w: failed to update budget %d: %v", apperrors.ErrPersistence, budget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budget.BudgetID)
	}
	return r.FindBudgetByID(ctx, budget.BudgetID)
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete budget %d: %v", apperrors.ErrPersistence, budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budgetID)
	}
	return nil
}
