package pgsql

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the transaction repository using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const transactionSelect = `
	SELECT
		t.id, t.amount, t.currency, t.category_id, t.description, t.date,
		t.is_recurring, t.recurrence_interval, t.created_at,
		c.name, c.type, c.color
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id
`

// CreateTransaction inserts a new transaction and returns it with the joined
// category summary.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (amount, currency, category_id, description, date, is_recurring, recurrence_interval)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		txn.Amount, txn.Currency, txn.CategoryID, txn.Description, txn.Date,
		txn.IsRecurring, txn.RecurrenceInterval,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert transaction: %v", apperrors.ErrPersistence, err)
	}
	return r.FindTransactionByID(ctx, id)
}

// FindTransactionByID retrieves a transaction with its joined category.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := r.Pool.QueryRow(ctx, transactionSelect+` WHERE t.id = $1;`, transactionID).Scan(
		&txn.TransactionID, &txn.Amount, &txn.Currency, &txn.CategoryID, &txn.Description, &txn.Date,
		&txn.IsRecurring, &txn.RecurrenceInterval, &txn.CreatedAt,
		&txn.CategoryName, &txn.CategoryType, &txn.CategoryColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("%w: failed to find transaction %d: %v", apperrors.ErrPersistence, transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions newest-first with optional date
// range and category filters.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := transactionSelect + ` WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argNum)
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argNum)
		args = append(args, *filter.EndDate)
		argNum++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argNum)
		args = append(args, *filter.CategoryID)
		argNum++
	}
	query += " ORDER BY t.date DESC, t.id DESC;"

	return r.queryTransactions(ctx, query, args...)
}

// ListRecentTransactions retrieves the newest transactions by date.
func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := transactionSelect + ` ORDER BY t.date DESC, t.id DESC LIMIT $1;`
	return r.queryTransactions(ctx, query, limit)
}

// UpdateTransaction replaces a transaction's fields and returns the updated row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $1, currency = $2, category_id = $3, description = $4,
			date = $5, is_recurring = $6, recurrence_interval = $7
		WHERE id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.Amount, txn.Currency, txn.CategoryID, txn.Description, txn.Date,
		txn.IsRecurring, txn.RecurrenceInterval, txn.TransactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update transaction %d: %v", apperrors.ErrPersistence, txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, txn.TransactionID)
	}
	return r.FindTransactionByID(ctx, txn.TransactionID)
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete transaction %d: %v", apperrors.ErrPersistence, transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list transactions: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.TransactionID, &txn.Amount, &txn.Currency, &txn.CategoryID, &txn.Description, &txn.Date,
			&txn.IsRecurring, &txn.RecurrenceInterval, &txn.CreatedAt,
			&txn.CategoryName, &txn.CategoryType, &txn.CategoryColor,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction: %v", apperrors.ErrPersistence, err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating transactions: %v", apperrors.ErrPersistence, err)
	}
	return txns, nil
}
