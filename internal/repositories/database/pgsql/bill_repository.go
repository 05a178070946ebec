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

// PgxBillRepository implements the bill repository using pgxpool.
type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(db *pgxpool.Pool) *PgxBillRepository {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const billSelect = `
	SELECT
		b.id, b.name, b.amount, b.currency, b.due_date, b.category_id,
		b.is_recurring, b.recurrence_interval, b.status, b.created_at,
		c.name, c.color
	FROM bills b
	LEFT JOIN categories c ON c.id = b.category_id
`

// CreateBill inserts a new bill and returns it with the joined category.
func (r *PgxBillRepository) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	query := `
		INSERT INTO bills (name, amount, currency, due_date, category_id, is_recurring, recurrence_interval, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		bill.Name, bill.Amount, bill.Currency, bill.DueDate, bill.CategoryID,
		bill.IsRecurring, bill.RecurrenceInterval, bill.Status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert bill: %v", apperrors.ErrPersistence, err)
	}
	return r.FindBillByID(ctx, id)
}

// FindBillByID retrieves a bill with its joined category.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.Pool.QueryRow(ctx, billSelect+` WHERE b.id = $1;`, billID).Scan(
		&bill.BillID, &bill.Name, &bill.Amount, &bill.Currency, &bill.DueDate, &bill.CategoryID,
		&bill.IsRecurring, &bill.RecurrenceInterval, &bill.Status, &bill.CreatedAt,
		&bill.CategoryName, &bill.CategoryColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bill %d", apperrors.ErrNotFound, billID)
		}
		return nil, fmt.Errorf("%w: failed to find bill %d: %v", apperrors.ErrPersistence, billID, err)
	}
	return &bill, nil
}

// ListBills retrieves bills ordered by due date. The upcoming filter
// restricts to pending bills due within the next seven days.
func (r *PgxBillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	query := billSelect + ` WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", argNum)
		args = append(args, *filter.Status)
		argNum++
	}
	if filter.Upcoming {
		query += " AND b.status = 'pending' AND b.due_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '7 days'"
	}
	query += " ORDER BY b.due_date, b.id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bills: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		var bill domain.Bill
		err := rows.Scan(
			&bill.BillID, &bill.Name, &bill.Amount, &bill.Currency, &bill.DueDate, &bill.CategoryID,
			&bill.IsRecurring, &bill.RecurrenceInterval, &bill.Status, &bill.CreatedAt,
			&bill.CategoryName, &bill.CategoryColor,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan bill: %v", apperrors.ErrPersistence, err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating bills: %v", apperrors.ErrPersistence, err)
	}
	return bills, nil
}

// UpdateBill replaces a bill's fields and returns the updated row.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	query := `
		UPDATE bills
		SET name = $1, amount = $2, currency = $3, due_date = $4, category_id = $5,
			is_recurring = $6, recurrence_interval = $7, status = $8
		WHERE id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		bill.Name, bill.Amount, bill.Currency, bill.DueDate, bill.CategoryID,
		bill.IsRecurring, bill.RecurrenceInterval, bill.Status, bill.BillID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update bill %d: %v", apperrors.ErrPersistence, bill.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: bill %d", apperrors.ErrNotFound, bill.BillID)
	}
	return r.FindBillByID(ctx, bill.BillID)
}

// UpdateBillStatus sets only the status column.
func (r *PgxBillRepository) UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.Bill, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE bills SET status = $1 WHERE id = $2;`, status, billID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update bill %d status: %v", apperrors.ErrPersistence, billID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: bill %d", apperrors.ErrNotFound, billID)
	}
	return r.FindBillByID(ctx, billID)
}

// DeleteBill removes a bill.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bills WHERE id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete bill %d: %v", apperrors.ErrPersistence, billID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %d", apperrors.ErrNotFound, billID)
	}
	return nil
}
