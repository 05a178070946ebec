package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxRateRepository implements the rate cache repository using pgxpool.
// Each row stores one per-unit rate against the base currency for one
// calendar day.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindRatesByDate retrieves every rate stored for one calendar day as a
// single table. Zero rows for the day yields apperrors.ErrNotFound.
func (r *PgxRateRepository) FindRatesByDate(ctx context.Context, day time.Time) (*domain.RateTable, error) {
	query := `
		SELECT currency_code, rate
		FROM exchange_rates
		WHERE rate_date = $1;
	`
	rows, err := r.Pool.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query rates by date: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	rates, err := scanRates(rows)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: no rates stored for %s", apperrors.ErrNotFound, day.Format("2006-01-02"))
	}

	return &domain.RateTable{Rates: rates, Date: day}, nil
}

// FindMostRecentRates retrieves the full table for the newest stored day.
// An empty store yields apperrors.ErrNotFound.
func (r *PgxRateRepository) FindMostRecentRates(ctx context.Context) (*domain.RateTable, error) {
	// MAX over an empty table yields one NULL row, not ErrNoRows
	var maxDate *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MAX(rate_date) FROM exchange_rates;`).Scan(&maxDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rate cache is empty", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find newest rate date: %v", apperrors.ErrPersistence, err)
	}
	if maxDate == nil {
		return nil, fmt.Errorf("%w: rate cache is empty", apperrors.ErrNotFound)
	}

	return r.FindRatesByDate(ctx, *maxDate)
}

// SaveRates upserts every (currency, date) pair of the table in one
// transaction, overwriting the rate value on conflict. A failure on any
// row rolls the whole batch back.
func (r *PgxRateRepository) SaveRates(ctx context.Context, table domain.RateTable) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchange_rates (currency_code, rate, rate_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code, rate_date)
		DO UPDATE SET rate = EXCLUDED.rate;
	`
	for code, rate := range table.Rates {
		if _, err := tx.Exec(ctx, query, code, rate, table.Date); err != nil {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("%w: failed to upsert rate for %s: %v", apperrors.ErrPersistence, code, err)
		}
	}

	return r.Commit(ctx, tx)
}

func scanRates(rows pgx.Rows) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for rows.Next() {
		var code string
		var rate decimal.Decimal
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("%w: failed to scan rate row: %v", apperrors.ErrPersistence, err)
		}
		rates[code] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rate rows: %v", apperrors.ErrPersistence, err)
	}
	return rates, nil
}
