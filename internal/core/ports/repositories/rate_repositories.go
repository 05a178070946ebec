package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/core/domain"
)

// RateReader defines read operations for cached exchange rate data.
type RateReader interface {
	// FindRatesByDate returns all rate records for the given calendar day as
	// one table, or apperrors.ErrNotFound when zero records exist for it.
	// A partial table is never returned silently: zero-or-all.
	FindRatesByDate(ctx context.Context, day time.Time) (*domain.RateTable, error)

	// FindMostRecentRates returns the table for the maximum date with at
	// least one record, or apperrors.ErrNotFound when the store is empty.
	FindMostRecentRates(ctx context.Context) (*domain.RateTable, error)
}

// RateWriter defines write operations for cached exchange rate data.
type RateWriter interface {
	// SaveRates upserts every (currency, date) pair in the table, overwriting
	// the rate value on conflict. A partial write is an error, never a
	// silent success.
	SaveRates(ctx context.Context, table domain.RateTable) error
}

// RateRepositoryFacade combines all rate cache repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
