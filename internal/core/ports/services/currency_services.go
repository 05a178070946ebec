package services

import (
	"context"

	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RateReaderSvc defines the rate resolution and conversion operations
// consumed by route handlers and the refresh scheduler.
type RateReaderSvc interface {
	// GetLatestRates resolves the freshest available rate table: same-day
	// cache, then a fresh fetch, then the most recent stale table. Fails
	// with apperrors.ErrRatesUnavailable only when all three are exhausted.
	GetLatestRates(ctx context.Context) (*domain.RateTable, error)

	// ConvertAmount converts between two currencies using the latest
	// resolved table, rounding the final result to 2 decimal places.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)

	// ListCurrencies returns the codes of the latest rate table joined with
	// display names; unknown codes pass through with the code as name.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error)
}

// RateSvcFacade combines all rate-related service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}

// PreferenceSvcFacade manages the single user's display currency choice.
type PreferenceSvcFacade interface {
	// GetDisplayCurrency returns the stored display currency, defaulting to
	// the base currency when none has ever been set.
	GetDisplayCurrency(ctx context.Context) (string, error)

	// SetDisplayCurrency overwrites the stored display currency unconditionally.
	SetDisplayCurrency(ctx context.Context, currencyCode string) error
}
