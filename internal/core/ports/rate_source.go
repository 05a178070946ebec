package ports

import (
	"context"

	"finance-tracker/internal/core/domain"
)

// RateSourceClient fetches a fresh daily rate table from the external feed.
// Implementations perform no persistence; they fetch and parse only.
type RateSourceClient interface {
	// FetchRates issues one bounded request to the feed and returns the
	// normalized per-unit rate table tagged RateProvenanceFetched.
	// Fails with apperrors.ErrSourceUnavailable on network/timeout/non-2xx
	// errors and apperrors.ErrMalformedResponse when the document does not
	// match the expected schema.
	FetchRates(ctx context.Context) (*domain.RateTable, error)
}
