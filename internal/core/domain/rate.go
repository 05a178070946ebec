package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the reference currency of the rate feed. All rates are
// quoted as "1 foreign unit = rate units of the base currency".
const BaseCurrency = "RON"

// RateProvenance labels how a RateTable was obtained.
type RateProvenance string

const (
	// RateProvenanceFetched marks a table fetched fresh from the source feed.
	RateProvenanceFetched RateProvenance = "fetched"
	// RateProvenanceCached marks a same-day table served from the cache store.
	RateProvenanceCached RateProvenance = "cached"
	// RateProvenanceStaleFallback marks the most recent persisted table,
	// possibly from an earlier date, served because a fresh fetch failed.
	RateProvenanceStaleFallback RateProvenance = "stale-fallback"
)

// RateTable holds the per-unit exchange rates for a single effective date.
// The base currency is always present with a rate of exactly 1.
type RateTable struct {
	Rates      map[string]decimal.Decimal `json:"rates"`
	Date       time.Time                  `json:"date"` // calendar day, no time component
	Provenance RateProvenance             `json:"provenance"`
}

// Rate returns the per-unit rate for a currency code, and whether it is present.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.Rates[code]
	return r, ok
}

// CurrencyInfo pairs a currency code with a human-readable name.
type CurrencyInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
