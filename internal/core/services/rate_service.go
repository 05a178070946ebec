package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	"finance-tracker/internal/core/ports"
	portsrepo "finance-tracker/internal/core/ports/repositories"
	"finance-tracker/internal/utils"

	"github.com/shopspring/decimal"
)

// RateService resolves exchange rate tables and performs conversions.
// Resolution precedence: same-day cache, fresh fetch, most recent stale
// table; only when all three are exhausted does it fail.
type RateService struct {
	rateRepo portsrepo.RateRepositoryFacade
	source   ports.RateSourceClient
	logger   *slog.Logger
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, source ports.RateSourceClient, logger *slog.Logger) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		source:   source,
		logger:   logger.With(slog.String("component", "rate_service")),
	}
}

// GetLatestRates returns the freshest available rate table.
//
// A same-day cache hit short-circuits without touching the network, so
// repeated calls within one calendar day after a successful fetch never
// re-fetch. When the cache misses, a fresh table is fetched and persisted
// best-effort: a failed save is logged but the in-memory table is still
// returned. When the fetch fails too, the most recent persisted table of
// any age is served as a stale fallback. With no fetch and no cache at
// all, the call fails with apperrors.ErrRatesUnavailable.
func (s *RateService) GetLatestRates(ctx context.Context) (*domain.RateTable, error) {
	today := dateOnly(time.Now())

	cached, err := s.rateRepo.FindRatesByDate(ctx, today)
	if err == nil {
		cached.Provenance = domain.RateProvenanceCached
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to read same-day rates: %w", err)
	}

	fetched, fetchErr := s.source.FetchRates(ctx)
	if fetchErr == nil {
		if saveErr := s.rateRepo.SaveRates(ctx, *fetched); saveErr != nil {
			// the fetched table is still usable in-memory
			s.logger.Warn("failed to persist freshly fetched rates",
				slog.String("date", fetched.Date.Format("2006-01-02")),
				slog.String("error", saveErr.Error()),
			)
		}
		return fetched, nil
	}

	s.logger.Warn("rate fetch failed, falling back to most recent cached table",
		slog.String("error", fetchErr.Error()),
	)

	stale, staleErr := s.rateRepo.FindMostRecentRates(ctx)
	if staleErr == nil {
		stale.Provenance = domain.RateProvenanceStaleFallback
		return stale, nil
	}
	if errors.Is(staleErr, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: fetch failed and cache is empty: %v", apperrors.ErrRatesUnavailable, fetchErr)
	}
	return nil, fmt.Errorf("failed to read fallback rates: %w", staleErr)
}

// ConvertAmount converts between two currencies using the latest resolved table.
func (s *RateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	if fromCode == toCode {
		return amount, nil
	}

	table, err := s.GetLatestRates(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Convert(amount, fromCode, toCode, table)
}

// ListCurrencies returns the currency codes of the latest rate table joined
// with human-readable names; codes without a known name pass through with
// the code itself as the name.
func (s *RateService) ListCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	table, err := s.GetLatestRates(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(table.Rates))
	for code := range table.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	currencies := make([]domain.CurrencyInfo, len(codes))
	for i, code := range codes {
		currencies[i] = domain.CurrencyInfo{Code: code, Name: utils.CurrencyName(code)}
	}
	return currencies, nil
}

// Convert computes a cross-currency amount against a resolved rate table,
// pivoting through the base currency. Identity conversions pass the amount
// through exactly, even for codes absent from the table. The result is
// rounded to 2 decimal places (half away from zero) on the final value
// only, never on the intermediate pivot.
func Convert(amount decimal.Decimal, fromCode, toCode string, table *domain.RateTable) (decimal.Decimal, error) {
	if fromCode == toCode {
		return amount, nil
	}

	fromRate, fromOK := table.Rate(fromCode)
	toRate, toOK := table.Rate(toCode)

	var missing []string
	if !fromOK {
		missing = append(missing, fromCode)
	}
	if !toOK {
		missing = append(missing, toCode)
	}
	if len(missing) > 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", apperrors.ErrRateNotFound, strings.Join(missing, ", "))
	}

	return amount.Mul(fromRate).Div(toRate).Round(2), nil
}

// dateOnly truncates a timestamp to its local calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
