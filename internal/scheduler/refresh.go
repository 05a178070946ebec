package scheduler

import (
	"context"
	"log/slog"
	"time"

	"finance-tracker/internal/core/domain"
)

// RateResolver is the slice of the rate service the scheduler drives.
type RateResolver interface {
	GetLatestRates(ctx context.Context) (*domain.RateTable, error)
}

// RateRefresher resolves the rate table once at startup and then every day
// at a fixed local hour. Failures are logged and retried at the next tick;
// they never stop the loop.
type RateRefresher struct {
	resolver    RateResolver
	logger      *slog.Logger
	refreshHour int
}

// NewRateRefresher creates a refresher that ticks daily at refreshHour local time.
func NewRateRefresher(resolver RateResolver, refreshHour int, logger *slog.Logger) *RateRefresher {
	return &RateRefresher{
		resolver:    resolver,
		logger:      logger.With(slog.String("component", "rate_refresher")),
		refreshHour: refreshHour,
	}
}

// Run blocks until the context is cancelled. It is meant to be launched in
// its own goroutine from main.
func (r *RateRefresher) Run(ctx context.Context) {
	r.refresh(ctx)

	for {
		wait := time.Until(r.nextTick(time.Now()))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("rate refresher stopping")
			return
		case <-timer.C:
			r.refresh(ctx)
		}
	}
}

func (r *RateRefresher) refresh(ctx context.Context) {
	table, err := r.resolver.GetLatestRates(ctx)
	if err != nil {
		r.logger.Error("scheduled rate refresh failed",
			slog.String("error", err.Error()),
		)
		return
	}
	r.logger.Info("rates refreshed",
		slog.String("date", table.Date.Format("2006-01-02")),
		slog.String("source", string(table.Provenance)),
		slog.Int("currency_count", len(table.Rates)),
	)
}

// nextTick returns the next occurrence of the refresh hour strictly after now.
func (r *RateRefresher) nextTick(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), r.refreshHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
