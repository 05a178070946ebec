package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	calls atomic.Int32
	err   error
}

func (s *stubResolver) GetLatestRates(ctx context.Context) (*domain.RateTable, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.RateTable{
		Rates:      map[string]decimal.Decimal{"RON": decimal.NewFromInt(1)},
		Date:       time.Now(),
		Provenance: domain.RateProvenanceFetched,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateRefresher_RefreshesOnStartup(t *testing.T) {
	resolver := &stubResolver{}
	refresher := NewRateRefresher(resolver, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return resolver.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after context cancel")
	}
}

func TestRateRefresher_SurvivesFailures(t *testing.T) {
	resolver := &stubResolver{err: apperrors.ErrRatesUnavailable}
	refresher := NewRateRefresher(resolver, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return resolver.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestNextTick(t *testing.T) {
	refresher := NewRateRefresher(&stubResolver{}, 2, discardLogger())

	// Before the refresh hour, the tick lands on the same day
	now := time.Date(2025, 6, 15, 1, 30, 0, 0, time.Local)
	next := refresher.nextTick(now)
	assert.Equal(t, time.Date(2025, 6, 15, 2, 0, 0, 0, time.Local), next)

	// After the refresh hour, it rolls to the next day
	now = time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	next = refresher.nextTick(now)
	assert.Equal(t, time.Date(2025, 6, 16, 2, 0, 0, 0, time.Local), next)

	// Exactly at the refresh hour, it rolls forward too
	now = time.Date(2025, 6, 15, 2, 0, 0, 0, time.Local)
	next = refresher.nextTick(now)
	assert.Equal(t, time.Date(2025, 6, 16, 2, 0, 0, 0, time.Local), next)
}
