// Package bnr fetches the daily exchange rate table published by the
// National Bank of Romania as an XML document and normalizes it into a
// per-unit rate table quoted against the leu.
package bnr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

const (
	// DefaultFeedURL is the public BNR daily rates feed.
	DefaultFeedURL = "https://www.bnr.ro/nbrfxrates.xml"

	defaultTimeout = 10 * time.Second
	dateLayout     = "2006-01-02"
	userAgent      = "finance-tracker/1.0"
)

// Options parameterise the feed client.
type Options struct {
	FeedURL string
	Timeout time.Duration
}

// Client fetches and parses the BNR feed. It performs no persistence.
type Client struct {
	opts    Options
	httpC   *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient creates a feed client with a bounded request timeout and a
// circuit breaker so a flapping upstream fails fast instead of tying up
// request handlers for the full timeout.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.FeedURL == "" {
		opts.FeedURL = DefaultFeedURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "bnr-feed",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Client{
		opts:    opts,
		httpC:   &http.Client{Timeout: opts.Timeout},
		breaker: breaker,
		logger:  logger.With(slog.String("component", "bnr_client")),
	}
}

// dataSet mirrors the BNR document: a Body holding a dated Cube of Rate
// entries, each with a currency code, an optional multiplier and a value
// meaning "multiplier units of the currency = value RON".
type dataSet struct {
	XMLName xml.Name `xml:"DataSet"`
	Body    struct {
		Cube []cube `xml:"Cube"`
	} `xml:"Body"`
}

type cube struct {
	Date  string      `xml:"date,attr"`
	Rates []rateEntry `xml:"Rate"`
}

type rateEntry struct {
	Currency   string `xml:"currency,attr"`
	Multiplier string `xml:"multiplier,attr"`
	Value      string `xml:",chardata"`
}

// FetchRates issues one GET against the feed and returns the normalized
// table tagged with the fetched provenance. An open breaker, transport
// failure or non-2xx status yields apperrors.ErrSourceUnavailable; a
// document that cannot be decoded yields apperrors.ErrMalformedResponse.
func (c *Client) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("%w: circuit breaker open", apperrors.ErrSourceUnavailable)
		}
		return nil, err
	}
	return result.(*domain.RateTable), nil
}

func (c *Client) fetch(ctx context.Context) (*domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpC.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrSourceUnavailable, err)
	}

	table, err := parseFeed(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("fetched BNR rates",
		slog.String("date", table.Date.Format(dateLayout)),
		slog.Int("currency_count", len(table.Rates)),
	)
	return table, nil
}

// parseFeed normalizes the XML document into a per-unit rate table. The
// base currency is always injected with rate 1; when the document carries
// no date attribute the local calendar day is substituted.
func parseFeed(body []byte) (*domain.RateTable, error) {
	var doc dataSet
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}
	if len(doc.Body.Cube) == 0 {
		return nil, fmt.Errorf("%w: no Cube element in feed", apperrors.ErrMalformedResponse)
	}

	cube := doc.Body.Cube[0]
	effectiveDate := today()
	if cube.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, cube.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cube date %q", apperrors.ErrMalformedResponse, cube.Date)
		}
		effectiveDate = parsed
	}

	rates := map[string]decimal.Decimal{
		domain.BaseCurrency: decimal.NewFromInt(1),
	}
	for _, entry := range cube.Rates {
		code := strings.TrimSpace(entry.Currency)
		if code == "" {
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSpace(entry.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: bad rate value %q for %s", apperrors.ErrMalformedResponse, entry.Value, code)
		}
		if value.IsZero() {
			continue
		}
		multiplier := int64(1)
		if entry.Multiplier != "" {
			multiplier, err = strconv.ParseInt(entry.Multiplier, 10, 64)
			if err != nil || multiplier <= 0 {
				return nil, fmt.Errorf("%w: bad multiplier %q for %s", apperrors.ErrMalformedResponse, entry.Multiplier, code)
			}
		}
		// the feed quotes "multiplier units = value RON"; store per-unit
		rates[code] = value.Div(decimal.NewFromInt(multiplier))
	}

	return &domain.RateTable{
		Rates:      rates,
		Date:       effectiveDate,
		Provenance: domain.RateProvenanceFetched,
	}, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
