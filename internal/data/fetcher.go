// Package data retrieves OHLCV series for the analyzer. It owns everything
// the computational core does not: network clients, retry/backoff, and the
// TTL response cache. The core only ever sees a clean []model.PriceBar.
package data

import (
	"context"
	"fmt"

	"rsi-analyzer/internal/model"
)

// Timeframes supported by the fetchers, in UI order.
var Timeframes = []string{"1m", "5m", "15m", "1h", "4h", "1d"}

// periodLookup maps a bar timeframe to the history range requested from the
// upstream API. Intraday history depth is limited by the providers, so finer
// timeframes get shorter ranges.
var periodLookup = map[string]string{
	"1m":  "7d",
	"5m":  "60d",
	"15m": "60d",
	"1h":  "180d",
	"4h":  "730d",
	"1d":  "max",
}

// PeriodFor returns the history range fetched for a timeframe, defaulting to
// 90 days for unrecognized values.
func PeriodFor(timeframe string) string {
	if p, ok := periodLookup[timeframe]; ok {
		return p
	}
	return "90d"
}

// Fetcher retrieves an ordered OHLCV series for one ticker/timeframe.
type Fetcher interface {
	FetchBars(ctx context.Context, ticker, timeframe string) ([]model.PriceBar, error)
	Name() string
}

// FetchError reports an upstream retrieval failure after retries were
// exhausted. The wrapped cause is the last attempt's error.
type FetchError struct {
	Source   string
	Ticker   string
	Attempts int
	Cause    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch for %q failed after %d attempts: %v", e.Source, e.Ticker, e.Attempts, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }
