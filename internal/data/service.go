package data

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"rsi-analyzer/internal/model"
)

// Service wraps a Fetcher with the bounded retry/backoff policy and the TTL
// cache. Downstream consumers receive a deduplicated, chronologically sorted
// series or a typed error; retries never leak past this layer.
type Service struct {
	fetcher     Fetcher
	cache       *Cache
	maxAttempts int
	baseDelay   time.Duration
}

// NewService creates a Service. cache may be nil to disable caching.
// maxAttempts < 1 is treated as 1; a zero baseDelay disables the backoff
// sleep (useful in tests).
func NewService(fetcher Fetcher, cache *Cache, maxAttempts int, baseDelay time.Duration) *Service {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Service{
		fetcher:     fetcher,
		cache:       cache,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

// GetBars returns the bar series for a ticker/timeframe, consulting the cache
// first. On upstream failure it retries with a linearly growing delay (an
// empty result counts as a failure here, upstreams return empty on rate
// limits) and reports a FetchError once attempts are exhausted.
func (s *Service) GetBars(ctx context.Context, ticker, timeframe string) ([]model.PriceBar, error) {
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	key := CacheKey(ticker, timeframe)
	if s.cache != nil {
		if bars, ok := s.cache.Get(key); ok {
			log.Printf("[INFO] cache hit: %s %s (%d bars)", ticker, timeframe, len(bars))
			return bars, nil
		}
	}

	var bars []model.PriceBar
	var err error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		bars, err = s.fetcher.FetchBars(ctx, ticker, timeframe)
		if err == nil && len(bars) == 0 {
			err = fmt.Errorf("%s: %w", s.fetcher.Name(), model.ErrInsufficientData)
		}
		if err == nil {
			break
		}
		if attempt < s.maxAttempts-1 {
			delay := s.baseDelay * time.Duration(attempt+1)
			log.Printf("[WARN] fetch %s %s attempt %d/%d failed: %v", ticker, timeframe, attempt+1, s.maxAttempts, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	if err != nil {
		return nil, &FetchError{
			Source:   s.fetcher.Name(),
			Ticker:   ticker,
			Attempts: s.maxAttempts,
			Cause:    err,
		}
	}

	bars = normalize(bars)

	if s.cache != nil {
		s.cache.Set(key, bars)
	}
	return bars, nil
}

// normalize sorts bars chronologically and drops duplicate timestamps,
// keeping the first occurrence. Gaps are left alone.
func normalize(bars []model.PriceBar) []model.PriceBar {
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Timestamp.Before(bars[j].Timestamp)
	})
	out := bars[:0]
	var last time.Time
	for i, b := range bars {
		if i > 0 && b.Timestamp.Equal(last) {
			continue
		}
		out = append(out, b)
		last = b.Timestamp
	}
	return out
}
