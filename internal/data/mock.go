package data

import (
	"context"
	"math"
	"time"

	"rsi-analyzer/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.PriceBar
	Err  error

	// Calls counts FetchBars invocations, so tests can assert cache hits.
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _, _ string) ([]model.PriceBar, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(100.0, 300), nil
}

// GenerateBars produces a deterministic synthetic series: a gentle sine wave
// around basePrice, hourly bars ending now. Useful for demo mode and tests
// that need oscillating RSI without network access.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	start := time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(count) * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + 0.03*math.Sin(float64(i)/8.0))
		bars[i] = model.PriceBar{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      p * 0.999,
			High:      p * 1.005,
			Low:       p * 0.995,
			Close:     p,
			Volume:    1000000,
		}
	}
	return bars
}
