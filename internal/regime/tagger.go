// Package regime classifies recent price behavior into a coarse label using
// rolling volatility and trend-slope heuristics. The label is a banner-level
// hint, not a rigorous regime-detection model.
package regime

import (
	"gonum.org/v1/gonum/stat"

	"rsi-analyzer/internal/model"
)

// Default tagger constants. The window and cutoffs are tunable but fixed per
// Tagger instance so output is reproducible across runs.
const (
	// DefaultWindow is the trailing bar count examined.
	DefaultWindow = 30
	// DefaultTrendThreshold is the minimum |per-bar fractional drift| for a
	// trending call: 0.0005 means the fitted line moves 0.05% of the mean
	// close per bar.
	DefaultTrendThreshold = 0.0005
	// DefaultVolThreshold is the per-bar return stddev above which the market
	// is called volatile. It doubles as the volatility ceiling for trending:
	// a clean trend call requires vol below it.
	DefaultVolThreshold = 0.02
)

// Tagger classifies a price series from its trailing window.
type Tagger struct {
	Window         int
	TrendThreshold float64
	VolThreshold   float64
}

// NewTagger returns a Tagger with the default window and cutoffs.
func NewTagger() *Tagger {
	return &Tagger{
		Window:         DefaultWindow,
		TrendThreshold: DefaultTrendThreshold,
		VolThreshold:   DefaultVolThreshold,
	}
}

// Tag classifies the last Window bars of the series:
//   - vol: sample standard deviation of simple per-bar returns over the window
//   - trend: least-squares slope of close vs bar index over the window,
//     normalized by the window's mean close (per-bar fractional drift), so the
//     cutoff is scale-independent across tickers
//
// Decision order: trending when |trend| exceeds the trend threshold and vol
// stays below the ceiling; volatile when vol exceeds the threshold (checked
// before ranging); ranging otherwise. Fewer than Window+1 bars (returns need
// one extra bar) yields unknown with zero metrics; that is a classification
// outcome, not an error.
func (t *Tagger) Tag(bars []model.PriceBar) (model.RegimeLabel, model.RegimeMetrics) {
	if len(bars) < t.Window+1 {
		return model.RegimeUnknown, model.RegimeMetrics{}
	}

	closes := model.Closes(bars[len(bars)-t.Window-1:])

	// Per-bar simple returns over the window.
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			returns[i-1] = (closes[i] - closes[i-1]) / closes[i-1]
		}
	}
	vol := stat.StdDev(returns, nil)

	// Least-squares fit of close against bar index, normalized by mean close.
	window := closes[1:]
	xs := make([]float64, len(window))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, window, nil, false)
	mean := stat.Mean(window, nil)
	trend := 0.0
	if mean != 0 {
		trend = slope / mean
	}

	metrics := model.RegimeMetrics{Vol: vol, Trend: trend}

	switch {
	case abs(trend) > t.TrendThreshold && vol < t.VolThreshold:
		return model.RegimeTrending, metrics
	case vol > t.VolThreshold:
		return model.RegimeVolatile, metrics
	default:
		return model.RegimeRanging, metrics
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
