// Package indicator computes technical indicators over closing-price series.
package indicator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports malformed indicator parameters. It is surfaced
// immediately to the caller and never retried.
var ErrInvalidParameter = errors.New("invalid parameter")

// RSI computes the Relative Strength Index over the given period using
// Wilder's exponential smoothing: after seeding the averages with a simple
// mean of the first `period` gains/losses, each subsequent average is
// (prev*(period-1) + current) / period. The smoothing method is fixed here
// for reproducibility; changing it changes every value after warm-up.
//
// The result is aligned index-for-index with closes. The first `period`
// entries are NaN (warm-up: RSI needs `period` prior price changes).
// Division-by-zero cases are defined behavior, not errors: avgLoss == 0
// yields 100 (no losses, maximal strength); avgGain == avgLoss == 0 yields
// 50 (no movement).
func RSI(closes []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: rsi period must be >= 1, got %d", ErrInvalidParameter, period)
	}
	if period >= len(closes) {
		return nil, fmt.Errorf("%w: rsi period %d requires more than %d closes", ErrInvalidParameter, period, len(closes))
	}

	out := make([]float64, len(closes))
	for i := 0; i < period; i++ {
		out[i] = math.NaN()
	}

	// Seed averages with a simple mean over the first `period` changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	// Wilder smoothing for the remaining bars.
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}

	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
