package model

import "time"

// PriceBar represents one OHLCV candlestick for a ticker/timeframe.
// Bars are expected to arrive time-ordered with no duplicate timestamps;
// gaps (holidays, halts) are tolerated and never interpolated.
type PriceBar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Closes extracts the closing-price sequence from a bar series.
func Closes(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
