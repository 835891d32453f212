package regime

import (
	"math"
	"testing"
	"time"

	"rsi-analyzer/internal/model"
)

func barsFromCloses(closes []float64) []model.PriceBar {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

func TestTag_InsufficientData(t *testing.T) {
	tagger := NewTagger()

	cases := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"a few bars", 5},
		{"exactly window", DefaultWindow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			closes := make([]float64, tc.n)
			for i := range closes {
				closes[i] = 100
			}
			label, metrics := tagger.Tag(barsFromCloses(closes))
			if label != model.RegimeUnknown {
				t.Errorf("label = %s, want unknown", label)
			}
			if metrics.Vol != 0 || metrics.Trend != 0 {
				t.Errorf("metrics must be zero for unknown, got %+v", metrics)
			}
		})
	}
}

func TestTag_Trending(t *testing.T) {
	// Steady 1% per-bar climb: near-zero return variance, clear slope.
	closes := make([]float64, 40)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 1.01
	}

	label, metrics := NewTagger().Tag(barsFromCloses(closes))
	if label != model.RegimeTrending {
		t.Fatalf("label = %s (vol=%.4f trend=%.6f), want trending", label, metrics.Vol, metrics.Trend)
	}
	if metrics.Trend <= DefaultTrendThreshold {
		t.Errorf("trend = %.6f, expected above threshold %.6f", metrics.Trend, DefaultTrendThreshold)
	}
	if metrics.Vol >= DefaultVolThreshold {
		t.Errorf("vol = %.4f, expected below ceiling %.4f", metrics.Vol, DefaultVolThreshold)
	}
}

func TestTag_DowntrendIsAlsoTrending(t *testing.T) {
	closes := make([]float64, 40)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 0.99
	}

	label, metrics := NewTagger().Tag(barsFromCloses(closes))
	if label != model.RegimeTrending {
		t.Fatalf("label = %s, want trending for a steady decline", label)
	}
	if metrics.Trend >= 0 {
		t.Errorf("trend = %.6f, expected negative for a decline", metrics.Trend)
	}
}

func TestTag_Volatile(t *testing.T) {
	// Alternating +5%/-5% moves: huge return variance, no net direction.
	closes := make([]float64, 40)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = 100
		} else {
			closes[i] = 105
		}
	}

	label, metrics := NewTagger().Tag(barsFromCloses(closes))
	if label != model.RegimeVolatile {
		t.Fatalf("label = %s (vol=%.4f trend=%.6f), want volatile", label, metrics.Vol, metrics.Trend)
	}
	if metrics.Vol <= DefaultVolThreshold {
		t.Errorf("vol = %.4f, expected above threshold %.4f", metrics.Vol, DefaultVolThreshold)
	}
}

func TestTag_Ranging(t *testing.T) {
	// Tiny oscillation around 100: quiet and directionless.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + 0.1*math.Sin(float64(i))
	}

	label, _ := NewTagger().Tag(barsFromCloses(closes))
	if label != model.RegimeRanging {
		t.Fatalf("label = %s, want ranging", label)
	}
}

func TestTag_UsesTrailingWindowOnly(t *testing.T) {
	// A long flat prefix followed by a trailing climb must classify from the
	// climb, not the prefix.
	closes := make([]float64, 100)
	for i := 0; i < 60; i++ {
		closes[i] = 100
	}
	for i := 60; i < 100; i++ {
		closes[i] = closes[i-1] * 1.01
	}

	label, _ := NewTagger().Tag(barsFromCloses(closes))
	if label != model.RegimeTrending {
		t.Fatalf("label = %s, want trending from the trailing window", label)
	}
}

func TestTag_CustomWindow(t *testing.T) {
	tagger := &Tagger{Window: 10, TrendThreshold: DefaultTrendThreshold, VolThreshold: DefaultVolThreshold}

	closes := make([]float64, 11)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] * 1.01
	}

	label, _ := tagger.Tag(barsFromCloses(closes))
	if label != model.RegimeTrending {
		t.Fatalf("label = %s, want trending with an 11-bar series and window 10", label)
	}
}
