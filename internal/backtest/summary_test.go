package backtest

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"rsi-analyzer/internal/model"
)

func tradesWithPnL(pnls ...float64) []model.Trade {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	trades := make([]model.Trade, len(pnls))
	cum := 0.0
	for i, p := range pnls {
		cum += p
		trades[i] = model.Trade{
			EntryTime:        start.Add(time.Duration(2*i) * time.Hour),
			ExitTime:         start.Add(time.Duration(2*i+1) * time.Hour),
			Side:             model.SideLong,
			EntryPrice:       100,
			ExitPrice:        100 * (1 + p/100),
			PnLPct:           p,
			CumulativePnLPct: cum,
		}
	}
	return trades
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (model.StrategySummary{}) {
		t.Errorf("empty trade list must summarize to zeros, got %+v", s)
	}
}

func TestSummarize_Metrics(t *testing.T) {
	trades := tradesWithPnL(2, -1, 3, -2)

	s := Summarize(trades)
	if s.TotalTrades != 4 {
		t.Errorf("total trades = %d, want 4", s.TotalTrades)
	}
	if math.Abs(s.TotalPnLPct-2) > 1e-9 {
		t.Errorf("total pnl = %.4f, want 2", s.TotalPnLPct)
	}
	if math.Abs(s.WinRatePct-50) > 1e-9 {
		t.Errorf("win rate = %.4f, want 50", s.WinRatePct)
	}
	if math.Abs(s.AvgPnLPct-0.5) > 1e-9 {
		t.Errorf("avg pnl = %.4f, want 0.5", s.AvgPnLPct)
	}
	// Total must equal the last cumulative value.
	last := trades[len(trades)-1].CumulativePnLPct
	if math.Abs(s.TotalPnLPct-last) > 1e-9 {
		t.Errorf("total pnl %.4f != last cumulative %.4f", s.TotalPnLPct, last)
	}
}

func TestSummarize_MaxDrawdown(t *testing.T) {
	cases := []struct {
		name string
		pnls []float64
		want float64
	}{
		{"all winners", []float64{1, 2, 3}, 0},
		// Curve: 5, 3, -1, 2. Peak 5, trough -1.
		{"mid decline", []float64{5, -2, -4, 3}, 6},
		// Opening losers draw down from the 0 starting peak.
		{"opening losers", []float64{-3, -2, 4}, 5},
		{"single loser", []float64{-1.5}, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize(tradesWithPnL(tc.pnls...))
			if math.Abs(s.MaxDrawdownPct-tc.want) > 1e-9 {
				t.Errorf("max drawdown = %.4f, want %.4f", s.MaxDrawdownPct, tc.want)
			}
			if s.MaxDrawdownPct < 0 {
				t.Error("max drawdown must be a positive magnitude")
			}
		})
	}
}

func TestEncodeTradesCSV(t *testing.T) {
	trades := tradesWithPnL(2.5, -1.25)

	var buf bytes.Buffer
	if err := EncodeTradesCSV(&buf, trades); err != nil {
		t.Fatalf("encode: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	wantHeader := "entry_time,exit_time,side,entry_price,exit_price,pnl_pct,cumulative_pnl_pct"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	fields := strings.Split(lines[1], ",")
	if len(fields) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(fields))
	}
	if fields[2] != "long" {
		t.Errorf("side column = %q, want long", fields[2])
	}
	if fields[5] != "2.500000" {
		t.Errorf("pnl column = %q, want 2.500000", fields[5])
	}
	if _, err := time.Parse(time.RFC3339, fields[0]); err != nil {
		t.Errorf("entry_time %q is not RFC3339: %v", fields[0], err)
	}
}

func TestEncodeTradesCSV_EmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTradesCSV(&buf, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}
