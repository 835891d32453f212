package backtest

import "rsi-analyzer/internal/model"

// Summarize reduces a chronological trade list to display metrics. An empty
// list yields an all-zero summary, not an error. P&L aggregation is additive
// (sums of per-trade percentages), matching the cumulative_pnl_pct column.
func Summarize(trades []model.Trade) model.StrategySummary {
	s := model.StrategySummary{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return s
	}

	wins := 0
	for _, t := range trades {
		s.TotalPnLPct += t.PnLPct
		if t.PnLPct > 0 {
			wins++
		}
	}
	s.WinRatePct = 100.0 * float64(wins) / float64(len(trades))
	s.AvgPnLPct = s.TotalPnLPct / float64(len(trades))
	s.MaxDrawdownPct = maxDrawdown(trades)
	return s
}

// maxDrawdown is the largest peak-to-trough decline of the cumulative P&L
// curve, as a positive magnitude. The curve starts at 0 before the first
// trade, so an opening string of losers counts as drawdown from that peak.
func maxDrawdown(trades []model.Trade) float64 {
	peak := 0.0
	maxDD := 0.0
	for _, t := range trades {
		cum := t.CumulativePnLPct
		if cum > peak {
			peak = cum
		}
		if dd := peak - cum; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}
