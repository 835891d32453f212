package main

import (
	"flag"
	"fmt"

	"rsi-analyzer/internal/analysis"
	"rsi-analyzer/internal/data"
)

// Demo:
// - Generate a synthetic price series (no network access needed)
// - Run the three RSI strategies and the regime tagger over it
// - Print the report to show how the pieces fit together
func main() {
	bars := flag.Int("bars", 500, "Number of synthetic bars to generate")
	base := flag.Float64("base", 100, "Base price for the synthetic series")
	period := flag.Int("rsi-period", 14, "RSI period")
	flag.Parse()

	series := data.GenerateBars(*base, *bars)

	p := analysis.Params{
		RSIPeriod: *period,
		Lower:     30,
		Upper:     70,
		ExitLevel: 50,
	}
	report, err := analysis.New(nil).Run(series, p, analysis.DefaultStrategies(p))
	if err != nil {
		panic(err)
	}

	fmt.Printf("synthetic series: %d bars, %s to %s\n",
		report.Bars, report.Start.Format("2006-01-02 15:04"), report.End.Format("2006-01-02 15:04"))
	fmt.Printf("regime: %s (vol=%.4f trend=%.6f)\n\n", report.Regime, report.RegimeMetrics.Vol, report.RegimeMetrics.Trend)

	for _, res := range report.Strategies {
		s := res.Summary
		fmt.Printf("%s (%s)\n", res.Config.Name, res.Config.Mode)
		fmt.Printf("  trades=%d total=%.2f%% win=%.2f%% avg=%.2f%% maxDD=%.2f%%\n",
			s.TotalTrades, s.TotalPnLPct, s.WinRatePct, s.AvgPnLPct, s.MaxDrawdownPct)
		for i, t := range res.Trades {
			if i >= 3 {
				fmt.Printf("  ... %d more trades\n", len(res.Trades)-3)
				break
			}
			fmt.Printf("  %s %s -> %s pnl=%.2f%%\n",
				t.Side, t.EntryTime.Format("01-02 15:04"), t.ExitTime.Format("01-02 15:04"), t.PnLPct)
		}
		fmt.Println()
	}
}
