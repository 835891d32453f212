package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rsi-analyzer/internal/analysis"
	"rsi-analyzer/internal/backtest"
	"rsi-analyzer/internal/config"
	"rsi-analyzer/internal/data"
	"rsi-analyzer/internal/regime"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --ticker SPY --timeframe 1h [--rsi-period 14] [--lower 30] [--upper 70] [--exit 50] [--out results]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - prints a per-strategy summary plus the detected market regime")
	fmt.Println("  - with --out, writes one trade-log CSV per strategy into the directory")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	ticker := fs.String("ticker", "", "Ticker symbol (Yahoo notation, e.g. SPY or EURUSD=X)")
	timeframe := fs.String("timeframe", "1h", "Bar timeframe: 1m, 5m, 15m, 1h, 4h, 1d")
	cfgPath := fs.String("config", "config.yaml", "Path to YAML config (missing file uses defaults)")
	rsiPeriod := fs.Int("rsi-period", 0, "RSI period override (0 = configured default)")
	lower := fs.Float64("lower", 0, "Lower RSI threshold override (0 = configured default)")
	upper := fs.Float64("upper", 0, "Upper RSI threshold override (0 = configured default)")
	exit := fs.Float64("exit", 0, "RSI exit level override (0 = configured default)")
	outDir := fs.String("out", "", "Optional: directory for per-strategy trade-log CSVs")
	_ = fs.Parse(args)

	if *ticker == "" {
		fmt.Println("--ticker is required")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	p := analysis.Params{
		RSIPeriod: cfg.Defaults.RSIPeriod,
		Lower:     cfg.Defaults.Lower,
		Upper:     cfg.Defaults.Upper,
		ExitLevel: cfg.Defaults.ExitLevel,
	}
	if *rsiPeriod > 0 {
		p.RSIPeriod = *rsiPeriod
	}
	if *lower > 0 {
		p.Lower = *lower
	}
	if *upper > 0 {
		p.Upper = *upper
	}
	if *exit > 0 {
		p.ExitLevel = *exit
	}

	fetcher, err := buildFetcher(cfg)
	if err != nil {
		fatal(err)
	}
	svc := data.NewService(fetcher, nil, cfg.Data.MaxAttempts, cfg.RetryBaseDelay())

	bars, err := svc.GetBars(context.Background(), *ticker, *timeframe)
	if err != nil {
		fatal(err)
	}

	tagger := &regime.Tagger{
		Window:         cfg.Regime.Window,
		TrendThreshold: cfg.Regime.TrendThreshold,
		VolThreshold:   cfg.Regime.VolThreshold,
	}
	report, err := analysis.New(tagger).Run(bars, p, analysis.DefaultStrategies(p))
	if err != nil {
		fatal(err)
	}

	printReport(*ticker, *timeframe, report)

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fatal(err)
		}
		for _, res := range report.Strategies {
			name := fmt.Sprintf("%s_%s_%s_trades.csv", *ticker, *timeframe, string(res.Config.Mode))
			path := filepath.Join(*outDir, sanitize(name))
			if err := backtest.WriteTradesCSV(path, res.Trades); err != nil {
				fatal(err)
			}
			fmt.Printf("wrote %s (%d trades)\n", path, len(res.Trades))
		}
	}
}

func printReport(ticker, timeframe string, report *analysis.Report) {
	fmt.Printf("%s %s: %d bars, %s to %s\n",
		ticker, timeframe, report.Bars,
		report.Start.Format("2006-01-02 15:04"), report.End.Format("2006-01-02 15:04"))
	fmt.Printf("regime: %s (vol=%.4f trend=%.6f)\n\n", report.Regime, report.RegimeMetrics.Vol, report.RegimeMetrics.Trend)

	fmt.Printf("%-22s %8s %10s %10s %10s %10s\n", "strategy", "trades", "total%", "win%", "avg%", "maxDD%")
	for _, res := range report.Strategies {
		s := res.Summary
		fmt.Printf("%-22s %8d %10.2f %10.2f %10.2f %10.2f\n",
			res.Config.Name, s.TotalTrades, s.TotalPnLPct, s.WinRatePct, s.AvgPnLPct, s.MaxDrawdownPct)
	}
}

func buildFetcher(cfg *config.Config) (data.Fetcher, error) {
	switch cfg.Data.Source {
	case "yahoo":
		return data.NewYahooFetcher(cfg.Data.YahooBaseURL), nil
	case "alpaca":
		return data.NewAlpacaFetcher(cfg.Data.Alpaca.APIKey, cfg.Data.Alpaca.APISecret, cfg.Data.Alpaca.DataURL), nil
	case "mock":
		return &data.MockFetcher{Bars: data.GenerateBars(100, 500)}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// sanitize strips the characters Yahoo symbols carry that filesystems
// dislike (EURUSD=X, GC=F).
func sanitize(name string) string {
	r := strings.NewReplacer("=", "", "/", "-")
	return r.Replace(name)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
