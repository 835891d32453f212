// Package analysis orchestrates one full dashboard evaluation: RSI
// computation, the three strategy backtests, and the regime tag. It is the
// single entry point both the HTTP API and the CLI call.
package analysis

import (
	"fmt"
	"time"

	"rsi-analyzer/internal/backtest"
	"rsi-analyzer/internal/indicator"
	"rsi-analyzer/internal/model"
	"rsi-analyzer/internal/regime"
	"rsi-analyzer/internal/strategy"
)

// Params are the user-tunable analysis knobs. The recommended ordering
// Lower < ExitLevel < Upper is not enforced: out-of-order thresholds yield
// strategies that rarely trigger, which is a result, not an error.
type Params struct {
	RSIPeriod int
	Lower     float64
	Upper     float64
	ExitLevel float64
}

// StrategyResult pairs one strategy's configuration with its backtest output.
type StrategyResult struct {
	Config  model.StrategyConfig  `json:"config"`
	Summary model.StrategySummary `json:"summary"`
	Trades  []model.Trade         `json:"trades,omitempty"`
}

// Report is the full analysis output for one ticker/timeframe window.
type Report struct {
	Bars          int                 `json:"bars"`
	Start         time.Time           `json:"start"`
	End           time.Time           `json:"end"`
	Regime        model.RegimeLabel   `json:"regime"`
	RegimeMetrics model.RegimeMetrics `json:"regime_metrics"`
	Strategies    []StrategyResult    `json:"strategies"`
}

// DefaultStrategies builds the three standard configurations from the
// analysis parameters, in display order.
func DefaultStrategies(p Params) []model.StrategyConfig {
	return []model.StrategyConfig{
		{
			Name:      "Mean Reversion",
			Mode:      model.ModeMeanReversion,
			Lower:     ptr(p.Lower),
			ExitLevel: ptr(p.ExitLevel),
		},
		{
			Name:      "Overbought Reversal",
			Mode:      model.ModeOverboughtReversal,
			Upper:     ptr(p.Upper),
			ExitLevel: ptr(p.ExitLevel),
		},
		{
			Name: "Trend-follow RSI",
			Mode: model.ModeTrendFollowRSI,
		},
	}
}

func ptr(v float64) *float64 { return &v }

// Analyzer runs backtests and regime tagging over a fetched series.
type Analyzer struct {
	engine *backtest.Engine
	tagger *regime.Tagger
}

// New creates an Analyzer. A nil tagger gets the default window and cutoffs.
func New(tagger *regime.Tagger) *Analyzer {
	if tagger == nil {
		tagger = regime.NewTagger()
	}
	return &Analyzer{
		engine: backtest.New(),
		tagger: tagger,
	}
}

// Run computes the RSI series once, backtests every configuration against
// it, and tags the regime. Configuration and parameter errors surface
// immediately; they are never papered over with defaults.
func (a *Analyzer) Run(bars []model.PriceBar, p Params, configs []model.StrategyConfig) (*Report, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("analysis: %w", model.ErrInsufficientData)
	}

	rsiSeries, err := indicator.RSI(model.Closes(bars), p.RSIPeriod)
	if err != nil {
		return nil, err
	}

	results := make([]StrategyResult, 0, len(configs))
	for _, cfg := range configs {
		strat, err := strategy.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", cfg.Name, err)
		}
		res, err := a.engine.Run(bars, rsiSeries, strat)
		if err != nil {
			return nil, fmt.Errorf("backtest %q: %w", cfg.Name, err)
		}
		results = append(results, StrategyResult{
			Config:  cfg,
			Summary: res.Summary,
			Trades:  res.Trades,
		})
	}

	label, metrics := a.tagger.Tag(bars)

	return &Report{
		Bars:          len(bars),
		Start:         bars[0].Timestamp,
		End:           bars[len(bars)-1].Timestamp,
		Regime:        label,
		RegimeMetrics: metrics,
		Strategies:    results,
	}, nil
}
