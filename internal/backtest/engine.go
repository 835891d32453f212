package backtest

import (
	"fmt"
	"math"

	"rsi-analyzer/internal/model"
	"rsi-analyzer/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Result holds the trade log and derived summary for one strategy run.
type Result struct {
	Trades  []model.Trade
	Summary model.StrategySummary
}

// Run executes a single sequential backtest pass over aligned bars and RSI
// values, maintaining at most one open position. Bars inside the RSI warm-up
// (NaN entries) are skipped. When a position is open the strategy's exit rule
// is consulted first; entries are only evaluated when flat, so a position
// never opens and closes within the same bar. A position still open at the
// end of the series is discarded without producing a Trade.
//
// Run holds no state between calls: identical inputs produce identical
// trade lists and summaries.
func (e *Engine) Run(bars []model.PriceBar, rsiSeries []float64, strat strategy.Strategy) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("backtest: %w", model.ErrInsufficientData)
	}
	if len(bars) != len(rsiSeries) {
		return nil, fmt.Errorf("bars and rsi series are misaligned: %d != %d", len(bars), len(rsiSeries))
	}

	trades := make([]model.Trade, 0)
	var pos model.Position
	cum := 0.0
	prev := math.NaN()

	for i, bar := range bars {
		r := rsiSeries[i]
		if math.IsNaN(r) {
			prev = r
			continue
		}

		action := strat.Decide(strategy.Context{
			Index:      i,
			Bar:        bar,
			RSI:        r,
			PrevRSI:    prev,
			InPosition: pos.Open,
			Side:       pos.Side,
		})

		switch action {
		case strategy.Exit:
			if pos.Open {
				pnl := pnlPct(pos, bar.Close)
				cum += pnl
				trades = append(trades, model.Trade{
					EntryTime:        bars[pos.EntryIndex].Timestamp,
					ExitTime:         bar.Timestamp,
					Side:             pos.Side,
					EntryPrice:       pos.EntryPrice,
					ExitPrice:        bar.Close,
					PnLPct:           pnl,
					CumulativePnLPct: cum,
				})
				pos = model.Position{}
			}
		case strategy.EnterLong:
			if !pos.Open {
				pos = model.Position{Side: model.SideLong, EntryIndex: i, EntryPrice: bar.Close, Open: true}
			}
		case strategy.EnterShort:
			if !pos.Open {
				pos = model.Position{Side: model.SideShort, EntryIndex: i, EntryPrice: bar.Close, Open: true}
			}
		}

		prev = r
	}

	return &Result{
		Trades:  trades,
		Summary: Summarize(trades),
	}, nil
}

// pnlPct is the signed holding-period return in percent. The sign convention
// inverts for shorts: a short loses when price rises.
func pnlPct(pos model.Position, exitPrice float64) float64 {
	if pos.Side == model.SideShort {
		return (pos.EntryPrice - exitPrice) / pos.EntryPrice * 100.0
	}
	return (exitPrice - pos.EntryPrice) / pos.EntryPrice * 100.0
}
