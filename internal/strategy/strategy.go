// Package strategy holds the three RSI rule sets evaluated by the backtest
// engine. A Strategy decides, per bar, whether to open or close the single
// tracked position; the engine owns all position bookkeeping.
package strategy

import (
	"fmt"

	"rsi-analyzer/internal/model"
)

// Context is the per-bar view a Strategy decides on. PrevRSI is NaN on the
// first defined RSI bar.
type Context struct {
	Index   int
	Bar     model.PriceBar
	RSI     float64
	PrevRSI float64

	// InPosition and Side describe the engine's current position state.
	// Entry rules are only consulted when flat, exit rules only when open.
	InPosition bool
	Side       model.Side
}

// Action is a Strategy's decision for one bar. Entry and exit are mutually
// exclusive on a single bar: the engine consults exit first when a position
// is open and entry only when flat.
type Action int

const (
	Hold Action = iota
	EnterLong
	EnterShort
	Exit
)

// Strategy is one RSI rule set.
type Strategy interface {
	Name() string
	Decide(ctx Context) Action
}

// MissingConfigFieldError reports a strategy configuration that omits a
// threshold its mode requires. Not retried; surfaced immediately.
type MissingConfigFieldError struct {
	Mode  model.Mode
	Field string
}

func (e *MissingConfigFieldError) Error() string {
	return fmt.Sprintf("strategy mode %q requires config field %q", e.Mode, e.Field)
}

// Build constructs the Strategy for a configuration, validating that every
// threshold the mode consults is present. Thresholds are never defaulted.
func Build(cfg model.StrategyConfig) (Strategy, error) {
	switch cfg.Mode {
	case model.ModeMeanReversion:
		if cfg.Lower == nil {
			return nil, &MissingConfigFieldError{Mode: cfg.Mode, Field: "lower"}
		}
		if cfg.ExitLevel == nil {
			return nil, &MissingConfigFieldError{Mode: cfg.Mode, Field: "exit_level"}
		}
		return &MeanReversion{Lower: *cfg.Lower, ExitLevel: *cfg.ExitLevel}, nil
	case model.ModeOverboughtReversal:
		if cfg.Upper == nil {
			return nil, &MissingConfigFieldError{Mode: cfg.Mode, Field: "upper"}
		}
		if cfg.ExitLevel == nil {
			return nil, &MissingConfigFieldError{Mode: cfg.Mode, Field: "exit_level"}
		}
		return &OverboughtReversal{Upper: *cfg.Upper, ExitLevel: *cfg.ExitLevel}, nil
	case model.ModeTrendFollowRSI:
		return &TrendFollow{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy mode: %q", cfg.Mode)
	}
}
