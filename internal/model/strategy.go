package model

// Mode selects which RSI rule set a strategy configuration runs.
type Mode string

const (
	ModeMeanReversion      Mode = "mean_reversion"
	ModeOverboughtReversal Mode = "overbought_reversal"
	ModeTrendFollowRSI     Mode = "trend_follow_rsi"
)

// StrategyConfig describes one strategy to backtest. Threshold fields are
// pointers because only the fields relevant to Mode are consulted; a nil
// field the mode requires is a configuration error, never silently defaulted.
type StrategyConfig struct {
	Name      string   `json:"name" yaml:"name"`
	Mode      Mode     `json:"mode" yaml:"mode"`
	Lower     *float64 `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper     *float64 `json:"upper,omitempty" yaml:"upper,omitempty"`
	ExitLevel *float64 `json:"exit_level,omitempty" yaml:"exit_level,omitempty"`
}

// StrategySummary aggregates a closed-trade list into display metrics.
// It is derived, never stored: computed fresh from a Trade list on every
// invocation. MaxDrawdownPct is reported as a positive magnitude.
type StrategySummary struct {
	TotalTrades    int     `json:"total_trades"`
	TotalPnLPct    float64 `json:"total_pnl_pct"`
	WinRatePct     float64 `json:"win_rate_pct"`
	AvgPnLPct      float64 `json:"avg_pnl_pct"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
}
