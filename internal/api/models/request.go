package models

// AnalyzeRequest represents the request body for running a full analysis
type AnalyzeRequest struct {
	Ticker    string         `json:"ticker" binding:"required"`
	Timeframe string         `json:"timeframe" binding:"required"` // "1m", "5m", "15m", "1h", "4h", "1d"
	Params    *AnalyzeParams `json:"params,omitempty"`
	Options   AnalyzeOptions `json:"options,omitempty"`
}

// AnalyzeParams overrides the server's default analysis parameters.
// Omitted fields keep their configured defaults.
type AnalyzeParams struct {
	RSIPeriod *int     `json:"rsi_period,omitempty"`
	Lower     *float64 `json:"lower,omitempty"`
	Upper     *float64 `json:"upper,omitempty"`
	ExitLevel *float64 `json:"exit_level,omitempty"`
}

// AnalyzeOptions contains optional analysis parameters
type AnalyzeOptions struct {
	IncludeTrades bool `json:"include_trades,omitempty"` // default: false
}

// ExportRequest asks for one strategy's trade log as CSV
type ExportRequest struct {
	Ticker    string         `json:"ticker" binding:"required"`
	Timeframe string         `json:"timeframe" binding:"required"`
	Strategy  string         `json:"strategy" binding:"required"` // strategy name or mode
	Params    *AnalyzeParams `json:"params,omitempty"`
}
