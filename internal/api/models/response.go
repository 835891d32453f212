package models

import (
	"time"

	"rsi-analyzer/internal/model"
)

// AnalyzeResponse represents the response from a full analysis run
type AnalyzeResponse struct {
	Ticker     string           `json:"ticker"`
	Timeframe  string           `json:"timeframe"`
	Bars       int              `json:"bars"`
	Window     TimeWindow       `json:"window"`
	Regime     RegimeInfo       `json:"regime"`
	Strategies []StrategyResult `json:"strategies"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RegimeInfo is the banner payload: the label plus the heuristics behind it
type RegimeInfo struct {
	Label model.RegimeLabel `json:"label"`
	Vol   float64           `json:"vol"`
	Trend float64           `json:"trend"`
}

// StrategyResult contains one strategy's summary and optional trade log
type StrategyResult struct {
	Name    string                `json:"name"`
	Mode    model.Mode            `json:"mode"`
	Summary model.StrategySummary `json:"summary"`
	Trades  []model.Trade         `json:"trades,omitempty"`
}

// StrategyInfo represents information about a strategy mode
type StrategyInfo struct {
	Name        string          `json:"name"`
	Mode        model.Mode      `json:"mode"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
