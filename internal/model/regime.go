package model

// RegimeLabel is a coarse classification of recent price behavior.
type RegimeLabel string

const (
	RegimeTrending RegimeLabel = "trending"
	RegimeRanging  RegimeLabel = "ranging"
	RegimeVolatile RegimeLabel = "volatile"
	RegimeUnknown  RegimeLabel = "unknown"
)

// RegimeMetrics carries the scalar heuristics behind a RegimeLabel:
// Vol is the rolling standard deviation of per-bar returns over the tagger
// window, Trend the least-squares slope of close vs bar index normalized by
// the window's mean close. Both are 0 when the label is unknown.
type RegimeMetrics struct {
	Vol   float64 `json:"vol"`
	Trend float64 `json:"trend"`
}
