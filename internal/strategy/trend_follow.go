package strategy

import "math"

// trendMidline is the RSI level whose crossings drive TrendFollow.
const trendMidline = 50.0

// TrendFollow trades long-only RSI midline crosses:
// - flat and RSI crosses above 50 (prev <= 50, current > 50): open long
// - long and RSI crosses below 50 (prev >= 50, current < 50): close
//
// Symmetric short entries on a downward cross are deliberately not taken;
// the downward cross only exits.
type TrendFollow struct{}

func (s *TrendFollow) Name() string { return "trend_follow_rsi" }

func (s *TrendFollow) Decide(ctx Context) Action {
	// A cross needs two defined RSI values.
	if math.IsNaN(ctx.PrevRSI) {
		return Hold
	}
	if ctx.InPosition {
		if ctx.PrevRSI >= trendMidline && ctx.RSI < trendMidline {
			return Exit
		}
		return Hold
	}
	if ctx.PrevRSI <= trendMidline && ctx.RSI > trendMidline {
		return EnterLong
	}
	return Hold
}
