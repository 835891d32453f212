package model

import "time"

// Side is the direction of a position or closed trade.
// Keep these values stable; they are intended for CSV output.
type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// Position is the transient state held during one backtest pass.
// At most one position is open at a time: no pyramiding, no overlap.
type Position struct {
	Side       Side
	EntryIndex int
	EntryPrice float64
	Open       bool
}

// Trade is an immutable record produced when a position closes.
// PnLPct is the signed return over the holding period; the sign convention
// inverts for shorts (a short loses when price rises). CumulativePnLPct is
// the running sum of PnLPct across all closed trades for the strategy, in
// chronological order (additive, not compounding).
type Trade struct {
	EntryTime        time.Time `json:"entry_time"`
	ExitTime         time.Time `json:"exit_time"`
	Side             Side      `json:"side"`
	EntryPrice       float64   `json:"entry_price"`
	ExitPrice        float64   `json:"exit_price"`
	PnLPct           float64   `json:"pnl_pct"`
	CumulativePnLPct float64   `json:"cumulative_pnl_pct"`
}
