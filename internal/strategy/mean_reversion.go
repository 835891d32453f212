package strategy

// MeanReversion buys oversold dips and exits at a mid level:
// - flat and RSI < Lower: open long at this bar's close
// - long and RSI > ExitLevel: close at this bar's close
type MeanReversion struct {
	Lower     float64
	ExitLevel float64
}

func (s *MeanReversion) Name() string { return "mean_reversion" }

func (s *MeanReversion) Decide(ctx Context) Action {
	if ctx.InPosition {
		if ctx.RSI > s.ExitLevel {
			return Exit
		}
		return Hold
	}
	if ctx.RSI < s.Lower {
		return EnterLong
	}
	return Hold
}
