package strategy

// OverboughtReversal shorts overbought spikes and covers at a mid level:
// - flat and RSI > Upper: open short at this bar's close
// - short and RSI < ExitLevel: cover at this bar's close
type OverboughtReversal struct {
	Upper     float64
	ExitLevel float64
}

func (s *OverboughtReversal) Name() string { return "overbought_reversal" }

func (s *OverboughtReversal) Decide(ctx Context) Action {
	if ctx.InPosition {
		if ctx.RSI < s.ExitLevel {
			return Exit
		}
		return Hold
	}
	if ctx.RSI > s.Upper {
		return EnterShort
	}
	return Hold
}
