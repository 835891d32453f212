package data

// Ticker describes one market available in the UI picker.
type Ticker struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// DefaultTickers is the built-in market list. Symbols use Yahoo Finance
// notation (=X for FX pairs, =F for futures).
var DefaultTickers = []Ticker{
	{Symbol: "SPY", Description: "S&P 500 ETF"},
	{Symbol: "QQQ", Description: "Nasdaq 100 ETF"},
	{Symbol: "EURUSD=X", Description: "Euro / US Dollar"},
	{Symbol: "GBPUSD=X", Description: "British Pound / US Dollar"},
	{Symbol: "BTC-USD", Description: "Bitcoin"},
	{Symbol: "ETH-USD", Description: "Ethereum"},
	{Symbol: "GC=F", Description: "Gold Futures"},
}
