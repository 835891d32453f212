package data

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"rsi-analyzer/internal/model"
)

// AlpacaFetcher retrieves bars from the Alpaca market-data API. It covers US
// equities/ETFs; FX and futures tickers need the Yahoo fetcher.
type AlpacaFetcher struct {
	client *marketdata.Client
}

// NewAlpacaFetcher creates an Alpaca fetcher with the given credentials.
// If dataURL is empty, the SDK default endpoint is used.
func NewAlpacaFetcher(apiKey, apiSecret, dataURL string) *AlpacaFetcher {
	opts := marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
	if dataURL != "" {
		opts.BaseURL = dataURL
	}
	return &AlpacaFetcher{client: marketdata.NewClient(opts)}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func alpacaTimeFrame(timeframe string) (marketdata.TimeFrame, error) {
	switch timeframe {
	case "1m":
		return marketdata.OneMin, nil
	case "5m":
		return marketdata.NewTimeFrame(5, marketdata.Min), nil
	case "15m":
		return marketdata.NewTimeFrame(15, marketdata.Min), nil
	case "1h":
		return marketdata.OneHour, nil
	case "4h":
		return marketdata.NewTimeFrame(4, marketdata.Hour), nil
	case "1d":
		return marketdata.OneDay, nil
	default:
		return marketdata.TimeFrame{}, fmt.Errorf("alpaca: unsupported timeframe %q", timeframe)
	}
}

// periodDays converts a fetch period like "60d" to a day count. "max" is
// capped at ten years, plenty for a dashboard window.
func periodDays(period string) int {
	if period == "max" {
		return 3650
	}
	if n, err := strconv.Atoi(strings.TrimSuffix(period, "d")); err == nil {
		return n
	}
	return 90
}

func (f *AlpacaFetcher) FetchBars(ctx context.Context, ticker, timeframe string) ([]model.PriceBar, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tf, err := alpacaTimeFrame(timeframe)
	if err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -periodDays(PeriodFor(timeframe)))

	alpacaBars, err := f.client.GetBars(ticker, marketdata.GetBarsRequest{
		TimeFrame:  tf,
		Start:      start,
		End:        end,
		Adjustment: marketdata.Split,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca GetBars: %w", err)
	}
	if len(alpacaBars) == 0 {
		return nil, fmt.Errorf("alpaca: %w", model.ErrInsufficientData)
	}

	bars := make([]model.PriceBar, 0, len(alpacaBars))
	for _, ab := range alpacaBars {
		bars = append(bars, model.PriceBar{
			Timestamp: ab.Timestamp,
			Open:      ab.Open,
			High:      ab.High,
			Low:       ab.Low,
			Close:     ab.Close,
			Volume:    float64(ab.Volume),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp.Before(bars[j].Timestamp) })
	return bars, nil
}
