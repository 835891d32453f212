package backtest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"rsi-analyzer/internal/model"
)

// tradeCSVHeader is the flat-record export shape consumed by the UI download
// button. Keep the column order stable.
var tradeCSVHeader = []string{
	"entry_time",
	"exit_time",
	"side",
	"entry_price",
	"exit_price",
	"pnl_pct",
	"cumulative_pnl_pct",
}

// WriteTradesCSV writes a trade log to a file at path.
func WriteTradesCSV(path string, trades []model.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeTradesCSV(f, trades)
}

// EncodeTradesCSV streams a trade log as CSV to w (e.g. an HTTP response).
func EncodeTradesCSV(w io.Writer, trades []model.Trade) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(tradeCSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			fmtTime(t.EntryTime),
			fmtTime(t.ExitTime),
			string(t.Side),
			fmtFloat(t.EntryPrice),
			fmtFloat(t.ExitPrice),
			fmtFloat(t.PnLPct),
			fmtFloat(t.CumulativePnLPct),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
