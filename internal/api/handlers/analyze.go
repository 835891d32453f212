package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rsi-analyzer/internal/analysis"
	"rsi-analyzer/internal/api/models"
	"rsi-analyzer/internal/backtest"
	"rsi-analyzer/internal/config"
	"rsi-analyzer/internal/data"
	"rsi-analyzer/internal/indicator"
	"rsi-analyzer/internal/model"
	"rsi-analyzer/internal/strategy"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles analysis requests
type AnalyzeHandler struct {
	svc      *data.Service
	analyzer *analysis.Analyzer
	defaults config.DefaultsConfig
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(svc *data.Service, analyzer *analysis.Analyzer, defaults config.DefaultsConfig) *AnalyzeHandler {
	return &AnalyzeHandler{
		svc:      svc,
		analyzer: analyzer,
		defaults: defaults,
	}
}

// RunAnalysis handles POST /api/v1/analyze
func (h *AnalyzeHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	report, _, err := h.analyze(c, req.Ticker, req.Timeframe, req.Params)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildAnalyzeResponse(req, report))
}

// ExportCSV handles POST /api/v1/analyze/csv. It re-runs the analysis and
// streams one strategy's trade log as a CSV download.
func (h *AnalyzeHandler) ExportCSV(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	report, _, err := h.analyze(c, req.Ticker, req.Timeframe, req.Params)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	res, ok := findStrategy(report, req.Strategy)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_STRATEGY",
				Message: fmt.Sprintf("no strategy named %q", req.Strategy),
			},
		})
		return
	}

	filename := fmt.Sprintf("%s_%s_%s_trades.csv", req.Ticker, req.Timeframe, string(res.Config.Mode))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := backtest.EncodeTradesCSV(c.Writer, res.Trades); err != nil {
		// Headers are already written at this point; nothing useful to send.
		_ = c.Error(err)
	}
}

// analyze fetches bars and runs the full analysis with request overrides
// merged over the configured defaults.
func (h *AnalyzeHandler) analyze(c *gin.Context, ticker, timeframe string, overrides *models.AnalyzeParams) (*analysis.Report, analysis.Params, error) {
	p := analysis.Params{
		RSIPeriod: h.defaults.RSIPeriod,
		Lower:     h.defaults.Lower,
		Upper:     h.defaults.Upper,
		ExitLevel: h.defaults.ExitLevel,
	}
	if overrides != nil {
		if overrides.RSIPeriod != nil {
			p.RSIPeriod = *overrides.RSIPeriod
		}
		if overrides.Lower != nil {
			p.Lower = *overrides.Lower
		}
		if overrides.Upper != nil {
			p.Upper = *overrides.Upper
		}
		if overrides.ExitLevel != nil {
			p.ExitLevel = *overrides.ExitLevel
		}
	}

	bars, err := h.svc.GetBars(c.Request.Context(), ticker, timeframe)
	if err != nil {
		return nil, p, err
	}

	report, err := h.analyzer.Run(bars, p, analysis.DefaultStrategies(p))
	if err != nil {
		return nil, p, err
	}
	return report, p, nil
}

// findStrategy matches by display name or mode, case-insensitively.
func findStrategy(report *analysis.Report, name string) (analysis.StrategyResult, bool) {
	for _, res := range report.Strategies {
		if strings.EqualFold(res.Config.Name, name) || strings.EqualFold(string(res.Config.Mode), name) {
			return res, true
		}
	}
	return analysis.StrategyResult{}, false
}

func buildAnalyzeResponse(req models.AnalyzeRequest, report *analysis.Report) models.AnalyzeResponse {
	strategies := make([]models.StrategyResult, 0, len(report.Strategies))
	for _, res := range report.Strategies {
		sr := models.StrategyResult{
			Name:    res.Config.Name,
			Mode:    res.Config.Mode,
			Summary: res.Summary,
		}
		if req.Options.IncludeTrades {
			sr.Trades = res.Trades
		}
		strategies = append(strategies, sr)
	}

	return models.AnalyzeResponse{
		Ticker:    req.Ticker,
		Timeframe: req.Timeframe,
		Bars:      report.Bars,
		Window: models.TimeWindow{
			Start: report.Start,
			End:   report.End,
		},
		Regime: models.RegimeInfo{
			Label: report.Regime,
			Vol:   report.RegimeMetrics.Vol,
			Trend: report.RegimeMetrics.Trend,
		},
		Strategies: strategies,
	}
}

// writeAnalysisError maps pipeline errors to HTTP responses. User mistakes
// (bad parameters, incomplete configs) are 4xx; upstream data failures are
// reported as a bad gateway so the UI can offer a retry.
func writeAnalysisError(c *gin.Context, err error) {
	var fetchErr *data.FetchError
	var cfgErr *strategy.MissingConfigFieldError

	switch {
	case errors.Is(err, indicator.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETER",
				Message: err.Error(),
			},
		})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_CONFIG_FIELD",
				Message: err.Error(),
				Details: map[string]interface{}{
					"mode":  string(cfgErr.Mode),
					"field": cfgErr.Field,
				},
			},
		})
	case errors.Is(err, model.ErrInsufficientData):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INSUFFICIENT_DATA",
				Message: err.Error(),
			},
		})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_FETCH_ERROR",
				Message: err.Error(),
				Details: map[string]interface{}{
					"source":   fetchErr.Source,
					"ticker":   fetchErr.Ticker,
					"attempts": fetchErr.Attempts,
				},
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}
