package handlers

import (
	"net/http"

	"rsi-analyzer/internal/api/models"
	"rsi-analyzer/internal/config"
	"rsi-analyzer/internal/data"
	"rsi-analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the static metadata the UI needs to render its pickers
type MetaHandler struct {
	defaults config.DefaultsConfig
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(defaults config.DefaultsConfig) *MetaHandler {
	return &MetaHandler{defaults: defaults}
}

// ListStrategies handles GET /api/v1/strategies
func (h *MetaHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "Mean Reversion",
			Mode:        model.ModeMeanReversion,
			Description: "Buys when RSI drops below the lower threshold and exits once RSI recovers above the exit level",
			Parameters: []models.ParameterInfo{
				{Name: "lower", Type: "float", Description: "RSI entry threshold", Default: h.defaults.Lower},
				{Name: "exit_level", Type: "float", Description: "RSI exit threshold", Default: h.defaults.ExitLevel},
			},
		},
		{
			Name:        "Overbought Reversal",
			Mode:        model.ModeOverboughtReversal,
			Description: "Shorts when RSI rises above the upper threshold and covers once RSI falls below the exit level",
			Parameters: []models.ParameterInfo{
				{Name: "upper", Type: "float", Description: "RSI entry threshold", Default: h.defaults.Upper},
				{Name: "exit_level", Type: "float", Description: "RSI exit threshold", Default: h.defaults.ExitLevel},
			},
		},
		{
			Name:        "Trend-follow RSI",
			Mode:        model.ModeTrendFollowRSI,
			Description: "Goes long on an RSI cross above 50 and exits on a cross back below",
			Parameters:  []models.ParameterInfo{},
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"strategies": strategies,
		"defaults": gin.H{
			"rsi_period": h.defaults.RSIPeriod,
			"lower":      h.defaults.Lower,
			"upper":      h.defaults.Upper,
			"exit_level": h.defaults.ExitLevel,
		},
	})
}

// ListTickers handles GET /api/v1/tickers
func (h *MetaHandler) ListTickers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tickers":    data.DefaultTickers,
		"timeframes": data.Timeframes,
	})
}
