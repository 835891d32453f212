package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rsi-analyzer/internal/analysis"
	"rsi-analyzer/internal/api/handlers"
	"rsi-analyzer/internal/api/middleware"
	"rsi-analyzer/internal/config"
	"rsi-analyzer/internal/data"
	"rsi-analyzer/internal/regime"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to YAML config (missing file uses defaults)")
	flag.Parse()

	// Load .env if present so APCA_* credentials can live next to the binary.
	if err := godotenv.Load(); err == nil {
		log.Printf("[INFO] loaded environment from .env")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}

	fetcher, err := buildFetcher(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	ttl, _ := cfg.CacheTTLDuration()
	var cache *data.Cache
	if ttl > 0 {
		cache = data.NewCache(ttl)
		defer cache.Close()
	}
	svc := data.NewService(fetcher, cache, cfg.Data.MaxAttempts, cfg.RetryBaseDelay())

	tagger := &regime.Tagger{
		Window:         cfg.Regime.Window,
		TrendThreshold: cfg.Regime.TrendThreshold,
		VolThreshold:   cfg.Regime.VolThreshold,
	}
	analyzer := analysis.New(tagger)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(svc, analyzer, cfg.Defaults)
	metaHandler := handlers.NewMetaHandler(cfg.Defaults)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "source": fetcher.Name()})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.RunAnalysis)
		api.POST("/analyze/csv", analyzeHandler.ExportCSV)

		api.GET("/strategies", metaHandler.ListStrategies)
		api.GET("/tickers", metaHandler.ListTickers)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		// Serve static assets
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			// Don't serve index.html for API routes
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("[INFO] serving static files from %s", staticDir)
	} else {
		log.Printf("[WARN] static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[INFO] starting API server on %s (data source: %s)", addr, fetcher.Name())
	if err := router.Run(addr); err != nil {
		log.Fatalf("[ERROR] server: %v", err)
	}
}

func buildFetcher(cfg *config.Config) (data.Fetcher, error) {
	switch cfg.Data.Source {
	case "yahoo":
		return data.NewYahooFetcher(cfg.Data.YahooBaseURL), nil
	case "alpaca":
		return data.NewAlpacaFetcher(cfg.Data.Alpaca.APIKey, cfg.Data.Alpaca.APISecret, cfg.Data.Alpaca.DataURL), nil
	case "mock":
		return &data.MockFetcher{Bars: data.GenerateBars(100, 500)}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}
