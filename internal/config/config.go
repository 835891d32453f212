package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Regime   RegimeConfig   `yaml:"regime"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// DataConfig selects and tunes the market-data source.
type DataConfig struct {
	// Source is "yahoo", "alpaca", or "mock".
	Source string `yaml:"source"`

	YahooBaseURL string       `yaml:"yahoo_base_url"`
	Alpaca       AlpacaConfig `yaml:"alpaca"`

	// CacheTTL is a Go duration string, e.g. "1h". Empty disables caching.
	CacheTTL string `yaml:"cache_ttl"`

	MaxAttempts int `yaml:"max_attempts"`
	// RetryBaseDelayMS is the first retry delay in milliseconds; subsequent
	// delays grow linearly.
	RetryBaseDelayMS int `yaml:"retry_base_delay_ms"`
}

type AlpacaConfig struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	DataURL   string `yaml:"data_url"`
}

// DefaultsConfig holds the analysis parameters used when a request does not
// override them. The lower < exit_level < upper ordering is recommended but
// not enforced; out-of-order thresholds just rarely trigger.
type DefaultsConfig struct {
	RSIPeriod int     `yaml:"rsi_period"`
	Lower     float64 `yaml:"lower"`
	Upper     float64 `yaml:"upper"`
	ExitLevel float64 `yaml:"exit_level"`
}

// RegimeConfig tunes the regime tagger. Values are documented alongside the
// tagger defaults; keep them consistent across runs for reproducible labels.
type RegimeConfig struct {
	Window         int     `yaml:"window"`
	TrendThreshold float64 `yaml:"trend_threshold"`
	VolThreshold   float64 `yaml:"vol_threshold"`
}

// Load reads config from a YAML file (a missing file is fine, defaults
// apply), then applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.Data.Source = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		cfg.Data.CacheTTL = v
	}
	if v := os.Getenv("ALPACA_DATA_URL"); v != "" {
		cfg.Data.Alpaca.DataURL = v
	}
	// Canonical Alpaca env vars used by the SDK take priority.
	if v := os.Getenv("APCA_API_KEY_ID"); v != "" {
		cfg.Data.Alpaca.APIKey = v
	}
	if v := os.Getenv("APCA_API_SECRET_KEY"); v != "" {
		cfg.Data.Alpaca.APISecret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "./web/dist"
	}
	if cfg.Data.Source == "" {
		cfg.Data.Source = "yahoo"
	}
	if cfg.Data.CacheTTL == "" {
		cfg.Data.CacheTTL = "1h"
	}
	if cfg.Data.MaxAttempts == 0 {
		cfg.Data.MaxAttempts = 4
	}
	if cfg.Data.RetryBaseDelayMS == 0 {
		cfg.Data.RetryBaseDelayMS = 1500
	}
	if cfg.Defaults.RSIPeriod == 0 {
		cfg.Defaults.RSIPeriod = 14
	}
	if cfg.Defaults.Lower == 0 {
		cfg.Defaults.Lower = 30
	}
	if cfg.Defaults.Upper == 0 {
		cfg.Defaults.Upper = 70
	}
	if cfg.Defaults.ExitLevel == 0 {
		cfg.Defaults.ExitLevel = 50
	}
	if cfg.Regime.Window == 0 {
		cfg.Regime.Window = 30
	}
	if cfg.Regime.TrendThreshold == 0 {
		cfg.Regime.TrendThreshold = 0.0005
	}
	if cfg.Regime.VolThreshold == 0 {
		cfg.Regime.VolThreshold = 0.02
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "yahoo", "alpaca", "mock":
	default:
		return fmt.Errorf("data.source must be yahoo, alpaca, or mock, got %q", c.Data.Source)
	}
	if c.Data.Source == "alpaca" && (c.Data.Alpaca.APIKey == "" || c.Data.Alpaca.APISecret == "") {
		return fmt.Errorf("data.alpaca.api_key and api_secret are required when data.source is alpaca")
	}
	if c.Defaults.RSIPeriod < 1 {
		return fmt.Errorf("defaults.rsi_period must be >= 1, got %d", c.Defaults.RSIPeriod)
	}
	if _, err := c.CacheTTLDuration(); err != nil {
		return err
	}
	return nil
}

// CacheTTLDuration parses the cache TTL. A zero duration disables caching.
func (c *Config) CacheTTLDuration() (time.Duration, error) {
	if c.Data.CacheTTL == "" || c.Data.CacheTTL == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Data.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("data.cache_ttl: %w", err)
	}
	return d, nil
}

// RetryBaseDelay returns the first retry delay.
func (c *Config) RetryBaseDelay() time.Duration {
	return time.Duration(c.Data.RetryBaseDelayMS) * time.Millisecond
}
