package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Data.Source != "yahoo" {
		t.Errorf("source = %q, want yahoo", cfg.Data.Source)
	}
	if cfg.Defaults.RSIPeriod != 14 || cfg.Defaults.Lower != 30 || cfg.Defaults.Upper != 70 || cfg.Defaults.ExitLevel != 50 {
		t.Errorf("unexpected analysis defaults: %+v", cfg.Defaults)
	}
	if cfg.Regime.Window != 30 {
		t.Errorf("regime window = %d, want 30", cfg.Regime.Window)
	}
	if cfg.Data.MaxAttempts != 4 {
		t.Errorf("max attempts = %d, want 4", cfg.Data.MaxAttempts)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
data:
  source: mock
  cache_ttl: 30m
defaults:
  rsi_period: 7
  lower: 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Data.Source != "mock" {
		t.Errorf("source = %q, want mock", cfg.Data.Source)
	}
	if cfg.Defaults.RSIPeriod != 7 {
		t.Errorf("rsi period = %d, want 7", cfg.Defaults.RSIPeriod)
	}
	if cfg.Defaults.Lower != 25 {
		t.Errorf("lower = %.1f, want 25", cfg.Defaults.Lower)
	}
	// Unset fields still get defaults.
	if cfg.Defaults.Upper != 70 {
		t.Errorf("upper = %.1f, want default 70", cfg.Defaults.Upper)
	}

	ttl, err := cfg.CacheTTLDuration()
	if err != nil {
		t.Fatalf("ttl: %v", err)
	}
	if ttl != 30*time.Minute {
		t.Errorf("ttl = %s, want 30m", ttl)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	t.Setenv("API_PORT", "7000")
	t.Setenv("DATA_SOURCE", "mock")
	t.Setenv("CACHE_TTL", "5m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("port = %d, env must override file", cfg.Server.Port)
	}
	if cfg.Data.Source != "mock" {
		t.Errorf("source = %q, want mock from env", cfg.Data.Source)
	}
	if cfg.Data.CacheTTL != "5m" {
		t.Errorf("cache ttl = %q, want 5m from env", cfg.Data.CacheTTL)
	}
}

func TestLoad_AlpacaCredentialsFromEnv(t *testing.T) {
	t.Setenv("DATA_SOURCE", "alpaca")
	t.Setenv("APCA_API_KEY_ID", "key-id")
	t.Setenv("APCA_API_SECRET_KEY", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Alpaca.APIKey != "key-id" || cfg.Data.Alpaca.APISecret != "secret" {
		t.Errorf("alpaca credentials not picked up from env: %+v", cfg.Data.Alpaca)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown source", "data:\n  source: bloomberg\n"},
		{"alpaca without credentials", "data:\n  source: alpaca\n"},
		{"negative rsi period", "defaults:\n  rsi_period: -2\n"},
		{"bad cache ttl", "data:\n  cache_ttl: never\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCacheTTLDuration_Disabled(t *testing.T) {
	cfg := &Config{}
	cfg.Data.CacheTTL = "0"
	ttl, err := cfg.CacheTTLDuration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl != 0 {
		t.Errorf("ttl = %s, want 0 (disabled)", ttl)
	}
}

func TestRetryBaseDelay(t *testing.T) {
	cfg := &Config{}
	cfg.Data.RetryBaseDelayMS = 1500
	if got := cfg.RetryBaseDelay(); got != 1500*time.Millisecond {
		t.Errorf("base delay = %s, want 1.5s", got)
	}
}
