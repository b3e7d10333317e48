package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"SignalDesk/internal/domain/models"

	"github.com/peterldowns/testy/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c, err := Default()
	assert.NoError(t, err)
	assert.NoError(t, c.Validate())

	assert.Equal(t, 3000, c.Server.Port)
	assert.Equal(t, "ETHUSDT", c.Binance.Symbol)
	assert.Equal(t, "1w", c.Binance.Interval)
	assert.Equal(t, 100, c.Binance.Limit)
	assert.Equal(t, 10*time.Second, c.Dashboard.PollInterval)
	assert.Equal(t, models.DefaultStrategyParams(), c.Strategy)
	assert.True(t, c.Metrics.Enabled)
	assert.Equal(t, "/metrics", c.Metrics.Path)
}

func TestLoadSampleConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "dist", c.Server.StaticDir)
	assert.Equal(t, "https://api.binance.com", c.Binance.BaseURL)
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
strategy:
  overbought: 75
dashboard:
  poll_interval: 30s
`)
	c, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 75.0, c.Strategy.Overbought)
	assert.Equal(t, 35.0, c.Strategy.Oversold)
	assert.Equal(t, 14, c.Strategy.RSIPeriod)
	assert.Equal(t, 30*time.Second, c.Dashboard.PollInterval)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"inverted thresholds", "strategy:\n  overbought: 30\n  oversold: 40\n", "oversold"},
		{"unsupported interval", "binance:\n  interval: 4h\n", "Interval"},
		{"lowercase symbol", "binance:\n  symbol: ethusdt\n", "Symbol"},
		{"window too short", "binance:\n  limit: 15\n", "binance.limit"},
		{"bad log level", "log:\n  level: loud\n", "Level"},
	}

	for _, test := range tests {
		_, err := Load(writeConfig(t, test.body))
		if err == nil {
			t.Errorf("%s: expected validation error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: error %q does not mention %q", test.name, err, test.want)
		}
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BINANCE_SYMBOL", "BTCUSDT")
	t.Setenv("BINANCE_BASE_URL", "")
	t.Setenv("DASHBOARD_API_URL", "")
	t.Setenv("DASHBOARD_POLL_INTERVAL", "5s")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "BTCUSDT", c.Binance.Symbol)
	assert.Equal(t, "https://api.binance.com", c.Binance.BaseURL)
	assert.Equal(t, 5*time.Second, c.Dashboard.PollInterval)
}

func TestLoadWithEnvInvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
