package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/pkg/logger"
	"SignalDesk/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string        `yaml:"environment" default:"development" validate:"required"`
	Server      ServerConfig  `yaml:"server"`
	Log         logger.Config `yaml:"log"`
	Metrics     struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Binance   BinanceConfig         `yaml:"binance"`
	Strategy  models.StrategyParams `yaml:"strategy"`
	Dashboard DashboardConfig       `yaml:"dashboard"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3000" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s" validate:"gt=0"`
	SlowRequest     time.Duration `yaml:"slow_request" default:"2s"`
	StaticDir       string        `yaml:"static_dir"`
}

type BinanceConfig struct {
	BaseURL   string        `yaml:"base_url" default:"https://api.binance.com" validate:"required,url"`
	Symbol    string        `yaml:"symbol" default:"ETHUSDT" validate:"required,uppercase"`
	Interval  string        `yaml:"interval" default:"1w" validate:"oneof=1d 1w 1M"`
	Limit     int           `yaml:"limit" default:"100" validate:"gte=1,lte=1000"`
	Timeout   time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
	RateLimit float64       `yaml:"rate_limit" default:"10" validate:"gt=0"`
	Burst     int           `yaml:"burst" default:"20" validate:"gte=1"`
}

type DashboardConfig struct {
	APIURL       string        `yaml:"api_url" default:"http://localhost:3000" validate:"required,url"`
	PollInterval time.Duration `yaml:"poll_interval" default:"10s" validate:"gte=1s"`
}

var validate = validator.New()

// Default returns a configuration populated from struct defaults only.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads a YAML configuration file over the struct defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads .env (if present) and config from YAML, then overrides
// with environment variables. A missing YAML file falls back to defaults.
func LoadWithEnv(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	if port, ok, err := util.LookupInt("PORT"); err != nil {
		return nil, err
	} else if ok {
		c.Server.Port = port
	}
	if v, ok := util.LookupString("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := util.LookupString("BINANCE_BASE_URL"); ok {
		c.Binance.BaseURL = v
	}
	if v, ok := util.LookupString("BINANCE_SYMBOL"); ok {
		c.Binance.Symbol = v
	}
	if v, ok := util.LookupString("DASHBOARD_API_URL"); ok {
		c.Dashboard.APIURL = v
	}
	if d, ok, err := util.LookupDuration("DASHBOARD_POLL_INTERVAL"); err != nil {
		return nil, err
	} else if ok {
		c.Dashboard.PollInterval = d
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q (param %q)", fe.Namespace(), fe.Tag(), fe.Param())
		}
		return err
	}
	if c.Strategy.Oversold >= c.Strategy.Overbought {
		return fmt.Errorf("strategy.oversold (%v) must be below strategy.overbought (%v)",
			c.Strategy.Oversold, c.Strategy.Overbought)
	}
	if c.Binance.Limit < c.Strategy.MinCandles() {
		return fmt.Errorf("binance.limit (%d) must cover %d candles", c.Binance.Limit, c.Strategy.MinCandles())
	}
	return nil
}
