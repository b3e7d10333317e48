package binance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"SignalDesk/internal/domain/models"
	drepo "SignalDesk/internal/domain/repository"
	xhttp "SignalDesk/pkg/http"

	gobinance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"golang.org/x/time/rate"
)

// Config describes the fixed upstream window.
type Config struct {
	BaseURL   string
	Symbol    string
	Interval  string
	Limit     int
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// Client reads weekly klines and the 24h ticker of one symbol from the Binance spot API.
type Client struct {
	cfg     Config
	api     *gobinance.Client
	http    *xhttp.Client
	limiter *rate.Limiter
}

var (
	_ drepo.CandleSource = (*Client)(nil)
	_ drepo.TickerSource = (*Client)(nil)
)

// New creates a Binance client. No credentials are used; both endpoints are public.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	cfg.Interval = string(drepo.NormalizeInterval(cfg.Interval))

	hc := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	api := gobinance.NewClient("", "")
	api.HTTPClient = hc
	if cfg.BaseURL != "" {
		api.BaseURL = cfg.BaseURL
	}

	return &Client{
		cfg:     cfg,
		api:     api,
		http:    xhttp.NewClient(xhttp.WithBaseURL(api.BaseURL), xhttp.WithHTTPClient(hc)),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
	}
}

func (c *Client) Symbol() string   { return c.cfg.Symbol }
func (c *Client) Interval() string { return c.cfg.Interval }

// LatestCandles returns the most recent Limit klines, oldest first.
func (c *Client) LatestCandles(ctx context.Context) ([]models.Candle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("binance klines: rate limiter: %v: %w", err, models.ErrUpstreamUnavailable)
	}

	klines, err := c.api.NewKlinesService().
		Symbol(c.cfg.Symbol).
		Interval(c.cfg.Interval).
		Limit(c.cfg.Limit).
		Do(ctx)
	if err != nil {
		return nil, classify("binance klines", err)
	}

	candles := make([]models.Candle, 0, len(klines))
	for i, k := range klines {
		candle, err := toCandle(k)
		if err != nil {
			return nil, fmt.Errorf("binance kline[%d]: %v: %w", i, err, models.ErrMalformedPayload)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func toCandle(k *gobinance.Kline) (models.Candle, error) {
	if k == nil {
		return models.Candle{}, errors.New("nil kline")
	}
	var (
		c   models.Candle
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"open", k.Open, &c.Open},
		{"high", k.High, &c.High},
		{"low", k.Low, &c.Low},
		{"close", k.Close, &c.Close},
		{"volume", k.Volume, &c.Volume},
	}
	for _, f := range fields {
		if *f.dst, err = strconv.ParseFloat(f.raw, 64); err != nil {
			return models.Candle{}, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
	}
	if math.IsNaN(c.Close) || math.IsInf(c.Close, 0) || c.Close <= 0 {
		return models.Candle{}, fmt.Errorf("close %v is not a positive finite price", c.Close)
	}
	c.OpenTime = time.UnixMilli(k.OpenTime).UTC()
	c.CloseTime = time.UnixMilli(k.CloseTime).UTC()
	return c, nil
}

// classify separates transport/API failures from payloads that could not be decoded.
func classify(op string, err error) error {
	var urlErr *url.Error
	var statusErr *xhttp.StatusError
	switch {
	case common.IsAPIError(err),
		errors.As(err, &urlErr),
		errors.As(err, &statusErr),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %v: %w", op, err, models.ErrUpstreamUnavailable)
	default:
		return fmt.Errorf("%s: %v: %w", op, err, models.ErrMalformedPayload)
	}
}
