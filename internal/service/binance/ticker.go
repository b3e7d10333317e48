package binance

import (
	"context"
	"fmt"

	"SignalDesk/internal/domain/models"

	"github.com/tidwall/gjson"
)

const tickerPath = "/api/v3/ticker/24hr"

// Ticker24h returns the upstream 24h ticker document unchanged.
func (c *Client) Ticker24h(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("binance ticker: rate limiter: %v: %w", err, models.ErrUpstreamUnavailable)
	}

	body, err := c.http.GetBytes(ctx, tickerPath, map[string][]string{
		"symbol": {c.cfg.Symbol},
	})
	if err != nil {
		return nil, classify("binance ticker", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("binance ticker: invalid json: %w", models.ErrMalformedPayload)
	}
	if !gjson.GetBytes(body, "lastPrice").Exists() {
		return nil, fmt.Errorf("binance ticker: missing lastPrice: %w", models.ErrMalformedPayload)
	}
	return body, nil
}
