package dashboard

import (
	"context"
	"fmt"

	"SignalDesk/internal/domain/models"
	xhttp "SignalDesk/pkg/http"
)

// Client reads the two dashboard endpoints of a running API server.
type Client struct {
	http *xhttp.Client
}

func NewClient(hc *xhttp.Client) *Client {
	return &Client{http: hc}
}

// Market fetches /api/market and formats it for display.
func (c *Client) Market(ctx context.Context) (MarketView, error) {
	body, err := c.http.GetBytes(ctx, "/api/market", nil)
	if err != nil {
		return MarketView{}, fmt.Errorf("get market: %w", err)
	}
	return NewMarketView(body)
}

// Indicators fetches /api/indicators and derives the band position label.
func (c *Client) Indicators(ctx context.Context) (IndicatorsView, error) {
	var resp models.IndicatorsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    "/api/indicators",
	}, &resp)
	if err != nil {
		return IndicatorsView{}, fmt.Errorf("get indicators: %w", err)
	}
	return NewIndicatorsView(resp), nil
}
