package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"SignalDesk/internal/domain/models"

	"github.com/peterldowns/testy/assert"
)

const ticker = `{"symbol":"ETHUSDT","priceChange":"-40.10","priceChangePercent":"-1.262","lastPrice":"3135.90","highPrice":"3240.00","lowPrice":"3100.10","quoteVolume":"812345678.12"}`

func TestTicker24hVerbatim(t *testing.T) {
	var symbol string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != tickerPath {
			http.NotFound(w, r)
			return
		}
		symbol = r.URL.Query().Get("symbol")
		fmt.Fprint(w, ticker)
	})

	body, err := c.Ticker24h(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, ticker, string(body))
	assert.Equal(t, "ETHUSDT", symbol)
}

func TestTicker24hErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusBadGateway, "bad gateway", models.ErrUpstreamUnavailable},
		{"invalid json", http.StatusOK, `{"lastPrice":`, models.ErrMalformedPayload},
		{"missing last price", http.StatusOK, `{"symbol":"ETHUSDT"}`, models.ErrMalformedPayload},
	}

	for _, test := range tests {
		test := test
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(test.status)
			fmt.Fprint(w, test.body)
		})
		_, err := c.Ticker24h(context.Background())
		if !errors.Is(err, test.want) {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, err)
		}
	}
}
