package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SignalDesk/internal/domain/models"

	"github.com/peterldowns/testy/assert"
)

const week = int64(7 * 24 * time.Hour / time.Millisecond)

// klinesJSON renders closes as Binance kline arrays, oldest first.
func klinesJSON(closes []string) string {
	rows := make([]string, len(closes))
	open := int64(1672617600000)
	for i, c := range closes {
		ot := open + int64(i)*week
		rows[i] = fmt.Sprintf(`[%d,"%s","%s","%s","%s","1200.5",%d,"3800000.1",1500,"600.2","1900000.0","0"]`,
			ot, c, c, c, c, ot+week-1)
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:   srv.URL,
		Symbol:    "ETHUSDT",
		Interval:  "1w",
		Limit:     3,
		Timeout:   2 * time.Second,
		RateLimit: 100,
		Burst:     10,
	})
}

func TestLatestCandles(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/klines" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, klinesJSON([]string{"1500.10", "1620.00", "1710.55"}))
	})

	candles, err := c.LatestCandles(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, len(candles))
	assert.Equal(t, []float64{1500.10, 1620.00, 1710.55}, models.Closes(candles))
	assert.Equal(t, 1200.5, candles[0].Volume)
	assert.True(t, candles[0].OpenTime.Before(candles[2].OpenTime))
	assert.Equal(t, time.UnixMilli(1672617600000).UTC(), candles[0].OpenTime)

	for _, want := range []string{"symbol=ETHUSDT", "interval=1w", "limit=3"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestLatestCandlesMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non numeric close", klinesJSON([]string{"1500", "abc", "1700"})},
		{"zero close", klinesJSON([]string{"1500", "0", "1700"})},
		{"short row", `[[1672617600000,"1","1","1","1"]]`},
		{"not json", `<html>maintenance</html>`},
	}

	for _, test := range tests {
		test := test
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, test.body)
		})
		_, err := c.LatestCandles(context.Background())
		if !errors.Is(err, models.ErrMalformedPayload) {
			t.Errorf("%s: expected ErrMalformedPayload, got %v", test.name, err)
		}
	}
}

func TestLatestCandlesUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"code":-1001,"msg":"Internal error; unable to process your request."}`)
	})

	_, err := c.LatestCandles(context.Background())
	if !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestLatestCandlesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url, Symbol: "ETHUSDT", Interval: "1w", Limit: 3, Timeout: time.Second})
	_, err := c.LatestCandles(context.Background())
	if !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestLatestCandlesCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, klinesJSON([]string{"1500"}))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.LatestCandles(ctx)
	if !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestIntervalNormalized(t *testing.T) {
	c := New(Config{Symbol: "ETHUSDT", Interval: "4h"})
	assert.Equal(t, "1w", c.Interval())
	assert.Equal(t, "ETHUSDT", c.Symbol())
}
