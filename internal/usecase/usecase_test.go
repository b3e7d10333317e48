package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"SignalDesk/internal/domain/models"
)

type fakeCandles struct {
	candles []models.Candle
	err     error
	calls   int
}

func (f *fakeCandles) LatestCandles(context.Context) ([]models.Candle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candles, nil
}

func (f *fakeCandles) Symbol() string   { return "ETHUSDT" }
func (f *fakeCandles) Interval() string { return "1w" }

type fakeTicker struct {
	body []byte
	err  error
}

func (f *fakeTicker) Ticker24h(context.Context) ([]byte, error) {
	return f.body, f.err
}

type fakeMetrics struct {
	mu      sync.Mutex
	fetches []string
	errs    []string
	prices  map[string]float64
	signals map[string]models.SignalKind
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{prices: map[string]float64{}, signals: map[string]models.SignalKind{}}
}

func (m *fakeMetrics) RecordFetch(source string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, source)
}

func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, kind)
}

func (m *fakeMetrics) RecordLastPrice(symbol string, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[symbol] = price
}

func (m *fakeMetrics) RecordSignal(symbol string, kind models.SignalKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signals[symbol] = kind
}

func candlesFrom(closes []float64) []models.Candle {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	out := make([]models.Candle, len(closes))
	for i, c := range closes {
		open := start.Add(time.Duration(i) * 7 * 24 * time.Hour)
		out[i] = models.Candle{
			OpenTime:  open,
			CloseTime: open.Add(7*24*time.Hour - time.Millisecond),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1,
		}
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// accelerating returns n-1 closes moving evenly from `from` to `to`, then a
// final close at `last`.
func accelerating(n int, from, to, last float64) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-2)
	for i := 0; i < n-1; i++ {
		out[i] = from + step*float64(i)
	}
	out[n-1] = last
	return out
}

var errBoom = errors.New("boom")
