package repository

import (
	"context"

	"SignalDesk/internal/domain/models"
)

// CandleSource supplies the fixed candle window, chronological and most recent last.
type CandleSource interface {
	LatestCandles(ctx context.Context) ([]models.Candle, error)
	Symbol() string
	Interval() string
}

// TickerSource supplies the raw 24h ticker payload of the fixed pair.
type TickerSource interface {
	Ticker24h(ctx context.Context) ([]byte, error)
}

type Metrics interface {
	RecordFetch(source string, seconds float64)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordSignal(symbol string, kind models.SignalKind)
}
