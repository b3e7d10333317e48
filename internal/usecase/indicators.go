package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
	"SignalDesk/internal/services/indicators"
	"SignalDesk/internal/services/signal"
)

// IndicatorsUseCase recomputes RSI, Bollinger Bands and the signal from a fresh candle window.
type IndicatorsUseCase struct {
	source  domrepo.CandleSource
	metrics domrepo.Metrics
	params  models.StrategyParams
}

func NewIndicatorsUseCase(source domrepo.CandleSource, metrics domrepo.Metrics, params models.StrategyParams) *IndicatorsUseCase {
	return &IndicatorsUseCase{source: source, metrics: metrics, params: params}
}

// Evaluate fetches candles and classifies the latest close. It either returns
// a complete report or an error; no partial report is ever produced.
func (uc *IndicatorsUseCase) Evaluate(ctx context.Context) (*models.IndicatorReport, error) {
	start := time.Now()
	candles, err := uc.source.LatestCandles(ctx)
	uc.metrics.RecordFetch("klines", time.Since(start).Seconds())
	if err != nil {
		return nil, uc.fail(fmt.Errorf("fetch candles: %w", err))
	}

	report, err := Compute(models.Closes(candles), uc.params)
	if err != nil {
		return nil, uc.fail(err)
	}

	report.Symbol = uc.source.Symbol()
	report.Interval = uc.source.Interval()
	uc.metrics.RecordLastPrice(report.Symbol, report.Price)
	uc.metrics.RecordSignal(report.Symbol, report.Signal.Kind)
	return report, nil
}

func (uc *IndicatorsUseCase) fail(err error) error {
	uc.metrics.RecordError(ErrorKind(err))
	return err
}

// Compute runs the indicator engine and classifier over closes.
func Compute(closes []float64, p models.StrategyParams) (*models.IndicatorReport, error) {
	if need := p.MinCandles(); len(closes) < need {
		return nil, fmt.Errorf("compute indicators: need %d candles, have %d: %w",
			need, len(closes), indicators.ErrInsufficientData)
	}
	if err := indicators.ValidatePrices(closes); err != nil {
		return nil, fmt.Errorf("compute indicators: %v: %w", err, models.ErrMalformedPayload)
	}

	rsi, err := indicators.RSI(closes, p.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute rsi: %w", err)
	}
	bb, err := indicators.Bollinger(closes, p.BBPeriod, p.BBStdDev)
	if err != nil {
		return nil, fmt.Errorf("compute bollinger: %w", err)
	}

	price := closes[len(closes)-1]
	return &models.IndicatorReport{
		Candles:   len(closes),
		Price:     price,
		RSI:       rsi,
		Bollinger: bb,
		Signal:    signal.Classify(price, rsi, bb, p),
	}, nil
}

// ErrorKind names the failure category used in logs and metrics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, indicators.ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, models.ErrMalformedPayload), errors.Is(err, indicators.ErrInvalidPrice):
		return "malformed_payload"
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "internal"
	}
}
