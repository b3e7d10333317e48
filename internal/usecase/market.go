package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	domrepo "SignalDesk/internal/domain/repository"

	"github.com/tidwall/gjson"
)

// MarketUseCase proxies the 24h ticker snapshot of the fixed pair.
type MarketUseCase struct {
	source  domrepo.TickerSource
	metrics domrepo.Metrics
	symbol  string
}

func NewMarketUseCase(source domrepo.TickerSource, metrics domrepo.Metrics, symbol string) *MarketUseCase {
	return &MarketUseCase{source: source, metrics: metrics, symbol: symbol}
}

// Snapshot returns the upstream ticker document verbatim.
func (uc *MarketUseCase) Snapshot(ctx context.Context) (json.RawMessage, error) {
	start := time.Now()
	body, err := uc.source.Ticker24h(ctx)
	uc.metrics.RecordFetch("ticker", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordError(ErrorKind(err))
		return nil, fmt.Errorf("market snapshot: %w", err)
	}

	if p, err := strconv.ParseFloat(gjson.GetBytes(body, "lastPrice").String(), 64); err == nil {
		uc.metrics.RecordLastPrice(uc.symbol, p)
	}
	return json.RawMessage(body), nil
}

