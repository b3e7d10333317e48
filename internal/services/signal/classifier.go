package signal

import "SignalDesk/internal/domain/models"

// Labels and style tags rendered by the dashboard.
const (
	SellLabel = "🔥 强逃顶共振 (EXIT)"
	BuyLabel  = "💰 强抄底共振 (BUY)"
	HoldLabel = "⏳ 持仓观望 (WAIT)"

	SellStyle = "bg-down/10 border-down text-down"
	BuyStyle  = "bg-up/10 border-up text-up"
	HoldStyle = "bg-warn/10 border-warn text-warn"
)

var (
	sell = models.Signal{Kind: models.SignalSell, Label: SellLabel, Style: SellStyle}
	buy  = models.Signal{Kind: models.SignalBuy, Label: BuyLabel, Style: BuyStyle}
	hold = models.Signal{Kind: models.SignalHold, Label: HoldLabel, Style: HoldStyle}
)

// Classify maps the latest price, RSI and band snapshot to a signal.
// Rules are checked in order and the first match wins:
//
//	rsi > overbought && price > upper  -> sell
//	rsi < oversold   && price < lower  -> buy
//	otherwise                          -> hold
func Classify(price, rsi float64, bb models.BollingerSnapshot, p models.StrategyParams) models.Signal {
	if rsi > p.Overbought && price > bb.Upper {
		return sell
	}
	if rsi < p.Oversold && price < bb.Lower {
		return buy
	}
	return hold
}
