package models

// SignalKind is the discrete classifier outcome.
type SignalKind string

const (
	SignalBuy  SignalKind = "buy"
	SignalSell SignalKind = "sell"
	SignalHold SignalKind = "hold"
)

// Signal is a request-scoped classification result.
type Signal struct {
	Kind  SignalKind
	Label string
	Style string
}

// BollingerSnapshot is the band at a single index of the series.
type BollingerSnapshot struct {
	Lower  float64 `json:"lower"`
	Middle float64 `json:"middle"`
	Upper  float64 `json:"upper"`
}

// IndicatorReport bundles the latest indicator values with their signal.
// Note: no transport (json/http) concerns beyond the band snapshot.
type IndicatorReport struct {
	Symbol    string
	Interval  string
	Candles   int
	Price     float64
	RSI       float64
	Bollinger BollingerSnapshot
	Signal    Signal
}
