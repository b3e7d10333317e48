package models

// IndicatorsResponse is the /api/indicators document consumed by the dashboard.
type IndicatorsResponse struct {
	RSI         float64           `json:"rsi"`
	BB          BollingerSnapshot `json:"bb"`
	Price       float64           `json:"price"`
	SignalType  SignalKind        `json:"signalType"`
	SignalText  string            `json:"signalText"`
	SignalClass string            `json:"signalClass"`
}

// NewIndicatorsResponse flattens a report into its wire shape.
func NewIndicatorsResponse(r *IndicatorReport) IndicatorsResponse {
	return IndicatorsResponse{
		RSI:         r.RSI,
		BB:          r.Bollinger,
		Price:       r.Price,
		SignalType:  r.Signal.Kind,
		SignalText:  r.Signal.Label,
		SignalClass: r.Signal.Style,
	}
}
