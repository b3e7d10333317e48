package metrics

import (
	"SignalDesk/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var signalKinds = []models.SignalKind{models.SignalBuy, models.SignalSell, models.SignalHold}

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchDuration *prometheus.HistogramVec
	errorsTotal   *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	signal        *prometheus.GaugeVec
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signaldesk_upstream_fetch_duration_seconds",
				Help:    "Duration of upstream market data fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_errors_total",
				Help: "Total number of errors encountered by kind",
			},
			[]string{"kind"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signaldesk_last_price",
				Help: "Last observed price for a symbol",
			},
			[]string{"symbol"},
		),
		signal: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signaldesk_signal",
				Help: "1 for the most recently classified signal kind, 0 otherwise",
			},
			[]string{"symbol", "kind"},
		),
	}
}

// RecordFetch records the latency of one upstream call.
func (r *Recorder) RecordFetch(source string, seconds float64) {
	r.fetchDuration.WithLabelValues(source).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordSignal marks kind as the current signal for symbol.
func (r *Recorder) RecordSignal(symbol string, kind models.SignalKind) {
	for _, k := range signalKinds {
		v := 0.0
		if k == kind {
			v = 1
		}
		r.signal.WithLabelValues(symbol, string(k)).Set(v)
	}
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) RecordFetch(string, float64)            {}
func (Nop) RecordError(string)                     {}
func (Nop) RecordLastPrice(string, float64)        {}
func (Nop) RecordSignal(string, models.SignalKind) {}
