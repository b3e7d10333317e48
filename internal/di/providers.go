package di

import (
	"fmt"

	"SignalDesk/internal/domain/repository"
	"SignalDesk/internal/handler/api"
	"SignalDesk/internal/service/binance"
	"SignalDesk/internal/usecase"
	"SignalDesk/pkg/config"
	applogger "SignalDesk/pkg/logger"
	"SignalDesk/pkg/metrics"
	"SignalDesk/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideRegistry creates a Prometheus registry with runtime collectors.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder, or a no-op one when
// metrics are disabled.
func ProvideMetrics(cfg *config.Config, reg *prometheus.Registry) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.New(reg)
}

// ProvideBinanceClient creates the upstream market data client.
func ProvideBinanceClient(cfg *config.Config) *binance.Client {
	return binance.New(binance.Config{
		BaseURL:   cfg.Binance.BaseURL,
		Symbol:    cfg.Binance.Symbol,
		Interval:  cfg.Binance.Interval,
		Limit:     cfg.Binance.Limit,
		Timeout:   cfg.Binance.Timeout,
		RateLimit: cfg.Binance.RateLimit,
		Burst:     cfg.Binance.Burst,
	})
}

// ProvideCandleSource exposes the Binance client as the candle source.
func ProvideCandleSource(c *binance.Client) repository.CandleSource { return c }

// ProvideTickerSource exposes the Binance client as the ticker source.
func ProvideTickerSource(c *binance.Client) repository.TickerSource { return c }

// ProvideMarketUseCase creates the ticker proxy use case.
func ProvideMarketUseCase(src repository.TickerSource, m repository.Metrics, cfg *config.Config) *usecase.MarketUseCase {
	return usecase.NewMarketUseCase(src, m, cfg.Binance.Symbol)
}

// ProvideIndicatorsUseCase creates the indicator and signal use case.
func ProvideIndicatorsUseCase(src repository.CandleSource, m repository.Metrics, cfg *config.Config) *usecase.IndicatorsUseCase {
	return usecase.NewIndicatorsUseCase(src, m, cfg.Strategy)
}

// ProvideDashboardHandler creates the Echo handler for /api/market and /api/indicators.
func ProvideDashboardHandler(l *applogger.Logger, mu *usecase.MarketUseCase, iu *usecase.IndicatorsUseCase) *api.DashboardEchoHandler {
	return api.NewDashboardEchoHandler(l, mu, iu)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h *api.DashboardEchoHandler, reg *prometheus.Registry) *server.App {
	return server.New(cfg, l, h, reg)
}
