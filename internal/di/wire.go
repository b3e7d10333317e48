//go:build wireinject
// +build wireinject

package di

import (
	"SignalDesk/pkg/config"
	"SignalDesk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Upstream
		ProvideBinanceClient,
		ProvideCandleSource,
		ProvideTickerSource,

		// Use cases
		ProvideMarketUseCase,
		ProvideIndicatorsUseCase,

		// Transport
		ProvideDashboardHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
