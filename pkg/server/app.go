package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App serving handler with the configured middleware.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, reg *prometheus.Registry) *App {
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithStaticDir(cfg.Server.StaticDir),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(reg, cfg.Metrics.Path, cfg.Server.SlowRequest))
	}

	return &App{
		cfg:        cfg,
		logger:     l,
		httpServer: xhttp.NewServer(handler, opts...),
	}
}

// Server exposes the HTTP server, mainly for tests.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done or the server fails.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("signaldesk started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("symbol", a.cfg.Binance.Symbol),
		applogger.String("interval", a.cfg.Binance.Interval),
		applogger.String("addr", a.httpServer.Addr()),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err, ok := <-a.httpServer.Errors():
		if ok && err != nil {
			runErr = fmt.Errorf("http server: %w", err)
			a.logger.Error("http server error", applogger.Error(err))
		}
	}

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
