package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"SignalDesk/internal/dashboard"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	applogger "SignalDesk/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Log to stderr so stdout carries only the rendered lines.
	logCfg := cfg.Log
	logCfg.Output = "stderr"
	l, err := applogger.New(&logCfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	client := dashboard.NewClient(xhttp.NewClient(
		xhttp.WithBaseURL(cfg.Dashboard.APIURL),
		xhttp.WithTimeout(cfg.Dashboard.PollInterval),
	))
	symbol := cfg.Binance.Symbol

	poller := dashboard.NewPoller(cfg.Dashboard.PollInterval, l)
	if err := poller.Add(dashboard.EndpointMarket, func(ctx context.Context) error {
		v, err := client.Market(ctx)
		if err != nil {
			return err
		}
		return dashboard.RenderMarket(os.Stdout, symbol, v)
	}); err != nil {
		log.Fatalf("poller: %v", err)
	}
	if err := poller.Add(dashboard.EndpointIndicators, func(ctx context.Context) error {
		v, err := client.Indicators(ctx)
		if err != nil {
			return err
		}
		return dashboard.RenderIndicators(os.Stdout, v)
	}); err != nil {
		log.Fatalf("poller: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := poller.Start(ctx); err != nil {
		log.Fatalf("poller start: %v", err)
	}
	l.Info("dashboard polling",
		applogger.String("api", cfg.Dashboard.APIURL),
		applogger.Duration("interval_ms", cfg.Dashboard.PollInterval),
	)

	<-ctx.Done()
	poller.Stop()
	l.Info("dashboard stopped")
}
