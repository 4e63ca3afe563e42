// cmd/weather-agent/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-advisor/internal/app"
	"weather-advisor/internal/config"
	"weather-advisor/internal/logging"
	"weather-advisor/internal/tracing"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg := config.Load()
	logger := logging.New(cfg, BuildVersion)

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	shutdown, err := tracing.Init(cfg.ZipkinURL, cfg.AppName, BuildVersion)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	// Ctrl+C membatalkan request yang sedang berjalan
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	path, err := a.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "report written to %s\n", path)
	return nil
}
