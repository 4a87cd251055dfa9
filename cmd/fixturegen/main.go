package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/frontendshop/fixturegen/internal/app"
	"github.com/frontendshop/fixturegen/internal/config"
	"github.com/frontendshop/fixturegen/pkg/logger"
)

const serviceName = "fixture-generator"

func main() {
	if err := run(); err != nil {
		slog.Error("fixture generator failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(serviceName, cfg.LogLevel)
	log.Info("starting fixture generator",
		slog.String("environment", cfg.Environment),
		slog.Int64("seed", cfg.Seed),
		slog.String("output_path", cfg.OutputPath),
		slog.Bool("database_seed", cfg.DatabaseSeedEnabled),
		slog.Bool("events", cfg.EventsEnabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer application.Shutdown()

	if err := application.Run(ctx); err != nil {
		return err
	}

	log.Info("fixture generation complete")
	return nil
}
