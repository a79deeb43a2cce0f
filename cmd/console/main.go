package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/football-registry/internal/app"
	"github.com/riskibarqy/football-registry/internal/config"
	"github.com/riskibarqy/football-registry/internal/observability"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with prompts on stdout.
	logger := logging.NewJSON(cfg.LogLevel, os.Stderr).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, cfg, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("shutdown uptrace", "error", err)
	}

	if code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) int {
	a, err := app.New(ctx, cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	logger.Info("console session started", "driver", cfg.StorageDriver, "environment", cfg.AppEnv)
	if err := a.Session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("console session failed", "error", err)
		return 1
	}

	logger.Info("console session ended")
	return 0
}
