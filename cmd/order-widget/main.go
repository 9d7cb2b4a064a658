package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orderlookup/internal/app"
	"orderlookup/internal/config"
	"orderlookup/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewAdapter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Infow("application starting", "env", cfg.Env, "order_service", cfg.Client.BaseURL)

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Errorw("application failed", "error", err)
		cancel()
		_ = log.Sync()
		os.Exit(1)
	}

	log.Infow("application exited normally")
}
