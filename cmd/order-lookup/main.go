package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orderlookup/internal/app"
	"orderlookup/internal/config"
	"orderlookup/internal/transport/terminal"
	"orderlookup/pkg/logger"
)

func main() {
	orderID := flag.String("id", "", "Look up a single order and exit")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	oneShot := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			oneShot = true
		}
	})

	// stdout belongs to the widget, console logs go to stderr.
	var logOpts []logger.Option
	if cfg.Logger.Stdout {
		logOpts = append(logOpts, logger.Output(os.Stderr))
	}
	log, err := logger.NewAdapter(cfg, logOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = app.RunTerminal(ctx, cfg, log, app.TerminalOptions{
		In:      os.Stdin,
		Out:     os.Stdout,
		Clear:   !oneShot && terminal.IsTerminal(os.Stdout),
		OneShot: oneShot,
		OrderID: *orderID,
	})
	if err != nil {
		if !errors.Is(err, app.ErrLookupFailed) {
			log.Errorw("order lookup failed", "error", err)
		}
		cancel()
		_ = log.Sync()
		os.Exit(1)
	}
}
