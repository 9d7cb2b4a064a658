//nolint:mnd
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderlookup/internal/orderstub"
	"orderlookup/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	addr := flag.String("addr", ":8080", "Address to serve the order API on")
	count := flag.Int("count", 10, "Number of generated orders")
	seed := flag.Uint64("seed", 0, "Faker seed, 0 picks a random one")
	delay := flag.Duration("delay", 0, "Artificial latency added to every order response")
	level := flag.String("log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()

	zl, err := logger.NewZapLogger("order-stub", "local", logger.SetLevel(logger.ParseLevel(*level)), logger.File(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewFromZap(zl.Zap())

	store := orderstub.NewStore()
	ids := store.Seed(gofakeit.New(*seed), *count)
	log.Infow("orders generated", "count", len(ids), "ids", ids)

	server := &http.Server{
		Addr:              *addr,
		Handler:           orderstub.NewServer(store, log, orderstub.WithDelay(*delay)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Infow("starting order stub", "addr", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorw("order stub failed", "error", err)
		os.Exit(1)
	}
	log.Infow("order stub stopped")
}
