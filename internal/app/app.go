package app

import (
	"context"
	"fmt"
	"time"

	"orderlookup/internal/config"
	"orderlookup/internal/orderapi"
	"orderlookup/internal/render"
	httpt "orderlookup/internal/transport/http"
	"orderlookup/internal/widget"
	"orderlookup/pkg/cache"
	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"
	"orderlookup/pkg/tracing"

	"golang.org/x/sync/errgroup"
)

const _metricsShutdownTimeout = 5 * time.Second

// Run serves the web widget until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := metric.NewFactory()
	if cfg.Metrics.Enabled {
		initMetricsServer(ctx, eg, &cfg.Metrics, metrics, log)
	}

	shutdownTracing, err := initTracing(cfg, log)
	if err != nil {
		return err
	}
	defer flushTracing(shutdownTracing, log)

	client, err := initClient(cfg, log)
	if err != nil {
		return err
	}

	opts, err := render.OptionsFromConfig(cfg.Display)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}

	renderer, err := render.NewHTMLRenderer(opts)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}

	sessions, err := initSessions(&cfg.Session, client, renderer, log, metrics)
	if err != nil {
		return err
	}
	defer sessions.Close()

	if serverErr := initHTTPServer(ctx, eg, cfg, sessions, renderer.Localizer(), log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetricsServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	metrics metric.Factory,
	log logger.Logger,
) {
	server := httpt.NewHTTPServer(metrics.Handler(), &config.HTTP{
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.WriteTimeout,
		ShutdownTimeout:   _metricsShutdownTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}, log.With("component", "metrics server"))

	eg.Go(func() error {
		return server.Start(ctx)
	})
}

func initTracing(cfg *config.Config, log logger.Logger) (tracing.Shutdown, error) {
	if !cfg.Tracing.Enabled {
		return tracing.Noop, nil
	}

	shutdown, err := tracing.Init(cfg.App.Name, cfg.App.Version, cfg.Tracing.Endpoint, log.With("component", "tracing"))
	if err != nil {
		return nil, fmt.Errorf("app.initTracing: %w", err)
	}
	return shutdown, nil
}

func flushTracing(shutdown tracing.Shutdown, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), _metricsShutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		log.Warnw("failed to flush traces", "error", err)
	}
}

func initClient(cfg *config.Config, log logger.Logger) (*orderapi.Client, error) {
	client, err := orderapi.NewClient(cfg.Client, log.With("component", "order client"))
	if err != nil {
		return nil, fmt.Errorf("app.initClient: %w", err)
	}
	return client, nil
}

func initSessions(
	cfg *config.Session,
	client *orderapi.Client,
	renderer widget.Renderer,
	log logger.Logger,
	metrics metric.Factory,
) (*httpt.SessionStore, error) {
	sessionCache, err := cache.NewLRUCache[string, *httpt.Session](
		cfg.Capacity,
		log.With("component", "session cache"),
		metrics.Session(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initSessions: %w", err)
	}
	sessionCache.StartCleanup(cfg.CleanupInterval)

	engineLog := log.With("component", "widget")
	lookupMetrics := metrics.Lookup()

	return httpt.NewSessionStore(sessionCache, func(region widget.Region) *widget.Engine {
		return widget.NewEngine(client, renderer, region, engineLog, lookupMetrics)
	}, cfg.TTL, log.With("component", "sessions")), nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	sessions *httpt.SessionStore,
	l render.Localizer,
	log logger.Logger,
	metrics metric.Factory,
) error {
	handler, err := httpt.NewWidgetHandler(
		sessions,
		l,
		log.With("component", "http handler"),
		metrics.HTTP(),
		httpt.WithCookieTTL(cfg.Session.TTL),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	httpServer := httpt.NewHTTPServer(handler.Engine(), &cfg.HTTP, log.With("component", "http server"))

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
