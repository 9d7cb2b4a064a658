package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"orderlookup/internal/config"
	"orderlookup/internal/render"
	"orderlookup/internal/transport/terminal"
	"orderlookup/internal/widget"
	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"
)

var ErrLookupFailed = errors.New("lookup failed")

type TerminalOptions struct {
	In    io.Reader
	Out   io.Writer
	Clear bool
	// OneShot submits OrderID once and returns instead of reading In.
	OneShot bool
	OrderID string
}

// RunTerminal drives the widget from a terminal. In one-shot mode it returns
// ErrLookupFailed when the search ends in the error state.
func RunTerminal(ctx context.Context, cfg *config.Config, log logger.Logger, opts TerminalOptions) error {
	const op = "app.RunTerminal"

	shutdownTracing, err := initTracing(cfg, log)
	if err != nil {
		return err
	}
	defer flushTracing(shutdownTracing, log)

	client, err := initClient(cfg, log)
	if err != nil {
		return err
	}

	renderOpts, err := render.OptionsFromConfig(cfg.Display)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	regionOpts := []terminal.RegionOption{terminal.WithClear(opts.Clear)}
	if !opts.OneShot {
		regionOpts = append(regionOpts, terminal.WithPrompt("> "))
	}

	engine := widget.NewEngine(
		client,
		render.NewTextRenderer(renderOpts),
		terminal.NewRegion(opts.Out, regionOpts...),
		log.With("component", "widget"),
		metric.NewFactory().Lookup(),
	)
	host := terminal.NewHost(widget.NewController(engine, log), opts.In, log.With("component", "terminal"))

	if !opts.OneShot {
		return host.Run(ctx)
	}

	if state, ok := host.Once(ctx, opts.OrderID).(widget.Error); ok {
		return fmt.Errorf("%s: %w: %w", op, ErrLookupFailed, state.Err)
	}
	return nil
}
