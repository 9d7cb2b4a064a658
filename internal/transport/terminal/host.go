package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"orderlookup/internal/widget"
	"orderlookup/pkg/logger"
)

type Submitter interface {
	SubmitSearch(ctx context.Context, raw string) widget.State
	KeyPress(ctx context.Context, key widget.Key, raw string) (widget.State, bool)
}

// Host feeds terminal lines into the widget. Every line is a confirm key press
// and is handled in the background, so the user can type while a lookup runs.
type Host struct {
	submitter Submitter
	in        io.Reader
	log       logger.Logger

	inflight sync.WaitGroup
}

func NewHost(submitter Submitter, in io.Reader, log logger.Logger) *Host {
	return &Host{submitter: submitter, in: in, log: log}
}

// Run reads lines until EOF or ctx cancellation and waits for pending lookups.
func (h *Host) Run(ctx context.Context) error {
	const op = "terminal.Host.Run"

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	defer h.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			h.log.Infow("terminal input stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-readErr:
				default:
				}
				if err != nil {
					return fmt.Errorf("%s: read input: %w", op, err)
				}
				return nil
			}
			h.dispatch(ctx, line)
		}
	}
}

// Once runs a single search synchronously.
func (h *Host) Once(ctx context.Context, raw string) widget.State {
	return h.submitter.SubmitSearch(ctx, raw)
}

func (h *Host) dispatch(ctx context.Context, line string) {
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if _, fired := h.submitter.KeyPress(ctx, widget.KeyEnter, line); !fired {
			h.log.Debugw("key press ignored", "input", line)
		}
	}()
}
