package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"orderlookup/internal/entity"
	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"
)

//go:generate mockgen -source=engine.go -destination=mock/engine.go -package=mock_widget

type OrderFetcher interface {
	FetchOrder(ctx context.Context, id entity.OrderID) (*entity.Order, error)
}

// Engine owns the display state and the region it is rendered into.
//
// Every lookup takes a sequence number when it starts. When its response arrives
// it is applied only if no newer lookup or rejection started in the meantime,
// so the region always reflects the most recently issued search.
type Engine struct {
	fetcher  OrderFetcher
	renderer Renderer
	region   Region
	log      logger.Logger
	metrics  metric.Lookup

	mu    sync.Mutex
	seq   uint64
	state State
}

func NewEngine(
	fetcher OrderFetcher,
	renderer Renderer,
	region Region,
	log logger.Logger,
	metrics metric.Lookup,
) *Engine {
	e := &Engine{
		fetcher:  fetcher,
		renderer: renderer,
		region:   region,
		log:      log,
		metrics:  metrics,
	}

	e.mu.Lock()
	e.transitionLocked(Idle{})
	e.mu.Unlock()

	return e
}

// Lookup runs one search and returns the state it produced. The returned state
// is displayed unless a newer search superseded it while the request was in flight.
func (e *Engine) Lookup(ctx context.Context, id entity.OrderID) State {
	const op = "widget.Engine.Lookup"

	seq := e.begin(Loading{OrderID: id})
	log := e.log.Ctx(ctx)

	start := time.Now()
	order, err := e.fetcher.FetchOrder(ctx, id)
	duration := time.Since(start)
	e.metrics.Outcome(outcomeOf(err), duration)

	var next State
	if err != nil {
		next = Error{Err: err}
		log.LogAttrs(ctx, logger.WarnLevel, "order lookup failed",
			logger.String("op", op),
			logger.String("order_uid", id.String()),
			logger.Uint64("seq", seq),
			logger.Err(err),
		)
	} else {
		next = Result{OrderID: id, Order: order}
		log.LogAttrs(ctx, logger.InfoLevel, "order lookup succeeded",
			logger.String("op", op),
			logger.String("order_uid", id.String()),
			logger.Uint64("seq", seq),
			logger.Int("items_count", len(order.Items)),
			logger.Duration("duration", duration),
		)
	}

	if !e.commit(seq, next) {
		e.metrics.StaleResponse()
		log.LogAttrs(ctx, logger.DebugLevel, "discarding superseded lookup response",
			logger.String("op", op),
			logger.String("order_uid", id.String()),
			logger.Uint64("seq", seq),
		)
	}

	return next
}

// Reject displays err without contacting the order service and supersedes any
// lookup still in flight.
func (e *Engine) Reject(err error) State {
	next := Error{Err: err}
	e.begin(next)
	return next
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Observe calls fn with the current state while holding the engine lock, so
// anything fn reads from the region matches that state.
func (e *Engine) Observe(fn func(s State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

func (e *Engine) begin(s State) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.seq++
	e.transitionLocked(s)
	return e.seq
}

func (e *Engine) commit(seq uint64, s State) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		return false
	}
	e.transitionLocked(s)
	return true
}

func (e *Engine) transitionLocked(s State) {
	content, err := e.renderer.Render(s)
	if err != nil {
		renderErr := fmt.Errorf("render %s view: %w", s.Kind(), err)
		e.log.Errorw("failed to render widget state", "state", string(s.Kind()), "error", err)
		s = Error{Err: renderErr}
		content = entity.Describe(renderErr)
	}

	e.state = s
	e.region.Replace(content)
	e.metrics.Transition(string(s.Kind()))
}

func outcomeOf(err error) string {
	var serverErr *entity.ServerError

	switch {
	case err == nil:
		return metric.OutcomeSuccess
	case errors.Is(err, entity.ErrOrderNotFound):
		return metric.OutcomeNotFound
	case errors.As(err, &serverErr):
		return metric.OutcomeServer
	default:
		return metric.OutcomeTransport
	}
}
