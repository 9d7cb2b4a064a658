package widget

import (
	"context"

	"orderlookup/internal/entity"
	"orderlookup/pkg/logger"
)

//go:generate mockgen -source=controller.go -destination=mock/controller.go -package=mock_widget

type Key string

// KeyEnter is the confirm key of the identifier field.
const KeyEnter Key = "Enter"

type Searcher interface {
	Lookup(ctx context.Context, id entity.OrderID) State
	Reject(err error) State
}

// Controller turns user intent into searches. It keeps no state between calls.
type Controller struct {
	searcher Searcher
	log      logger.Logger
}

func NewController(searcher Searcher, log logger.Logger) *Controller {
	return &Controller{searcher: searcher, log: log}
}

// SubmitSearch trims raw and starts a lookup. Empty input is rejected locally.
func (c *Controller) SubmitSearch(ctx context.Context, raw string) State {
	id, err := entity.ParseOrderID(raw)
	if err != nil {
		c.log.Ctx(ctx).LogAttrs(ctx, logger.DebugLevel, "search rejected",
			logger.String("op", "widget.Controller.SubmitSearch"),
			logger.Err(err),
		)
		return c.searcher.Reject(err)
	}
	return c.searcher.Lookup(ctx, id)
}

// Activate handles the search control.
func (c *Controller) Activate(ctx context.Context, raw string) State {
	return c.SubmitSearch(ctx, raw)
}

// KeyPress submits only for the confirm key and reports whether a search was triggered.
func (c *Controller) KeyPress(ctx context.Context, key Key, raw string) (State, bool) {
	if key != KeyEnter {
		return nil, false
	}
	return c.SubmitSearch(ctx, raw), true
}
