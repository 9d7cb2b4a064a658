package httpt

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"orderlookup/internal/render"
	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"

	"github.com/gin-gonic/gin"
)

const (
	_sessionCookie      = "order_widget_session"
	_sessionKey         = "session"
	_defaultSearchWait  = 2 * time.Second
	_slowRequestTimeout = 200 * time.Millisecond
)

//go:embed web/index.html
var webFS embed.FS

type WidgetHandler struct {
	sessions   *SessionStore
	l          render.Localizer
	log        logger.Logger
	metrics    metric.HTTP
	router     *gin.Engine
	searchWait time.Duration
	cookieTTL  time.Duration
}

type Option func(*WidgetHandler)

// WithSearchWait bounds how long POST /search waits for the lookup before
// redirecting to a page that still shows the loading state.
func WithSearchWait(d time.Duration) Option {
	return func(h *WidgetHandler) {
		h.searchWait = d
	}
}

func WithCookieTTL(d time.Duration) Option {
	return func(h *WidgetHandler) {
		h.cookieTTL = d
	}
}

func NewWidgetHandler(
	sessions *SessionStore,
	l render.Localizer,
	log logger.Logger,
	metrics metric.HTTP,
	opts ...Option,
) (*WidgetHandler, error) {
	const op = "transport.NewWidgetHandler"

	h := &WidgetHandler{
		sessions:   sessions,
		l:          l,
		log:        log,
		metrics:    metrics,
		searchWait: _defaultSearchWait,
	}
	for _, opt := range opts {
		opt(h)
	}

	page, err := template.ParseFS(webFS, "web/index.html")
	if err != nil {
		return nil, fmt.Errorf("%s: parse page template: %w", op, err)
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(page)

	h.router = router
	h.setupRoutes()

	return h, nil
}

func (h *WidgetHandler) Engine() *gin.Engine {
	return h.router
}
