package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orderlookup/internal/config"
	"orderlookup/internal/entity"
	"orderlookup/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var errTrailingData = errors.New("unexpected data after order object")

const (
	_tracerName      = "orderlookup/internal/orderapi"
	_maxDrainedBytes = 64 << 10
)

// Client talks to the remote order service. It performs exactly one request per call and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	log        logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) {
		c.propagator = p
	}
}

func NewClient(cfg config.Client, log logger.Logger, opts ...Option) (*Client, error) {
	const op = "orderapi.NewClient"

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%s: unsupported scheme %q", op, base.Scheme)
	}

	transport, _ := http.DefaultTransport.(*http.Transport)
	transport = transport.Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	c := &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		tracer:     otel.Tracer(_tracerName),
		propagator: otel.GetTextMapPropagator(),
		log:        log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// OrderURL returns the address of the order resource; id always occupies a single path segment.
func (c *Client) OrderURL(id entity.OrderID) string {
	return c.baseURL + "/orders/" + url.PathEscape(id.String())
}

// FetchOrder maps the response contract onto the error taxonomy:
// 2xx -> order, 404 -> ErrOrderNotFound, other statuses -> *ServerError,
// no response or an undecodable body -> *TransportError.
func (c *Client) FetchOrder(ctx context.Context, id entity.OrderID) (*entity.Order, error) {
	const op = "orderapi.FetchOrder"

	target := c.OrderURL(id)
	log := c.log.Ctx(ctx)

	ctx, span := c.tracer.Start(ctx, "GET /orders/{id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("url.full", target),
		attribute.String("order.id", id.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, c.fail(span, fmt.Errorf("%s: %w", op, &entity.TransportError{Op: "new request", Err: err}))
	}
	req.Header.Set("Accept", "application/json")
	if requestID := c.log.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "order request failed",
			logger.String("op", op),
			logger.String("order_uid", id.String()),
			logger.Err(err),
		)
		return nil, c.fail(span, fmt.Errorf("%s: %w", op, &entity.TransportError{Op: "do", Err: err}))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	log.LogAttrs(ctx, logger.DebugLevel, "order response received",
		logger.String("op", op),
		logger.String("order_uid", id.String()),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, _maxDrainedBytes))

		if resp.StatusCode == http.StatusNotFound {
			span.SetStatus(codes.Error, entity.ErrOrderNotFound.Error())
			return nil, fmt.Errorf("%s: %w", op, entity.ErrOrderNotFound)
		}
		return nil, c.fail(span, fmt.Errorf("%s: %w", op, &entity.ServerError{Status: resp.StatusCode}))
	}

	order, err := decodeOrder(resp.Body)
	if err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "order body is not valid json",
			logger.String("op", op),
			logger.String("order_uid", id.String()),
			logger.Err(err),
		)
		return nil, c.fail(span, fmt.Errorf("%s: %w", op, &entity.TransportError{Op: "decode", Err: err}))
	}

	return order, nil
}

// decodeOrder reads exactly one JSON value from r; anything after it except whitespace is an error.
func decodeOrder(r io.Reader) (*entity.Order, error) {
	dec := json.NewDecoder(r)

	var order entity.Order
	if err := dec.Decode(&order); err != nil {
		return nil, err
	}

	var rest json.RawMessage
	switch err := dec.Decode(&rest); {
	case errors.Is(err, io.EOF):
		return &order, nil
	case err != nil:
		return nil, err
	default:
		return nil, errTrailingData
	}
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, entity.Describe(err))
	return err
}
