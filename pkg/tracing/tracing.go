package tracing

import (
	"context"
	"fmt"

	"orderlookup/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Shutdown flushes buffered spans and releases the exporter.
type Shutdown func(ctx context.Context) error

// Init registers a Jaeger-exporting TracerProvider and the W3C propagators globally.
func Init(serviceName, version, endpoint string, log logger.Logger) (Shutdown, error) {
	const op = "tracing.Init"

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, fmt.Errorf("%s: create jaeger exporter: %w", op, err)
	}

	tp := NewProvider(serviceName, version, sdktrace.WithBatcher(exporter))
	Install(tp)

	log.Infow("tracing initialized", "service", serviceName, "endpoint", endpoint)
	return tp.Shutdown, nil
}

// NewProvider builds an always-sampling provider tagged with the service identity.
func NewProvider(serviceName, version string, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		)),
	}, opts...)

	return sdktrace.NewTracerProvider(opts...)
}

func Install(tp *sdktrace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Noop is returned when tracing is disabled.
func Noop(context.Context) error { return nil }
