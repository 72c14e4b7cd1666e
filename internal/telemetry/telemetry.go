// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "magevsorc"
	serviceVersion = "0.1.0"

	// DefaultEndpoint is Honeycomb's OTLP HTTP endpoint.
	DefaultEndpoint = "https://api.honeycomb.io"
)

// Settings describes where traces go and which game process produced them.
type Settings struct {
	Endpoint string // empty means DefaultEndpoint
	APIKey   string
	Dataset  string

	UI   string
	Seed int64
}

func (s Settings) headers() map[string]string {
	if s.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    s.APIKey,
		"x-honeycomb-dataset": s.Dataset,
	}
}

// Setup installs a global tracer provider exporting over OTLP HTTP.
// Returns a shutdown function that flushes pending spans; call it on exit.
func Setup(ctx context.Context, s Settings) (shutdown func(context.Context) error, err error) {
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	if h := s.headers(); h != nil {
		opts = append(opts, otlptracehttp.WithHeaders(h))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := newResource(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource is built without resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context, s Settings) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("process.runtime.version", runtime.Version()),
			attribute.String("game.ui", s.UI),
			attribute.Int64("game.seed", s.Seed),
		),
	)
}

// Tracer returns a named tracer for the given component from the global provider.
// Until Setup runs, the global provider hands out no-op tracers.
func Tracer(name string) trace.Tracer {
	return TracerFrom(otel.GetTracerProvider(), name)
}

// TracerFrom returns a component tracer from a specific provider.
func TracerFrom(tp trace.TracerProvider, name string) trace.Tracer {
	return tp.Tracer(serviceName + "/" + name)
}
