package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records replacing metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a completed or failed render with its duration.
	RecordRender(ctx context.Context, success bool, duration time.Duration)

	// RecordSubstitution records what one replacement did to the text:
	// "value", "blank", "removed" or "kept".
	RecordSubstitution(ctx context.Context, outcome string)

	// RecordResolverFailure records a resolver failure and whether it was caught.
	RecordResolverFailure(ctx context.Context, caught bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders          metric.Int64Counter
	renderLatency    metric.Float64Histogram
	substitutions    metric.Int64Counter
	resolverFailures metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("replacing")

	renders, err := meter.Int64Counter("replacing.render.count",
		metric.WithDescription("Number of renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("replacing.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	substitutions, err := meter.Int64Counter("replacing.tag.substitutions",
		metric.WithDescription("Number of tags resolved, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	resolverFailures, err := meter.Int64Counter("replacing.resolver.failures",
		metric.WithDescription("Number of resolver failures"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:          renders,
		renderLatency:    renderLatency,
		substitutions:    substitutions,
		resolverFailures: resolverFailures,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a render.
func (m *otelMetrics) RecordRender(ctx context.Context, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	m.renders.Add(ctx, 1, attrs)
	m.renderLatency.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)
}

// RecordSubstitution records one replacement outcome.
// Tags never label metrics; spans and logs carry them.
func (m *otelMetrics) RecordSubstitution(ctx context.Context, outcome string) {
	m.substitutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordResolverFailure records a resolver failure.
func (m *otelMetrics) RecordResolverFailure(ctx context.Context, caught bool) {
	m.resolverFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("caught", caught),
	))
}
