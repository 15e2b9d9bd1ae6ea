package instrument

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records per-call measurements.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; recording is best-effort.
type Metrics interface {
	// Record registers one intercepted call with its duration and outcome.
	Record(ctx context.Context, name string, duration time.Duration, err error)
}

type callMetrics struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics builds a Metrics implementation on the given meter, emitting
// call.total, call.errors, and call.duration_ms.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"call.total",
		metric.WithDescription("Total number of intercepted calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"call.errors",
		metric.WithDescription("Total number of intercepted calls that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"call.duration_ms",
		metric.WithDescription("Intercepted call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &callMetrics{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

func (m *callMetrics) Record(ctx context.Context, name string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("call.name", name))

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is the default when no meter is wired.
type noopMetrics struct{}

func (noopMetrics) Record(ctx context.Context, name string, duration time.Duration, err error) {}
