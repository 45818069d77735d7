package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope used for all arraymul instruments.
const MeterName = "github.com/tailored-agentic-units/arraymul"

// MetricsObserver counts events with OpenTelemetry instruments. Every event
// increments arraymul_events by type and source; events at LevelError or
// above also increment arraymul_errors.
type MetricsObserver struct {
	events metric.Int64Counter
	errors metric.Int64Counter
}

// NewMetricsObserver creates instruments on meter. A nil meter uses the
// global meter provider.
func NewMetricsObserver(meter metric.Meter) (*MetricsObserver, error) {
	if meter == nil {
		meter = otel.Meter(MeterName)
	}

	events, err := meter.Int64Counter("arraymul_events",
		metric.WithDescription("Observability events by type and source"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, fmt.Errorf("create events counter: %w", err)
	}

	errs, err := meter.Int64Counter("arraymul_errors",
		metric.WithDescription("Error-level events by type"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}

	return &MetricsObserver{events: events, errors: errs}, nil
}

func (o *MetricsObserver) OnEvent(ctx context.Context, event Event) {
	typ := attribute.String("type", string(event.Type))

	o.events.Add(ctx, 1, metric.WithAttributes(
		typ,
		attribute.String("source", event.Source),
	))

	if event.Level >= LevelError {
		o.errors.Add(ctx, 1, metric.WithAttributes(typ))
	}
}
