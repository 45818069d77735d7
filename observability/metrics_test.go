package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/tailored-agentic-units/arraymul/observability"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string][]metricdata.DataPoint[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string][]metricdata.DataPoint[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", m.Name)
			sums[m.Name] = sum.DataPoints
		}
	}
	return sums
}

func pointValue(points []metricdata.DataPoint[int64], key, value string) int64 {
	for _, p := range points {
		if v, ok := p.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			return p.Value
		}
	}
	return 0
}

func TestMetricsObserver_CountsEvents(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	obs, err := observability.NewMetricsObserver(provider.Meter(observability.MeterName))
	require.NoError(t, err)

	ctx := context.Background()
	obs.OnEvent(ctx, observability.NewEvent("multiplier.multiply", observability.LevelInfo, "multiplier", nil))
	obs.OnEvent(ctx, observability.NewEvent("multiplier.multiply", observability.LevelInfo, "multiplier", nil))
	obs.OnEvent(ctx, observability.NewEvent("multiplier.undo", observability.LevelInfo, "multiplier", nil))
	obs.OnEvent(ctx, observability.NewEvent("multiplier.error", observability.LevelError, "multiplier", nil))

	sums := collectSums(t, reader)

	events := sums["arraymul_events"]
	require.Equal(t, int64(2), pointValue(events, "type", "multiplier.multiply"))
	require.Equal(t, int64(1), pointValue(events, "type", "multiplier.undo"))
	require.Equal(t, int64(1), pointValue(events, "type", "multiplier.error"))

	errs := sums["arraymul_errors"]
	require.Len(t, errs, 1)
	require.Equal(t, int64(1), pointValue(errs, "type", "multiplier.error"))
}

func TestMetricsObserver_NilMeterUsesGlobal(t *testing.T) {
	obs, err := observability.NewMetricsObserver(nil)
	require.NoError(t, err)
	require.NotNil(t, obs)

	obs.OnEvent(context.Background(), observability.NewEvent("test.event", observability.LevelInfo, "test", nil))
}
