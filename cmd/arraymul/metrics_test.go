package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/tailored-agentic-units/arraymul/observability"
)

func TestPrintMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	obs, err := observability.NewMetricsObserver(provider.Meter(observability.MeterName))
	if err != nil {
		t.Fatalf("NewMetricsObserver failed: %v", err)
	}
	obs.OnEvent(context.Background(), observability.NewEvent("multiplier.multiply", observability.LevelInfo, "test", nil))
	obs.OnEvent(context.Background(), observability.NewEvent("multiplier.multiply", observability.LevelInfo, "test", nil))

	var buf bytes.Buffer
	if err := printMetrics(context.Background(), reader, &buf); err != nil {
		t.Fatalf("printMetrics failed: %v", err)
	}

	if !strings.Contains(buf.String(), "arraymul_events{type=multiplier.multiply} 2") {
		t.Errorf("unexpected metrics output: %q", buf.String())
	}
}
