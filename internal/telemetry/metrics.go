package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Turns include up to two model calls on local hardware, so their buckets
// reach minutes. Other durations (HTTP client, tool calls) stay sub-minute.
var (
	turnDurationBuckets  = []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60, 120, 300}
	otherDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)

// newMeterProvider exports metrics periodically over OTLP/HTTP. An empty
// endpoint leaves the exporter on its environment defaults.
func newMeterProvider(ctx context.Context, res *resource.Resource, endpoint string, interval time.Duration) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithInsecure()}
	if endpoint != "" {
		opts = append(opts, otlpmetrichttp.WithEndpointURL(endpoint))
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
		sdkmetric.WithView(durationView),
	)
	return meterProvider, nil
}

// durationView assigns histogram buckets to duration instruments by name.
// Only one view may match an instrument, so the choice happens in one place.
func durationView(inst sdkmetric.Instrument) (sdkmetric.Stream, bool) {
	if !strings.Contains(inst.Name, "duration") {
		return sdkmetric.Stream{}, false
	}
	buckets := otherDurationBuckets
	if inst.Name == "chat_turn_duration_seconds" {
		buckets = turnDurationBuckets
	}
	return sdkmetric.Stream{
		Name:        inst.Name,
		Description: inst.Description,
		Unit:        inst.Unit,
		Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: buckets},
	}, true
}
