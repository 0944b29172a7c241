package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestDurationView(t *testing.T) {
	tests := map[string]struct {
		instrument      string
		expectMatch     bool
		expectedBuckets []float64
	}{
		"chat-turn": {
			instrument:      "chat_turn_duration_seconds",
			expectMatch:     true,
			expectedBuckets: turnDurationBuckets,
		},
		"http-client": {
			instrument:      "http.client.request.duration",
			expectMatch:     true,
			expectedBuckets: otherDurationBuckets,
		},
		"counter": {
			instrument:  "chat_turns_total",
			expectMatch: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stream, ok := durationView(sdkmetric.Instrument{Name: tt.instrument, Unit: "s"})
			assert.Equal(t, tt.expectMatch, ok)
			if !tt.expectMatch {
				return
			}
			assert.Equal(t, tt.instrument, stream.Name)
			assert.Equal(t, "s", stream.Unit)
			assert.Equal(t, sdkmetric.AggregationExplicitBucketHistogram{Boundaries: tt.expectedBuckets}, stream.Aggregation)
		})
	}
}
