package telemetry

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		method   string
		url      string
		expected string
	}{
		"model-endpoint": {
			method:   http.MethodPost,
			url:      "http://localhost:11434/v1/chat/completions",
			expected: "POST localhost:11434/v1/chat/completions",
		},
		"query-is-dropped": {
			method:   http.MethodGet,
			url:      "https://wttr.in/Paris?format=3",
			expected: "GET wttr.in/Paris",
		},
		"relative-path": {
			method:   http.MethodGet,
			url:      "/health",
			expected: "GET /health",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, tt.url, nil)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &mockSpan{}
	err := errors.New("fail")
	assert.True(t, RecordErrorAndStatus(span, err))
	assert.Equal(t, "fail", span.lastError)
	assert.Equal(t, "fail", span.statusMsg)
	assert.Equal(t, codes.Error, span.statusCode) // codes.Error

	span = &mockSpan{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Equal(t, "OK", span.statusMsg)
	assert.Equal(t, codes.Ok, span.statusCode) // codes.Ok
}

func TestStart(t *testing.T) {
	// Create in-memory exporter
	exporter := tracetest.NewInMemoryExporter()

	// Set up TracerProvider with the exporter
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	tracer = tp.Tracer("test-tracer")

	_, span := Start(t.Context())
	span.End()
	turnRunner{}.Execute(t.Context())
	(&toolRunner{}).Invoke(t.Context())

	spans := exporter.GetSpans()
	assert.Equal(t, 3, len(spans))

	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
	assert.Equal(t, "telemetry::turnRunner::Execute", spans[1].Name)
	assert.Equal(t, "telemetry::toolRunner::Invoke", spans[2].Name)
}

type turnRunner struct{}

func (turnRunner) Execute(ctx context.Context) {
	_, span := Start(ctx)
	span.End()
}

type toolRunner struct{}

func (*toolRunner) Invoke(ctx context.Context) {
	_, span := Start(ctx)
	span.End()
}

// --- Mocks ---

type mockSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}
func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
