package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/canyon289/ai-agent-basics"

var (
	tracer = otel.Tracer(instrumentationName)
)

// SpanNameFormatter names outbound HTTP spans after the method and target,
// e.g. "POST localhost:11434/v1/chat/completions". Query strings are left out
// because wttr.in requests carry the format there.
func SpanNameFormatter(_ string, r *http.Request) string {
	if r.URL == nil {
		return r.Method
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s%s", r.Method, r.URL.Host, r.URL.Path))
}

// Start opens a span named after the calling function, e.g.
// "usecases::ProcessTurnImpl::Execute".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerSpanName(2), opts...)
}

// RecordErrorAndStatus records err on span and marks it failed, or marks the
// span OK when err is nil. It reports whether an error was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

// callerSpanName turns the function skip frames up the stack into a span
// name: the import path is dropped, pointer receivers are unwrapped and
// separators become "::".
func callerSpanName(skip int) string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+1, pcs) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	if frame.Function == "" {
		return "unknown"
	}

	name := frame.Function
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)
	return strings.ReplaceAll(name, ".", "::")
}

// newTracerProvider exports spans in batches over OTLP/HTTP. An empty
// endpoint leaves the exporter on its environment defaults.
func newTracerProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdktrace.TracerProvider, error) {
	var opts []otlptracehttp.Option
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)
	return tracerProvider, nil
}
