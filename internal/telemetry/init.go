package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

const disabledEndpoint = "-"

// InitOpenTelemetry is a component that sets up OpenTelemetry tracing and metrics.
// Exporters stay disabled while their endpoint is "-"; any other value is the
// full OTLP/HTTP URL, e.g. "http://localhost:4318/v1/traces".
type InitOpenTelemetry struct {
	Logger          *log.Logger   `resolve:""`
	ServiceName     string        `config:"OTEL_SERVICE_NAME" default:"mcpclient"`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	MetricsInterval time.Duration `config:"OTEL_METRIC_EXPORT_INTERVAL" default:"5s"`
	shutdowns       []providerShutdown
}

// providerShutdown flushes and stops one provider; shutting a provider down
// also shuts down its exporter.
type providerShutdown struct {
	name string
	fn   func(context.Context) error
}

const shutdownTimeout = 5 * time.Second

// Initialize installs the propagator and whichever providers have an endpoint.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(newPropagator())

	res, err := newAppResource(ctx, o.ServiceName)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != disabledEndpoint {
		tp, err := newTracerProvider(ctx, res, o.TracesEndpoint)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(tp)
		o.shutdowns = append(o.shutdowns, providerShutdown{name: "tracer provider", fn: tp.Shutdown})
		o.Logger.Printf("Telemetry: exporting traces to %s", o.TracesEndpoint)
	}

	if o.MetricsEndpoint != disabledEndpoint {
		mp, err := newMeterProvider(ctx, res, o.MetricsEndpoint, o.metricsInterval())
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(mp)
		o.shutdowns = append(o.shutdowns, providerShutdown{name: "meter provider", fn: mp.Shutdown})
		o.Logger.Printf("Telemetry: exporting metrics to %s every %s", o.MetricsEndpoint, o.metricsInterval())
	}

	return ctx, nil
}

func (o *InitOpenTelemetry) metricsInterval() time.Duration {
	if o.MetricsInterval <= 0 {
		return 5 * time.Second
	}
	return o.MetricsInterval
}

// Close flushes and shuts down whichever providers were started.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range o.shutdowns {
		if err := s.fn(ctx); err != nil {
			o.Logger.Printf("Telemetry: error shutting down %s: %v", s.name, err)
		}
	}
	o.shutdowns = nil
}

// InitHttpClient registers the HTTP client used to reach the model endpoint.
// Requests are instrumented with OpenTelemetry and never retried: a failed
// model call fails the turn.
type InitHttpClient struct {
	Timeout time.Duration `config:"HTTP_CLIENT_TIMEOUT" default:"0s"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewHttpClient(i.Timeout))
	return ctx, nil
}

// NewHttpClient creates an instrumented HTTP client without retries.
// A zero timeout means no client-side timeout.
func NewHttpClient(timeout time.Duration) *http.Client {
	transport := otelhttp.NewTransport(
		http.DefaultTransport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// NewRetryableHttpClient creates an instrumented HTTP client that retries
// transient failures up to maxRetries times. It is meant for tool upstreams,
// never for the model endpoint.
func NewRetryableHttpClient(logger *log.Logger, maxRetries int) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.RetryMax = maxRetries
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = logger

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// dontRetry500StatusPolicy is a retry policy for the retryablehttp client that prevents
// retries on HTTP 500 Internal Server Error responses.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
