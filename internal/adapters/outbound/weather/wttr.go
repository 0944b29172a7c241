// Package weather fetches current conditions from wttr.in.
package weather

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const userAgent = "ai-agent-basics-weatherserver/1.0"

// WttrClient implements domain.WeatherProvider on top of wttr.in's one-line format.
type WttrClient struct {
	baseURL string
	http    *http.Client
}

// NewWttrClient creates a new WttrClient.
func NewWttrClient(baseURL string, httpClient *http.Client) WttrClient {
	return WttrClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// CurrentWeather returns a report such as "Paris: ☀️ +20°C".
func (c WttrClient) CurrentWeather(ctx context.Context, city string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("weather.city", city))

	city = strings.TrimSpace(city)
	if city == "" {
		err := domain.NewValidationErr("city cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s?format=3", c.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, endpoint, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to create weather request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to read weather response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		err = domain.NewNotFoundErr(fmt.Sprintf("unknown location %q", city))
	case resp.StatusCode != http.StatusOK:
		err = fmt.Errorf("weather service returned %s", resp.Status)
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	report := strings.TrimSpace(string(body))
	if report == "" {
		err := fmt.Errorf("weather service returned an empty report for %q", city)
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	return report, nil
}

var _ domain.WeatherProvider = WttrClient{}

// InitWeatherProvider registers the wttr.in weather provider.
// The upstream is called through a retrying HTTP client.
type InitWeatherProvider struct {
	Logger     *log.Logger `resolve:""`
	BaseURL    string      `config:"WEATHER_API_URL" default:"https://wttr.in"`
	MaxRetries int         `config:"WEATHER_HTTP_RETRIES" default:"3"`
}

// Initialize registers domain.WeatherProvider in the dependency container.
func (i InitWeatherProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.WeatherProvider](NewWttrClient(
		i.BaseURL,
		telemetry.NewRetryableHttpClient(i.Logger, i.MaxRetries),
	))
	return ctx, nil
}
