package weather

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWttrClient_CurrentWeather(t *testing.T) {
	tests := map[string]struct {
		city             string
		statusCode       int
		response         string
		expectedPath     string
		expectedReport   string
		expectNotFound   bool
		expectValidation bool
		expectErr        bool
	}{
		"success": {
			city:           "Paris",
			statusCode:     http.StatusOK,
			response:       "Paris: ☀️   +20°C\n",
			expectedPath:   "/Paris",
			expectedReport: "Paris: ☀️   +20°C",
		},
		"city-with-spaces": {
			city:           "San Francisco",
			statusCode:     http.StatusOK,
			response:       "San Francisco: 🌫  +14°C",
			expectedPath:   "/San Francisco",
			expectedReport: "San Francisco: 🌫  +14°C",
		},
		"unknown-location": {
			city:           "Atlantis",
			statusCode:     http.StatusNotFound,
			response:       "Unknown location",
			expectedPath:   "/Atlantis",
			expectNotFound: true,
		},
		"upstream-error": {
			city:         "Paris",
			statusCode:   http.StatusInternalServerError,
			response:     "oops",
			expectedPath: "/Paris",
			expectErr:    true,
		},
		"empty-report": {
			city:         "Paris",
			statusCode:   http.StatusOK,
			response:     "  \n",
			expectedPath: "/Paris",
			expectErr:    true,
		},
		"empty-city": {
			city:             "  ",
			expectValidation: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expectedPath, r.URL.Path)
				assert.Equal(t, "3", r.URL.Query().Get("format"))
				assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewWttrClient(server.URL+"/", server.Client())

			report, err := client.CurrentWeather(context.Background(), tt.city)
			switch {
			case tt.expectNotFound:
				var notFound *domain.NotFoundErr
				assert.ErrorAs(t, err, &notFound)
			case tt.expectValidation:
				var validation *domain.ValidationErr
				assert.ErrorAs(t, err, &validation)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedReport, report)
			}
		})
	}
}

func TestInitWeatherProvider_Initialize(t *testing.T) {
	i := InitWeatherProvider{
		Logger:     log.New(io.Discard, "", 0),
		BaseURL:    "https://wttr.in",
		MaxRetries: 1,
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	provider, err := depend.Resolve[domain.WeatherProvider]()
	assert.NoError(t, err)
	assert.NotNil(t, provider)
}
