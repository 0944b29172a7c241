package mcpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWeatherTool(t *testing.T) {
	tests := map[string]struct {
		args          map[string]any
		setExpectations func(provider *domain.MockWeatherProvider)
		expectedText  string
		expectIsError bool
	}{
		"success": {
			args: map[string]any{"city": "Paris"},
			setExpectations: func(provider *domain.MockWeatherProvider) {
				provider.EXPECT().
					CurrentWeather(mock.Anything, "Paris").
					Return("Paris: ☀️ +20°C", nil).
					Once()
			},
			expectedText: "Paris: ☀️ +20°C",
		},
		"trims-city": {
			args: map[string]any{"city": "  Lisbon "},
			setExpectations: func(provider *domain.MockWeatherProvider) {
				provider.EXPECT().
					CurrentWeather(mock.Anything, "Lisbon").
					Return("Lisbon: ⛅️ +18°C", nil).
					Once()
			},
			expectedText: "Lisbon: ⛅️ +18°C",
		},
		"missing-city": {
			args:          map[string]any{},
			expectedText:  "city is required",
			expectIsError: true,
		},
		"city-not-a-string": {
			args:          map[string]any{"city": 42},
			expectedText:  "invalid arguments",
			expectIsError: true,
		},
		"provider-error": {
			args: map[string]any{"city": "Atlantis"},
			setExpectations: func(provider *domain.MockWeatherProvider) {
				provider.EXPECT().
					CurrentWeather(mock.Anything, "Atlantis").
					Return("", domain.NewNotFoundErr(`unknown location "Atlantis"`)).
					Once()
			},
			expectedText:  `failed to get weather for Atlantis: unknown location "Atlantis"`,
			expectIsError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain.NewMockWeatherProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(provider)
			}
			client := connectTestClient(t, provider)

			result, err := client.CallTool(context.Background(), &mcpsdk.CallToolParams{
				Name:      WEATHER_TOOL_NAME,
				Arguments: tt.args,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectIsError, result.IsError)
			require.Len(t, result.Content, 1)
			text, ok := result.Content[0].(*mcpsdk.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.expectedText)
		})
	}
}

func TestServer_ListsCapabilities(t *testing.T) {
	client := connectTestClient(t, domain.NewMockWeatherProvider(t))
	ctx := context.Background()

	var tools []string
	for tool, err := range client.Tools(ctx, nil) {
		require.NoError(t, err)
		tools = append(tools, tool.Name)
	}
	assert.Equal(t, []string{WEATHER_TOOL_NAME}, tools)

	prompts := map[string]*mcpsdk.Prompt{}
	for prompt, err := range client.Prompts(ctx, nil) {
		require.NoError(t, err)
		prompts[prompt.Name] = prompt
	}
	require.Contains(t, prompts, "weather_prompt")
	require.Contains(t, prompts, "weather_response_prompt")
	assert.Len(t, prompts["weather_response_prompt"].Arguments, 2)
}

func TestServer_GetPrompt(t *testing.T) {
	client := connectTestClient(t, domain.NewMockWeatherProvider(t))
	ctx := context.Background()

	result, err := client.GetPrompt(ctx, &mcpsdk.GetPromptParams{
		Name:      "weather_response_prompt",
		Arguments: map[string]string{"city": "Paris", "weather": "Paris: ☀️ +20°C"},
	})
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	text, ok := result.Messages[0].Content.(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Paris: ☀️ +20°C")

	_, err = client.GetPrompt(ctx, &mcpsdk.GetPromptParams{
		Name:      "weather_response_prompt",
		Arguments: map[string]string{"city": "Paris"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument")
}

func TestWeatherServer_Run(t *testing.T) {
	provider := domain.NewMockWeatherProvider(t)
	provider.EXPECT().
		CurrentWeather(mock.Anything, "Paris").
		Return("Paris: ☀️ +20°C", nil).
		Once()

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	ws := WeatherServer{
		Logger:    log.New(io.Discard, "", 0),
		Provider:  provider,
		Name:      "weatherserver",
		transport: serverTransport,
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- ws.Run(ctx)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      WEATHER_TOOL_NAME,
		Arguments: map[string]any{"city": "Paris"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("weather server did not stop after cancellation")
	}
	_ = session.Close()
}

func connectTestClient(t *testing.T, provider domain.WeatherProvider) *mcpsdk.ClientSession {
	t.Helper()
	catalog, err := LoadPromptCatalog()
	require.NoError(t, err)
	server := NewServer("weatherserver", provider, catalog, log.New(io.Discard, "", 0))

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		err := serverSession.Wait()
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Logf("server session ended: %v", err)
		}
		cancel()
	})
	return session
}
