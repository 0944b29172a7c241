// Package mcpserver exposes the weather tool and its prompts over MCP.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	WEATHER_TOOL_NAME = "weather_tool"

	serverVersion = "v1.0.0"
)

// NewServer builds an MCP server exposing weather_tool and every prompt in catalog.
func NewServer(name string, provider domain.WeatherProvider, catalog PromptCatalog, logger *log.Logger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: name, Version: serverVersion}, nil)

	server.AddTool(&mcpsdk.Tool{
		Name:        WEATHER_TOOL_NAME,
		Description: "Get the current weather for a city.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "Name of the city, e.g. Paris or San Francisco",
				},
			},
			"required": []any{"city"},
		},
	}, weatherToolHandler(provider, logger))

	for _, p := range catalog.Templates() {
		server.AddPrompt(toMCPPrompt(p.Descriptor), promptHandler(p, logger))
	}
	return server
}

func weatherToolHandler(provider domain.WeatherProvider, logger *log.Logger) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		spanCtx, span := telemetry.Start(ctx)
		defer span.End()

		var args struct {
			City string `json:"city"`
		}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				telemetry.RecordErrorAndStatus(span, err)
				return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}
		city := strings.TrimSpace(args.City)
		if city == "" {
			return toolError("city is required"), nil
		}
		span.SetAttributes(attribute.String("weather.city", city))

		report, err := provider.CurrentWeather(spanCtx, city)
		if telemetry.RecordErrorAndStatus(span, err) {
			logger.Printf("WeatherServer: weather lookup for %q failed: %v", city, err)
			return toolError(fmt.Sprintf("failed to get weather for %s: %v", city, err)), nil
		}

		logger.Printf("WeatherServer: weather for %q is %q", city, report)
		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: report}},
		}, nil
	}
}

func promptHandler(p PromptTemplate, logger *log.Logger) mcpsdk.PromptHandler {
	return func(ctx context.Context, req *mcpsdk.GetPromptRequest) (*mcpsdk.GetPromptResult, error) {
		_, span := telemetry.Start(ctx)
		defer span.End()
		span.SetAttributes(attribute.String("mcp.prompt", p.Descriptor.Name))

		text, err := p.Render(req.Params.Arguments)
		if telemetry.RecordErrorAndStatus(span, err) {
			logger.Printf("WeatherServer: %v", err)
			return nil, err
		}
		return &mcpsdk.GetPromptResult{
			Description: p.Descriptor.Description,
			Messages: []*mcpsdk.PromptMessage{
				{Role: "user", Content: &mcpsdk.TextContent{Text: text}},
			},
		}, nil
	}
}

func toMCPPrompt(d domain.PromptDescriptor) *mcpsdk.Prompt {
	prompt := &mcpsdk.Prompt{
		Name:        d.Name,
		Description: d.Description,
	}
	for _, arg := range d.Arguments {
		prompt.Arguments = append(prompt.Arguments, &mcpsdk.PromptArgument{
			Name:        arg.Name,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	return prompt
}

func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
	}
}

// WeatherServer serves the weather MCP server on stdin/stdout until the
// client disconnects or the context is cancelled.
type WeatherServer struct {
	Logger    *log.Logger            `resolve:""`
	Provider  domain.WeatherProvider `resolve:""`
	Name      string                 `config:"MCP_SERVER_NAME" default:"weatherserver"`
	transport mcpsdk.Transport
}

// Run starts serving the MCP protocol.
func (ws WeatherServer) Run(ctx context.Context) error {
	catalog, err := LoadPromptCatalog()
	if err != nil {
		return fmt.Errorf("failed to load prompt catalog: %w", err)
	}

	transport := ws.transport
	if transport == nil {
		transport = &mcpsdk.StdioTransport{}
	}

	server := NewServer(ws.Name, ws.Provider, catalog, ws.Logger)
	ws.Logger.Printf("WeatherServer: serving %s with %d prompts", WEATHER_TOOL_NAME, len(catalog.Templates()))

	err = server.Run(ctx, transport)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("weather server stopped: %w", err)
	}
	ws.Logger.Printf("WeatherServer: stopped")
	return nil
}
