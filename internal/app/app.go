package app

import (
	"github.com/canyon289/ai-agent-basics/internal/adapters/inbound/cli"
	"github.com/canyon289/ai-agent-basics/internal/adapters/inbound/mcpserver"
	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/config"
	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/log"
	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/mcp"
	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/weather"
	"github.com/canyon289/ai-agent-basics/internal/assistant"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	"github.com/canyon289/ai-agent-basics/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewChatApp creates the interactive MCP chat client application.
func NewChatApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitConfigProviders{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&InitModelGateway{},
			&mcp.InitMCPSession{},
			&assistant.InitResponseParser{},
			&usecases.InitProcessTurn{},
		).
		Host(
			&cli.ChatLoop{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewWeatherServerApp creates the MCP weather server launched by the chat client.
func NewWeatherServerApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitConfigProviders{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&weather.InitWeatherProvider{},
		).
		Host(
			&mcpserver.WeatherServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
