package mcp

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const clientVersion = "v1.0.0"

// InitMCPSession connects to the configured MCP server and registers the
// session as domain.ToolSession.
type InitMCPSession struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"MCP_SERVER" default:"stdio://weatherserver"`
	ClientName string      `config:"MCP_CLIENT_NAME" default:"mcpclient"`
	ServerLogs string      `config:"MCP_SERVER_LOGS" default:"discard"`
	session    *Session
}

// Initialize connects to the MCP server and lists its tools.
func (i *InitMCPSession) Initialize(ctx context.Context) (context.Context, error) {
	stderr, err := serverLogsWriter(i.ServerLogs)
	if err != nil {
		return ctx, err
	}

	transport, err := transportBuilder(i.Server, stderr)
	if err != nil {
		return ctx, fmt.Errorf("failed to build MCP transport for %q: %w", i.Server, err)
	}

	session, err := Connect(ctx, &mcpsdk.Implementation{Name: i.ClientName, Version: clientVersion}, transport)
	if err != nil {
		return ctx, err
	}

	tools, err := session.ListTools(ctx)
	if err != nil {
		_ = session.Close()
		return ctx, domain.NewCapabilityDiscoveryErr(err)
	}
	i.Logger.Printf("MCPSession: connected to server with tools: %v", domain.ToolCatalog(tools).Names())

	i.session = session
	depend.Register[domain.ToolSession](session)
	return ctx, nil
}

// Close ends the MCP session.
func (i *InitMCPSession) Close() {
	if i.session == nil {
		return
	}
	if err := i.session.Close(); err != nil {
		i.Logger.Printf("MCPSession: error closing session: %v", err)
	}
	i.session = nil
}

func serverLogsWriter(target string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", "discard", "none":
		return io.Discard, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("unsupported MCP_SERVER_LOGS value %q", target)
	}
}
