// Package mcp adapts an MCP client session from the official go-sdk to domain.ToolSession.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
)

// Session implements domain.ToolSession over a connected MCP client session.
type Session struct {
	session *mcpsdk.ClientSession
}

// NewSession wraps an already connected client session.
func NewSession(session *mcpsdk.ClientSession) *Session {
	return &Session{session: session}
}

// Connect performs the MCP handshake over transport.
func Connect(ctx context.Context, impl *mcpsdk.Implementation, transport mcpsdk.Transport) (*Session, error) {
	client := mcpsdk.NewClient(impl, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MCP server: %w", err)
	}
	return NewSession(session), nil
}

// ListTools implements domain.ToolSession.
func (s *Session) ListTools(ctx context.Context) ([]domain.ToolDescriptor, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var tools []domain.ToolDescriptor
	for tool, err := range s.session.Tools(spanCtx, nil) {
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		descriptor, err := toToolDescriptor(tool)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tools = append(tools, descriptor)
	}
	return tools, nil
}

// ListPrompts implements domain.ToolSession.
func (s *Session) ListPrompts(ctx context.Context) ([]domain.PromptDescriptor, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var prompts []domain.PromptDescriptor
	for prompt, err := range s.session.Prompts(spanCtx, nil) {
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		prompts = append(prompts, toPromptDescriptor(prompt))
	}
	return prompts, nil
}

// GetPrompt implements domain.ToolSession. It returns the text of the first prompt message.
func (s *Session) GetPrompt(ctx context.Context, name string, args map[string]string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("mcp.prompt", name))

	result, err := s.session.GetPrompt(spanCtx, &mcpsdk.GetPromptParams{
		Name:      name,
		Arguments: args,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", domain.NewPromptRetrievalErr(name, err)
	}

	for _, msg := range result.Messages {
		if msg == nil {
			continue
		}
		if text, ok := msg.Content.(*mcpsdk.TextContent); ok {
			return text.Text, nil
		}
		break
	}

	err = domain.NewPromptRetrievalErr(name, errors.New("prompt has no text message"))
	telemetry.RecordErrorAndStatus(span, err)
	return "", err
}

// InvokeTool implements domain.ToolSession. It returns the first text content of the result.
func (s *Session) InvokeTool(ctx context.Context, name string, args map[string]any) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("mcp.tool", name))

	result, err := s.session.CallTool(spanCtx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, domain.NewToolInvocationErr(name, err)
	}

	texts := textContents(result.Content)
	if result.IsError {
		msg := strings.Join(texts, "\n")
		if msg == "" {
			msg = "tool reported an error"
		}
		err := domain.NewToolInvocationErr(name, errors.New(msg))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}
	if len(texts) == 0 {
		err := domain.NewToolInvocationErr(name, errors.New("tool returned no text content"))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolResult{}, err
	}

	return domain.ToolResult{Text: texts[0]}, nil
}

// Close ends the session and, for stdio transports, the server process.
func (s *Session) Close() error {
	if s == nil || s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	return err
}

var _ domain.ToolSession = (*Session)(nil)

func toToolDescriptor(tool *mcpsdk.Tool) (domain.ToolDescriptor, error) {
	if tool == nil {
		return domain.ToolDescriptor{}, nil
	}
	descriptor := domain.ToolDescriptor{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if tool.InputSchema != nil {
		schema, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return domain.ToolDescriptor{}, fmt.Errorf("failed to encode input schema of tool %s: %w", tool.Name, err)
		}
		descriptor.InputSchema = schema
	}
	return descriptor, nil
}

func toPromptDescriptor(prompt *mcpsdk.Prompt) domain.PromptDescriptor {
	if prompt == nil {
		return domain.PromptDescriptor{}
	}
	descriptor := domain.PromptDescriptor{
		Name:        prompt.Name,
		Description: prompt.Description,
	}
	for _, arg := range prompt.Arguments {
		if arg == nil {
			continue
		}
		descriptor.Arguments = append(descriptor.Arguments, domain.PromptArgument{
			Name:        arg.Name,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	return descriptor
}

func textContents(content []mcpsdk.Content) []string {
	var texts []string
	for _, c := range content {
		if text, ok := c.(*mcpsdk.TextContent); ok {
			texts = append(texts, text.Text)
		}
	}
	return texts
}
