package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// DefaultToolName is the tool bound to invocations extracted from fenced JSON blocks.
const DefaultToolName = "weather_tool"

// toolCallFence matches the first ```json fenced block; the body may span lines.
var toolCallFence = regexp.MustCompile("(?s)```json\r?\n(.*?)\r?\n```")

// FencedJSONParser extracts tool invocations embedded by the model as a
// fenced JSON block. The payload only carries arguments; the tool name is
// the one the parser was built with.
type FencedJSONParser struct {
	toolName string
}

// NewFencedJSONParser creates a FencedJSONParser bound to toolName.
func NewFencedJSONParser(toolName string) FencedJSONParser {
	if toolName == "" {
		toolName = DefaultToolName
	}
	return FencedJSONParser{toolName: toolName}
}

// Extract implements domain.ResponseParser.
func (p FencedJSONParser) Extract(text string) (domain.ToolInvocation, bool, error) {
	match := toolCallFence.FindStringSubmatch(text)
	if match == nil {
		return domain.ToolInvocation{}, false, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(match[1]), &args); err != nil {
		return domain.ToolInvocation{}, false, domain.NewToolInvocationParseErr(err)
	}
	if args == nil {
		return domain.ToolInvocation{}, false, domain.NewToolInvocationParseErr(
			errors.New("tool call payload must be a JSON object"),
		)
	}

	return domain.ToolInvocation{
		ToolName:  p.toolName,
		Arguments: args,
	}, true, nil
}

var _ domain.ResponseParser = FencedJSONParser{}

// InitResponseParser registers the fenced JSON response parser.
type InitResponseParser struct {
	ToolName string `config:"TOOL_NAME" default:"weather_tool"`
}

// Initialize registers domain.ResponseParser in the dependency container.
func (i InitResponseParser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ResponseParser](NewFencedJSONParser(i.ToolName))
	return ctx, nil
}
