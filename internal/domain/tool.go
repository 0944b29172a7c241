package domain

import (
	"context"
	"encoding/json"
)

// ToolDescriptor describes a tool exposed by the tool session.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"-"`
}

// HasInputSchema reports whether the tool advertises an input schema.
func (td ToolDescriptor) HasInputSchema() bool {
	raw := string(td.InputSchema)
	return raw != "" && raw != "null" && raw != "{}"
}

// ToolCatalog is the set of tools listed at the beginning of a turn.
type ToolCatalog []ToolDescriptor

// Find returns the descriptor registered under name.
func (tc ToolCatalog) Find(name string) (ToolDescriptor, bool) {
	for _, td := range tc {
		if td.Name == name {
			return td, true
		}
	}
	return ToolDescriptor{}, false
}

// Names returns the tool names in listing order.
func (tc ToolCatalog) Names() []string {
	names := make([]string, 0, len(tc))
	for _, td := range tc {
		names = append(names, td.Name)
	}
	return names
}

// PromptArgument describes an argument accepted by a prompt template.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// PromptDescriptor describes a named prompt template owned by the tool session.
type PromptDescriptor struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// ToolInvocation is a tool call extracted from model output.
type ToolInvocation struct {
	ToolName  string
	Arguments map[string]any
}

// ToolResult is the textual outcome of a tool invocation.
type ToolResult struct {
	Text string
}

// ToolSession is a live connection to a tool-hosting endpoint.
type ToolSession interface {
	// ListTools returns the tools currently exposed by the endpoint.
	ListTools(ctx context.Context) ([]ToolDescriptor, error)
	// ListPrompts returns the prompt templates currently exposed by the endpoint.
	ListPrompts(ctx context.Context) ([]PromptDescriptor, error)
	// GetPrompt renders the named prompt template with args and returns its text.
	GetPrompt(ctx context.Context, name string, args map[string]string) (string, error)
	// InvokeTool calls the named tool with args and returns its textual result.
	InvokeTool(ctx context.Context, name string, args map[string]any) (ToolResult, error)
}

// ResponseParser extracts an optional tool invocation from raw model output.
// A nil error with found == false means the model answered directly.
type ResponseParser interface {
	Extract(text string) (invocation ToolInvocation, found bool, err error)
}
