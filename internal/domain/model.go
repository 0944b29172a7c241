package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserTurn is one line of user input submitted to the orchestrator.
type UserTurn struct {
	ID   uuid.UUID
	Text string
}

// NewUserTurn creates a UserTurn with a fresh identifier.
func NewUserTurn(text string) UserTurn {
	return UserTurn{
		ID:   uuid.New(),
		Text: text,
	}
}

// ModelUsage contains token usage reported by the model endpoint, when available.
type ModelUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ModelResponse is the raw text generated by the model for a single prompt.
type ModelResponse struct {
	Text  string
	Usage ModelUsage
}

// ModelGateway sends a single prompt to a text-generation model and returns its output.
type ModelGateway interface {
	// Generate sends the prompt as a single user message, without streaming.
	Generate(ctx context.Context, prompt string) (ModelResponse, error)
}
