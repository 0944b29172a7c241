package modelrunner

import (
	"context"
	"errors"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Gateway adapts CompletionsClient to domain.ModelGateway.
type Gateway struct {
	client      CompletionsClient
	model       string
	temperature *float64
}

// NewGateway creates a Gateway that sends prompts to model.
// A nil temperature leaves the endpoint default in place.
func NewGateway(client CompletionsClient, model string, temperature *float64) Gateway {
	return Gateway{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

// Generate implements domain.ModelGateway.
func (g Gateway) Generate(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", g.model))

	resp, err := g.client.Complete(spanCtx, CompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []CompletionMessage{
			{Role: ROLE_USER, Content: prompt},
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelResponse{}, domain.NewModelCallErr(err)
	}

	text, ok := resp.FirstContent()
	if !ok {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelResponse{}, domain.NewModelCallErr(err)
	}

	out := domain.ModelResponse{Text: text}
	if resp.Usage != nil {
		out.Usage = domain.ModelUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

var _ domain.ModelGateway = Gateway{}
