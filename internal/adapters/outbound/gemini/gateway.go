// Package gemini adapts Google's Generative AI SDK to domain.ModelGateway.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
)

// contentGenerator is the subset of *genai.GenerativeModel used by the gateway.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gateway sends prompts to a Gemini model.
type Gateway struct {
	client  *genai.Client
	model   contentGenerator
	modelID string
}

// NewGateway creates a Gateway for modelID authenticated with apiKey.
// A nil temperature leaves the model default in place.
func NewGateway(ctx context.Context, apiKey, modelID string, temperature *float64) (*Gateway, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if modelID == "" {
		return nil, errors.New("gemini model cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelID)
	if temperature != nil {
		model.SetTemperature(float32(*temperature))
	}

	return &Gateway{client: client, model: model, modelID: modelID}, nil
}

// Generate implements domain.ModelGateway.
func (g *Gateway) Generate(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", g.modelID))

	resp, err := g.model.GenerateContent(spanCtx, genai.Text(prompt))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelResponse{}, domain.NewModelCallErr(fmt.Errorf("gemini API call failed: %w", err))
	}

	out, err := toModelResponse(resp)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelResponse{}, domain.NewModelCallErr(err)
	}
	return out, nil
}

// Close releases the underlying SDK client.
func (g *Gateway) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}

// toModelResponse concatenates the text parts of the first candidate.
func toModelResponse(resp *genai.GenerateContentResponse) (domain.ModelResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return domain.ModelResponse{}, errors.New("no content returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	out := domain.ModelResponse{Text: sb.String()}
	if resp.UsageMetadata != nil {
		out.Usage = domain.ModelUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

var _ domain.ModelGateway = (*Gateway)(nil)
