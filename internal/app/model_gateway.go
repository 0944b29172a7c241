package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/gemini"
	"github.com/canyon289/ai-agent-basics/internal/adapters/outbound/modelrunner"
	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	MODEL_PROVIDER_OPENAI = "openai"
	MODEL_PROVIDER_GEMINI = "gemini"
)

// InitModelGateway registers the domain.ModelGateway selected by LLM_PROVIDER.
// "openai" talks to any OpenAI-compatible chat endpoint at LLM_MODEL_HOST;
// "gemini" uses the Google Generative AI SDK and requires LLM_API_KEY.
type InitModelGateway struct {
	Logger      *log.Logger  `resolve:""`
	HttpClient  *http.Client `resolve:""`
	Provider    string       `config:"LLM_PROVIDER" default:"openai"`
	ModelHost   string       `config:"LLM_MODEL_HOST" default:"http://localhost:11434"`
	Model       string       `config:"LLM_MODEL" default:"gemma3:4b"`
	APIKey      string       `config:"LLM_API_KEY" default:"-"`
	Temperature string       `config:"LLM_TEMPERATURE" default:"-"`
	gemini      *gemini.Gateway
}

// Initialize builds the model gateway.
func (i *InitModelGateway) Initialize(ctx context.Context) (context.Context, error) {
	temperature, err := parseTemperature(i.Temperature)
	if err != nil {
		return ctx, err
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}

	switch strings.ToLower(strings.TrimSpace(i.Provider)) {
	case MODEL_PROVIDER_OPENAI:
		client := modelrunner.NewCompletionsClient(i.ModelHost, apiKey, i.HttpClient)
		depend.Register[domain.ModelGateway](modelrunner.NewGateway(client, i.Model, temperature))
		i.Logger.Printf("ModelGateway: using %s model %s at %s", MODEL_PROVIDER_OPENAI, i.Model, i.ModelHost)
	case MODEL_PROVIDER_GEMINI:
		gateway, err := gemini.NewGateway(ctx, apiKey, i.Model, temperature)
		if err != nil {
			return ctx, err
		}
		i.gemini = gateway
		depend.Register[domain.ModelGateway](gateway)
		i.Logger.Printf("ModelGateway: using %s model %s", MODEL_PROVIDER_GEMINI, i.Model)
	default:
		return ctx, fmt.Errorf("unsupported LLM_PROVIDER %q (expected %s or %s)", i.Provider, MODEL_PROVIDER_OPENAI, MODEL_PROVIDER_GEMINI)
	}
	return ctx, nil
}

// Close releases the Gemini client when one was created.
func (i *InitModelGateway) Close() {
	if i.gemini == nil {
		return
	}
	if err := i.gemini.Close(); err != nil {
		i.Logger.Printf("ModelGateway: error closing gemini client: %v", err)
	}
	i.gemini = nil
}

// parseTemperature returns nil for "-" or an empty value.
func parseTemperature(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", raw, err)
	}
	if v < 0 || v > 2 {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: must be between 0 and 2", raw)
	}
	return &v, nil
}
