// Package modelrunner talks to OpenAI-compatible chat-completions endpoints
// (Ollama, Docker Model Runner, llama.cpp server) and adapts them to
// domain.ModelGateway.
//
// Non-standard reply fields such as "reasoning_content" are ignored; only the
// assistant "content" reaches the caller.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/canyon289/ai-agent-basics/internal/common"
)

const (
	completionsPath = "/v1/chat/completions"

	// Error bodies are read up to this size and clamped when reported.
	maxErrorBodyBytes = 64 << 10
	maxErrorRunes     = 300
)

// APIError is returned when the endpoint answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("model endpoint returned %d %s: %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// CompletionsClient sends non-streaming chat-completions requests.
type CompletionsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewCompletionsClient creates a client for baseURL. An empty apiKey sends no
// Authorization header; a nil httpClient falls back to http.DefaultClient.
func NewCompletionsClient(baseURL string, apiKey string, httpClient *http.Client) CompletionsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return CompletionsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Complete posts req and decodes the reply. Streaming is always disabled.
func (c CompletionsClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	if req.Model == "" {
		return CompletionResponse{}, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return CompletionResponse{}, errors.New("messages are required")
	}
	req.Stream = false

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return CompletionResponse{}, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to call model endpoint: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return CompletionResponse{}, readAPIError(resp)
	}

	var out CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to decode completion: %w", err)
	}
	return out, nil
}

func (c CompletionsClient) newRequest(ctx context.Context, body CompletionRequest) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, completionsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// readAPIError builds an APIError, preferring the OpenAI error envelope and
// falling back to the raw body.
func readAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope errorEnvelope
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = common.ClampRunes(strings.TrimSpace(string(raw)), maxErrorRunes)
	}
	if apiErr.Message == "" {
		apiErr.Message = "empty response body"
	}
	return apiErr
}
