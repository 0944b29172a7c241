package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionsClient_Complete(t *testing.T) {
	tests := map[string]struct {
		req         CompletionRequest
		apiKey      string
		statusCode  int
		response    string
		expectErr   string
		expectedMsg string
		validateReq func(*testing.T, *http.Request, CompletionRequest)
	}{
		"success": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			statusCode:  http.StatusOK,
			response:    `{"choices":[{"message":{"role":"assistant","content":"Hello!"}}]}`,
			expectedMsg: "Hello!",
			validateReq: func(t *testing.T, r *http.Request, req CompletionRequest) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Empty(t, r.Header.Get("Authorization"))
				assert.False(t, req.Stream)
				assert.Equal(t, "gemma3:4b", req.Model)
			},
		},
		"bearer-token": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			apiKey:      "secret",
			statusCode:  http.StatusOK,
			response:    `{"choices":[{"message":{"content":"ok"}}]}`,
			expectedMsg: "ok",
			validateReq: func(t *testing.T, r *http.Request, req CompletionRequest) {
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			},
		},
		"missing-model": {
			req:       CompletionRequest{Messages: []CompletionMessage{{Role: "user", Content: "hi"}}},
			expectErr: "model is required",
		},
		"missing-messages": {
			req:       CompletionRequest{Model: "gemma3:4b"},
			expectErr: "messages are required",
		},
		"server-error": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusNotFound,
			response:   `model "gemma3:4b" not found`,
			expectErr:  `model endpoint returned 404 Not Found: model "gemma3:4b" not found`,
		},
		"error-envelope": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusUnauthorized,
			response:   `{"error":{"message":"invalid api key","type":"auth"}}`,
			expectErr:  "model endpoint returned 401 Unauthorized: invalid api key",
		},
		"empty-error-body": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusBadGateway,
			expectErr:  "model endpoint returned 502 Bad Gateway: empty response body",
		},
		"invalid-json": {
			req: CompletionRequest{
				Model:    "gemma3:4b",
				Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusOK,
			response:   `{invalid json}`,
			expectErr:  "failed to decode completion",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.validateReq != nil {
					var req CompletionRequest
					json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
					tt.validateReq(t, r, req)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewCompletionsClient(server.URL, tt.apiKey, server.Client())

			resp, err := client.Complete(context.Background(), tt.req)
			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, resp.Choices, 1)
			assert.Equal(t, tt.expectedMsg, resp.Choices[0].Message.Content)
		})
	}
}

func TestCompletionsClient_Complete_InvalidBaseURL(t *testing.T) {
	client := NewCompletionsClient("://bad", "", nil)

	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "gemma3:4b",
		Messages: []CompletionMessage{{Role: "user", Content: "hi"}},
	})
	assert.ErrorContains(t, err, "invalid base URL")
}

func TestCompletionsClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("  model is loading \n")) //nolint:errcheck
	}))
	defer server.Close()

	client := NewCompletionsClient(server.URL, "", server.Client())
	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "gemma3:4b",
		Messages: []CompletionMessage{{Role: ROLE_USER, Content: "hi"}},
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "model is loading", apiErr.Message)
}

func TestCompletionResponse_FirstContent(t *testing.T) {
	text, ok := CompletionResponse{}.FirstContent()
	assert.False(t, ok)
	assert.Empty(t, text)

	text, ok = CompletionResponse{Choices: []CompletionChoice{
		{Message: CompletionMessage{Role: ROLE_ASSISTANT, Content: "first"}},
		{Message: CompletionMessage{Role: ROLE_ASSISTANT, Content: "second"}},
	}}.FirstContent()
	assert.True(t, ok)
	assert.Equal(t, "first", text)
}
