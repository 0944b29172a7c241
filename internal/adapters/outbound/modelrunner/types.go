package modelrunner

// Message roles understood by chat-completions endpoints.
const (
	ROLE_USER      = "user"
	ROLE_ASSISTANT = "assistant"
)

// CompletionRequest is the body of POST /v1/chat/completions.
// Each turn sends a single user message, so only the fields the gateway sets are modelled.
type CompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []CompletionMessage `json:"messages"`
	Stream      bool                `json:"stream"`
	Temperature *float64            `json:"temperature,omitempty"`
}

// CompletionMessage is one chat message, sent or received.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResponse is the non-streaming reply of the endpoint.
type CompletionResponse struct {
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   *CompletionUsage   `json:"usage"`
}

// FirstContent returns the content of the first choice, if any.
func (r CompletionResponse) FirstContent() (string, bool) {
	if len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

type CompletionChoice struct {
	FinishReason string            `json:"finish_reason"`
	Message      CompletionMessage `json:"message"`
}

type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// errorEnvelope is the OpenAI-style error body: {"error":{"message":"..."}}.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
