package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// turnErr is the base of the errors that abort a single chat turn.
type turnErr struct {
	stage string
	cause error
}

// Error returns the stage that failed followed by the cause.
func (e turnErr) Error() string {
	if e.cause == nil {
		return e.stage
	}
	return e.stage + ": " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e turnErr) Unwrap() error {
	return e.cause
}

func newTurnErr(stage string, cause error) turnErr {
	return turnErr{stage: stage, cause: cause}
}

// CapabilityDiscoveryErr is returned when listing tools or prompts fails.
type CapabilityDiscoveryErr struct {
	turnErr
}

// NewCapabilityDiscoveryErr wraps cause in a CapabilityDiscoveryErr.
func NewCapabilityDiscoveryErr(cause error) *CapabilityDiscoveryErr {
	return &CapabilityDiscoveryErr{newTurnErr("capability discovery failed", cause)}
}

// PromptRetrievalErr is returned when a prompt template cannot be rendered.
type PromptRetrievalErr struct {
	turnErr
	PromptName string
}

// NewPromptRetrievalErr wraps cause in a PromptRetrievalErr for the named prompt.
func NewPromptRetrievalErr(promptName string, cause error) *PromptRetrievalErr {
	return &PromptRetrievalErr{
		turnErr:    newTurnErr("failed to retrieve prompt "+promptName, cause),
		PromptName: promptName,
	}
}

// ModelCallErr is returned when the model endpoint fails or returns an unusable response.
type ModelCallErr struct {
	turnErr
}

// NewModelCallErr wraps cause in a ModelCallErr.
func NewModelCallErr(cause error) *ModelCallErr {
	return &ModelCallErr{newTurnErr("model call failed", cause)}
}

// ToolInvocationParseErr is returned when model output carries a tool call that cannot be decoded.
type ToolInvocationParseErr struct {
	turnErr
}

// NewToolInvocationParseErr wraps cause in a ToolInvocationParseErr.
func NewToolInvocationParseErr(cause error) *ToolInvocationParseErr {
	return &ToolInvocationParseErr{newTurnErr("failed to parse tool invocation", cause)}
}

// ToolInvocationErr is returned when a tool is rejected before the call or fails during it.
type ToolInvocationErr struct {
	turnErr
	ToolName string
}

// NewToolInvocationErr wraps cause in a ToolInvocationErr for the named tool.
func NewToolInvocationErr(toolName string, cause error) *ToolInvocationErr {
	return &ToolInvocationErr{
		turnErr:  newTurnErr("tool "+toolName+" invocation failed", cause),
		ToolName: toolName,
	}
}

// TurnErrorKind returns a short label for the turn error kind, used in metrics and logs.
func TurnErrorKind(err error) string {
	var (
		capabilityErr *CapabilityDiscoveryErr
		promptErr     *PromptRetrievalErr
		modelErr      *ModelCallErr
		parseErr      *ToolInvocationParseErr
		toolErr       *ToolInvocationErr
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &capabilityErr):
		return "capability_discovery"
	case errors.As(err, &promptErr):
		return "prompt_retrieval"
	case errors.As(err, &modelErr):
		return "model_call"
	case errors.As(err, &parseErr):
		return "tool_invocation_parse"
	case errors.As(err, &toolErr):
		return "tool_invocation"
	default:
		return "unknown"
	}
}
