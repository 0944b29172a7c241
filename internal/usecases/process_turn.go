package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/canyon289/ai-agent-basics/internal/common"
	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Prompt templates served by the tool session.
	DEFAULT_SYSTEM_PROMPT_NAME   = "weather_prompt"
	DEFAULT_RESPONSE_PROMPT_NAME = "weather_response_prompt"

	// Arguments of the follow-up prompt.
	RESPONSE_PROMPT_CITY_ARG    = "city"
	RESPONSE_PROMPT_WEATHER_ARG = "weather"

	TURN_BRANCH_DIRECT = "direct"
	TURN_BRANCH_TOOL   = "tool"

	// Keep log lines readable when the model is verbose.
	MAX_LOGGED_TEXT_RUNES = 400
)

// ProcessTurn defines the interface for answering a single user turn.
type ProcessTurn interface {
	// Execute answers the user turn, calling at most one tool on the way.
	Execute(ctx context.Context, turn domain.UserTurn) (string, error)
}

// TurnPrompts names the prompt templates used during a turn.
type TurnPrompts struct {
	// System is rendered without arguments and prepended to the user text.
	System string
	// Response is rendered with the tool result and sent to the model as-is.
	Response string
}

// ProcessTurnImpl is the implementation of ProcessTurn.
type ProcessTurnImpl struct {
	session domain.ToolSession
	model   domain.ModelGateway
	parser  domain.ResponseParser
	prompts TurnPrompts
	logger  *log.Logger
}

// NewProcessTurnImpl creates a new instance of ProcessTurnImpl.
func NewProcessTurnImpl(
	session domain.ToolSession,
	model domain.ModelGateway,
	parser domain.ResponseParser,
	prompts TurnPrompts,
	logger *log.Logger,
) ProcessTurnImpl {
	if prompts.System == "" {
		prompts.System = DEFAULT_SYSTEM_PROMPT_NAME
	}
	if prompts.Response == "" {
		prompts.Response = DEFAULT_RESPONSE_PROMPT_NAME
	}
	return ProcessTurnImpl{
		session: session,
		model:   model,
		parser:  parser,
		prompts: prompts,
		logger:  logger,
	}
}

// Execute runs one turn: discover capabilities, ask the model, and either return
// its direct answer or run the requested tool and ask the model again with the result.
func (pt ProcessTurnImpl) Execute(ctx context.Context, turn domain.UserTurn) (answer string, err error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("turn.id", turn.ID.String()),
	))
	defer span.End()

	started := time.Now()
	branch := TURN_BRANCH_DIRECT
	defer func() {
		span.SetAttributes(attribute.String("turn.branch", branch))
		RecordChatTurn(spanCtx, branch, err, time.Since(started))
	}()

	pt.logger.Printf("ProcessTurn: user prompt is: %s", turn.Text)

	catalog, err := pt.discoverCapabilities(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	systemPrompt, err := pt.session.GetPrompt(spanCtx, pt.prompts.System, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", asPromptRetrievalErr(pt.prompts.System, err)
	}

	first, err := pt.generate(spanCtx, ComposePrompt(systemPrompt, turn.Text))
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	invocation, found, err := pt.parser.Extract(first.Text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", asToolInvocationParseErr(err)
	}
	if !found {
		pt.logger.Printf("ProcessTurn: no tool call")
		return first.Text, nil
	}

	branch = TURN_BRANCH_TOOL
	answer, err = pt.answerWithTool(spanCtx, catalog, invocation)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return answer, nil
}

// answerWithTool runs the tool branch of a turn and returns the model's final answer.
func (pt ProcessTurnImpl) answerWithTool(ctx context.Context, catalog domain.ToolCatalog, invocation domain.ToolInvocation) (string, error) {
	pt.logger.Printf("ProcessTurn: tool call %s with %v", invocation.ToolName, invocation.Arguments)

	if err := CheckToolInvocation(catalog, invocation); err != nil {
		return "", domain.NewToolInvocationErr(invocation.ToolName, err)
	}

	city, ok := invocation.Arguments[RESPONSE_PROMPT_CITY_ARG]
	if !ok {
		return "", domain.NewToolInvocationParseErr(
			fmt.Errorf("tool call payload is missing %q", RESPONSE_PROMPT_CITY_ARG),
		)
	}

	result, err := pt.session.InvokeTool(ctx, invocation.ToolName, invocation.Arguments)
	RecordToolInvocation(ctx, invocation.ToolName, err)
	if err != nil {
		return "", asToolInvocationErr(invocation.ToolName, err)
	}

	followUp, err := pt.session.GetPrompt(ctx, pt.prompts.Response, map[string]string{
		RESPONSE_PROMPT_CITY_ARG:    fmt.Sprint(city),
		RESPONSE_PROMPT_WEATHER_ARG: result.Text,
	})
	if err != nil {
		return "", asPromptRetrievalErr(pt.prompts.Response, err)
	}
	pt.logger.Printf("ProcessTurn: follow-up prompt is: %s", common.ClampRunes(followUp, MAX_LOGGED_TEXT_RUNES))

	second, err := pt.generate(ctx, followUp)
	if err != nil {
		return "", err
	}
	return second.Text, nil
}

// discoverCapabilities lists the tools and prompts exposed by the session.
// The prompt listing is only logged; the tool listing is kept for validation.
func (pt ProcessTurnImpl) discoverCapabilities(ctx context.Context) (domain.ToolCatalog, error) {
	tools, err := pt.session.ListTools(ctx)
	if err != nil {
		return nil, domain.NewCapabilityDiscoveryErr(fmt.Errorf("failed to list tools: %w", err))
	}
	prompts, err := pt.session.ListPrompts(ctx)
	if err != nil {
		return nil, domain.NewCapabilityDiscoveryErr(fmt.Errorf("failed to list prompts: %w", err))
	}

	summary, err := marshalCapabilities(tools, prompts)
	if err != nil {
		pt.logger.Printf("ProcessTurn: %v", err)
	} else {
		pt.logger.Printf("ProcessTurn: available capabilities:\n%s", summary)
	}

	return domain.ToolCatalog(tools), nil
}

// generate calls the model and records its token usage.
func (pt ProcessTurnImpl) generate(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	resp, err := pt.model.Generate(ctx, prompt)
	if err != nil {
		var modelErr *domain.ModelCallErr
		if errors.As(err, &modelErr) {
			return domain.ModelResponse{}, err
		}
		return domain.ModelResponse{}, domain.NewModelCallErr(err)
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	pt.logger.Printf("ProcessTurn: model response: %s", common.ClampRunes(resp.Text, MAX_LOGGED_TEXT_RUNES))
	return resp, nil
}

type capabilityTool struct {
	Name        string `toon:"name"`
	Description string `toon:"description"`
}

type capabilityPrompt struct {
	Name      string `toon:"name"`
	Arguments int    `toon:"arguments"`
}

type capabilitySummary struct {
	Tools   []capabilityTool   `toon:"tools"`
	Prompts []capabilityPrompt `toon:"prompts"`
}

// marshalCapabilities renders the tool and prompt listings as TOON for logging.
func marshalCapabilities(tools []domain.ToolDescriptor, prompts []domain.PromptDescriptor) (string, error) {
	summary := capabilitySummary{
		Tools:   make([]capabilityTool, 0, len(tools)),
		Prompts: make([]capabilityPrompt, 0, len(prompts)),
	}
	for _, t := range tools {
		summary.Tools = append(summary.Tools, capabilityTool{Name: t.Name, Description: t.Description})
	}
	for _, p := range prompts {
		summary.Prompts = append(summary.Prompts, capabilityPrompt{Name: p.Name, Arguments: len(p.Arguments)})
	}

	out, err := toon.MarshalString(summary, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal capabilities: %w", err)
	}
	return out, nil
}

func asPromptRetrievalErr(name string, err error) error {
	var promptErr *domain.PromptRetrievalErr
	if errors.As(err, &promptErr) {
		return err
	}
	return domain.NewPromptRetrievalErr(name, err)
}

func asToolInvocationErr(name string, err error) error {
	var toolErr *domain.ToolInvocationErr
	if errors.As(err, &toolErr) {
		return err
	}
	return domain.NewToolInvocationErr(name, err)
}

func asToolInvocationParseErr(err error) error {
	var parseErr *domain.ToolInvocationParseErr
	if errors.As(err, &parseErr) {
		return err
	}
	return domain.NewToolInvocationParseErr(err)
}

// InitProcessTurn initializes the ProcessTurn use case.
type InitProcessTurn struct {
	Session            domain.ToolSession    `resolve:""`
	Model              domain.ModelGateway   `resolve:""`
	Parser             domain.ResponseParser `resolve:""`
	Logger             *log.Logger           `resolve:""`
	SystemPromptName   string                `config:"SYSTEM_PROMPT_NAME" default:"weather_prompt"`
	ResponsePromptName string                `config:"RESPONSE_PROMPT_NAME" default:"weather_response_prompt"`
}

// Initialize registers ProcessTurn in the dependency container.
func (i InitProcessTurn) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessTurn](NewProcessTurnImpl(
		i.Session,
		i.Model,
		i.Parser,
		TurnPrompts{
			System:   i.SystemPromptName,
			Response: i.ResponsePromptName,
		},
		i.Logger,
	))
	return ctx, nil
}
