package usecases

import (
	"context"
	"time"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("usecases")
	ChatTurns        metric.Int64Counter
	ChatTurnDuration metric.Float64Histogram
	ToolInvocations  metric.Int64Counter
	LLMTokensUsed    metric.Int64Counter
)

func init() {
	var err error
	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Chat turns processed, by branch and outcome"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurnDuration, err = meter.Float64Histogram(
		"chat_turn_duration_seconds",
		metric.WithDescription("Duration of a chat turn, including model and tool calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Tool invocations issued through the tool session"),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordChatTurn records the outcome and duration of a chat turn.
func RecordChatTurn(ctx context.Context, branch string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = domain.TurnErrorKind(err)
	}
	attrs := metric.WithAttributes(
		attribute.String("branch", branch),
		attribute.String("outcome", outcome),
	)
	ChatTurns.Add(ctx, 1, attrs)
	ChatTurnDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordToolInvocation records a tool invocation and whether it succeeded.
func RecordToolInvocation(ctx context.Context, toolName string, err error) {
	ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.Bool("success", err == nil),
	))
}

// RecordLLMTokensUsed records the number of tokens used in a model call.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}
