package agent

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Transport is the request/response channel to the hosted model. Given the
// full conversation and the exported tool definitions, it returns the next
// assistant message. Network, auth, and rate-limit failures all surface as
// a single error; the agent does not distinguish between them.
type Transport interface {
	Send(ctx context.Context, conversation []anthropic.MessageParam, tools []anthropic.ToolUnionParam) (*anthropic.Message, error)
}

// AnthropicTransport talks to the Anthropic Messages API.
type AnthropicTransport struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicTransport builds a transport for the given model. When apiKey
// is empty the SDK falls back to its own environment lookup.
func NewAnthropicTransport(apiKey, model string, maxTokens int) *AnthropicTransport {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AnthropicTransport{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.Model(model),
		maxTokens: int64(maxTokens),
	}
}

// Send performs a single, non-streaming Messages API call. No retries and
// no timeout: a failure is returned as-is and ends the run.
func (t *AnthropicTransport) Send(ctx context.Context, conversation []anthropic.MessageParam, tools []anthropic.ToolUnionParam) (*anthropic.Message, error) {
	return t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     t.model,
		MaxTokens: t.maxTokens,
		Messages:  conversation,
		Tools:     tools,
	})
}
