package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicOracle implements Oracle on the Anthropic Messages API.
type AnthropicOracle struct {
	client    sdk.Client
	model     string
	maxTokens int
}

// NewAnthropicOracle creates an oracle for the given model. The API key is
// read from ANTHROPIC_API_KEY unless provided explicitly.
func NewAnthropicOracle(apiKey, model string, maxTokens int) (*AnthropicOracle, error) {
	if model == "" {
		return nil, errors.New("anthropic oracle: model is required")
	}
	if maxTokens <= 0 {
		return nil, errors.New("anthropic oracle: max_tokens must be positive")
	}

	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AnthropicOracle{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Complete issues a non-streaming Messages.New call and concatenates the
// text blocks of the response.
func (o *AnthropicOracle) Complete(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = o.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(o.model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := o.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic oracle: response contained no text")
	}
	return sb.String(), nil
}
