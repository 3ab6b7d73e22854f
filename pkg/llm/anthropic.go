package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/credlens/pundit/pkg/config"
)

// anthropicBackend talks to the Anthropic Messages API.
type anthropicBackend struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature *float64
}

func newAnthropicBackend(prov *config.LLMProviderConfig, apiKey string) *anthropicBackend {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if prov.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(prov.BaseURL))
	}
	return &anthropicBackend{
		client:      anthropic.NewClient(opts...),
		model:       prov.Model,
		maxTokens:   prov.MaxOutputTokens,
		temperature: prov.Temperature,
	}
}

func (b *anthropicBackend) name() string { return "anthropic/" + b.model }

func (b *anthropicBackend) complete(ctx context.Context, system, user string, maxTokens int) (*Result, error) {
	params := b.baseParams(system, maxTokens)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
	}
	return b.send(ctx, params)
}

func (b *anthropicBackend) completeVision(ctx context.Context, system, user, imageURL string, maxTokens int) (*Result, error) {
	params := b.baseParams(system, maxTokens)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(
			anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: imageURL}),
			anthropic.NewTextBlock(user),
		),
	}
	return b.send(ctx, params)
}

func (b *anthropicBackend) baseParams(system string, maxTokens int) anthropic.MessageNewParams {
	limit := maxTokens
	if limit <= 0 {
		limit = b.maxTokens
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(limit),
		System:    []anthropic.TextBlockParam{{Text: system}},
	}
	if b.temperature != nil {
		params.Temperature = anthropic.Float(*b.temperature)
	}
	return params
}

func (b *anthropicBackend) send(ctx context.Context, params anthropic.MessageNewParams) (*Result, error) {
	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic message: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &Result{
		Content:      sb.String(),
		Model:        string(msg.Model),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}
