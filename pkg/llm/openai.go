package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/credlens/pundit/pkg/config"
)

// openaiBackend talks to the OpenAI API or any OpenAI-compatible server
// (vLLM, Ollama, DeepSeek, DashScope) selected via base_url.
type openaiBackend struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature *float64
}

func newOpenAIBackend(prov *config.LLMProviderConfig, apiKey string) *openaiBackend {
	clientCfg := openai.DefaultConfig(apiKey)
	if prov.BaseURL != "" {
		clientCfg.BaseURL = prov.BaseURL
	}
	return &openaiBackend{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       prov.Model,
		maxTokens:   prov.MaxOutputTokens,
		temperature: prov.Temperature,
	}
}

func (b *openaiBackend) name() string { return "openai/" + b.model }

func (b *openaiBackend) complete(ctx context.Context, system, user string, maxTokens int) (*Result, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: b.effectiveMaxTokens(maxTokens),
	}
	if b.temperature != nil {
		req.Temperature = float32(*b.temperature)
	}
	return b.send(ctx, req)
}

func (b *openaiBackend) completeVision(ctx context.Context, system, user, imageURL string, maxTokens int) (*Result, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
					{Type: openai.ChatMessagePartTypeText, Text: user},
				},
			},
		},
		MaxTokens: b.effectiveMaxTokens(maxTokens),
	}
	if b.temperature != nil {
		req.Temperature = float32(*b.temperature)
	}
	return b.send(ctx, req)
}

func (b *openaiBackend) send(ctx context.Context, req openai.ChatCompletionRequest) (*Result, error) {
	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}
	return &Result{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}

func (b *openaiBackend) effectiveMaxTokens(requested int) int {
	if requested > 0 {
		return requested
	}
	return b.maxTokens
}

// whisperClient wraps the Whisper-compatible transcription endpoint.
type whisperClient struct {
	client *openai.Client
	model  string
}

// newWhisperClient returns nil when the provider has no API key; callers
// treat nil as capability-absent.
func newWhisperClient(prov *config.LLMProviderConfig) *whisperClient {
	apiKey := ""
	if prov.APIKeyEnv != "" {
		apiKey = strings.TrimSpace(os.Getenv(prov.APIKeyEnv))
	}
	if apiKey == "" {
		return nil
	}
	clientCfg := openai.DefaultConfig(apiKey)
	if prov.BaseURL != "" {
		clientCfg.BaseURL = prov.BaseURL
	}
	model := prov.Model
	if model == "" {
		model = openai.Whisper1
	}
	return &whisperClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (w *whisperClient) transcribe(ctx context.Context, path, language string) (string, error) {
	req := openai.AudioRequest{
		Model:    w.model,
		FilePath: path,
		Language: language,
	}
	resp, err := w.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
