// Package llm routes completions, image descriptions, and audio
// transcription to the configured model providers. Every method returns an
// error on transport failure; callers treat that as a transient skip and
// leave the work item eligible for the next pass.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/credlens/pundit/pkg/config"
)

// ErrNotConfigured marks a capability whose provider has no API key. Callers
// degrade (skip transcription, skip image description) instead of failing.
var ErrNotConfigured = errors.New("llm: capability not configured")

// Result is one model completion.
type Result struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
}

// backend abstracts one chat-capable provider.
type backend interface {
	complete(ctx context.Context, system, user string, maxTokens int) (*Result, error)
	completeVision(ctx context.Context, system, user, imageURL string, maxTokens int) (*Result, error)
	name() string
}

// Gateway is the process-wide LLM client. Construct once with NewGateway and
// share; it is safe for concurrent use.
type Gateway struct {
	text        backend
	vision      backend
	transcriber *whisperClient // nil when no ASR key is available
	logger      *slog.Logger
}

// NewGateway resolves the default text, vision, and ASR providers from
// configuration. A missing text-provider key is a configuration error; a
// missing vision key falls back to the text backend (both backends accept
// image URLs); a missing ASR key leaves transcription unconfigured.
func NewGateway(cfg *config.Config) (*Gateway, error) {
	textProv, err := cfg.ExtractionProvider()
	if err != nil {
		return nil, fmt.Errorf("resolving LLM provider: %w", err)
	}
	text, err := newBackend(textProv)
	if err != nil {
		return nil, fmt.Errorf("LLM provider %q: %w", cfg.Defaults.LLMProvider, err)
	}

	logger := slog.Default().With("component", "llm")

	vision := text
	if visionProv, err := cfg.VisionProvider(); err == nil {
		if vb, err := newBackend(visionProv); err == nil {
			vision = vb
		} else {
			logger.Warn("Vision provider unavailable, falling back to text provider",
				"provider", cfg.Defaults.VisionProvider, "error", err)
		}
	}

	var transcriber *whisperClient
	if asrProv, err := cfg.ASRProvider(); err == nil {
		transcriber = newWhisperClient(asrProv)
		if transcriber == nil {
			logger.Info("Audio transcription not configured, will skip",
				"provider", cfg.Defaults.ASRProvider)
		}
	}

	logger.Info("LLM gateway ready",
		"text_backend", text.name(),
		"vision_backend", vision.name(),
		"asr_configured", transcriber != nil)

	return &Gateway{
		text:        text,
		vision:      vision,
		transcriber: transcriber,
		logger:      logger,
	}, nil
}

func newBackend(prov *config.LLMProviderConfig) (backend, error) {
	apiKey := ""
	if prov.APIKeyEnv != "" {
		apiKey = os.Getenv(prov.APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrNotConfigured, prov.APIKeyEnv)
	}

	switch prov.Type {
	case config.LLMProviderTypeOpenAI:
		return newOpenAIBackend(prov, apiKey), nil
	case config.LLMProviderTypeAnthropic:
		return newAnthropicBackend(prov, apiKey), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", prov.Type)
	}
}

// Complete sends a system+user prompt to the text provider. A maxTokens of 0
// uses the provider's configured limit.
func (g *Gateway) Complete(ctx context.Context, system, user string, maxTokens int) (*Result, error) {
	res, err := g.text.complete(ctx, system, user, maxTokens)
	if err != nil {
		g.logger.Error("LLM completion failed", "backend", g.text.name(), "error", err)
		return nil, err
	}
	return res, nil
}

// CompleteVision sends an image URL plus a prompt to the vision provider.
func (g *Gateway) CompleteVision(ctx context.Context, system, user, imageURL string, maxTokens int) (*Result, error) {
	res, err := g.vision.completeVision(ctx, system, user, imageURL, maxTokens)
	if err != nil {
		g.logger.Error("Vision completion failed", "backend", g.vision.name(), "error", err)
		return nil, err
	}
	return res, nil
}

// TranscribeAudio converts a local audio file (mp3/m4a/webm/wav) to text
// through a Whisper-compatible endpoint. An empty language auto-detects.
// Returns ErrNotConfigured when no ASR key is available.
func (g *Gateway) TranscribeAudio(ctx context.Context, path, language string) (string, error) {
	if g.transcriber == nil {
		return "", ErrNotConfigured
	}
	text, err := g.transcriber.transcribe(ctx, path, language)
	if err != nil {
		g.logger.Error("Audio transcription failed", "path", path, "error", err)
		return "", err
	}
	g.logger.Debug("Audio transcribed", "path", path, "chars", len(text))
	return text, nil
}
