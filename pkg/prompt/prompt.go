// Package prompt builds all LLM prompt text for the extraction and
// verification pipeline: the versioned claim-extraction prompts and the
// system/user messages of every verification operator. Everything here is
// stateless and safe for concurrent use — all state comes from parameters.
//
// Each operator's response contract (the JSON the model must emit) lives in
// the prompt text itself; the matching Go response structs live next to the
// operators that decode them.
package prompt

import (
	"log/slog"

	"github.com/credlens/pundit/pkg/config"
)

// Per-call output token budgets. Extraction dominates because it emits the
// full claim graph in one response; the operators return small JSON objects.
const (
	ExtractionMaxTokens         = 8000
	FactCheckMaxTokens          = 3000
	AuthorProfileMaxTokens      = 800
	LogicEvaluationMaxTokens    = 768
	ConclusionMonitorMaxTokens  = 768
	SolutionSimulationMaxTokens = 1024
	LogicRelationMaxTokens      = 1200
	RoleFitMaxTokens            = 512
	PostQualityMaxTokens        = 512
)

// ExtractionPrompt is one claim-extraction prompt family. Every version
// emits the identical JSON output contract; versions differ only in how much
// reasoning scaffolding precedes it.
type ExtractionPrompt interface {
	Version() config.PromptVersion
	System() string
	UserMessage(content, platform, author string) string
}

// ForVersion returns the extraction prompt for the given version. Unknown
// versions fall back to the basic prompt.
func ForVersion(v config.PromptVersion) ExtractionPrompt {
	switch v {
	case config.PromptVersionBasic:
		return basicPrompt{}
	case config.PromptVersionCoT:
		return cotPrompt{}
	case config.PromptVersionAdversarial:
		return adversarialPrompt{}
	default:
		slog.Warn("Unknown extraction prompt version, using basic", "version", v)
		return basicPrompt{}
	}
}

// basicPrompt is the default single-shot extraction prompt.
type basicPrompt struct{}

func (basicPrompt) Version() config.PromptVersion { return config.PromptVersionBasic }
func (basicPrompt) System() string                { return basicSystem }
func (basicPrompt) UserMessage(content, platform, author string) string {
	return buildUserMessage(content, platform, author, basicSteps)
}

// cotPrompt walks the model through explicit analysis questions before the
// JSON. Better on semantically muddled posts, at a higher token cost.
type cotPrompt struct{}

func (cotPrompt) Version() config.PromptVersion { return config.PromptVersionCoT }
func (cotPrompt) System() string                { return cotSystem }
func (cotPrompt) UserMessage(content, platform, author string) string {
	return buildUserMessage(content, platform, author, cotSteps)
}

// adversarialPrompt makes the model attack its own first-pass extraction
// before emitting the corrected result. Most accurate on verifiability
// judgements, most expensive.
type adversarialPrompt struct{}

func (adversarialPrompt) Version() config.PromptVersion { return config.PromptVersionAdversarial }
func (adversarialPrompt) System() string                { return adversarialSystem }
func (adversarialPrompt) UserMessage(content, platform, author string) string {
	return buildUserMessage(content, platform, author, adversarialSteps)
}
