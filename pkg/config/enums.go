package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is the OpenAI API, or any OpenAI-compatible
	// endpoint selected via base_url (vLLM, Ollama, DeepSeek, etc.)
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is the Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	return t == LLMProviderTypeOpenAI || t == LLMProviderTypeAnthropic
}

// PromptVersion selects which extraction prompt family the pipeline uses.
type PromptVersion string

const (
	// PromptVersionBasic is the single-shot extraction prompt
	PromptVersionBasic PromptVersion = "v1"
	// PromptVersionCoT adds explicit chain-of-thought scaffolding
	PromptVersionCoT PromptVersion = "v2_cot"
	// PromptVersionAdversarial adds a self-critique pass
	PromptVersionAdversarial PromptVersion = "v3_adversarial"
)

// IsValid checks if the prompt version is valid
func (p PromptVersion) IsValid() bool {
	switch p {
	case PromptVersionBasic, PromptVersionCoT, PromptVersionAdversarial:
		return true
	default:
		return false
	}
}

// SearchProviderType defines supported web search providers
type SearchProviderType string

const (
	// SearchProviderTavily is the Tavily search API
	SearchProviderTavily SearchProviderType = "tavily"
)

// IsValid checks if the search provider type is valid
func (t SearchProviderType) IsValid() bool {
	return t == SearchProviderTavily
}
