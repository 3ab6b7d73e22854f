package config

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own.
type Defaults struct {
	// Named LLM provider used for extraction and pipeline evaluators
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Named provider used for image descriptions (vision-capable model)
	VisionProvider string `yaml:"vision_provider,omitempty"`

	// Named provider used for audio transcription
	ASRProvider string `yaml:"asr_provider,omitempty"`

	// Extraction prompt family
	PromptVersion PromptVersion `yaml:"prompt_version,omitempty"`

	// Polling interval for newly registered monitored sources, in minutes
	FetchIntervalMinutes int `yaml:"fetch_interval_minutes,omitempty"`
}
