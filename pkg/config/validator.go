package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Providers first: defaults reference them
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateDataSources(); err != nil {
		return fmt.Errorf("data source validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	if err := v.validateSearch(); err != nil {
		return fmt.Errorf("search validation failed: %w", err)
	}

	if err := v.validateMonitoring(); err != nil {
		return fmt.Errorf("monitoring validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must be non-negative"))
		}

		if provider.Temperature != nil && (*provider.Temperature < 0 || *provider.Temperature > 2) {
			return NewValidationError("llm_provider", name, "temperature", fmt.Errorf("must be between 0 and 2"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDataSources() error {
	for sourceID, source := range v.cfg.DataSourceRegistry.GetAll() {
		if source.Disabled {
			continue
		}

		if source.BaseURL == "" {
			return NewValidationError("data_source", sourceID, "base_url", fmt.Errorf("base_url required for enabled source"))
		}

		if source.CacheTTL < 0 {
			return NewValidationError("data_source", sourceID, "cache_ttl", fmt.Errorf("must be non-negative"))
		}

		if source.Timeout < 0 {
			return NewValidationError("data_source", sourceID, "timeout", fmt.Errorf("must be non-negative"))
		}
	}

	return nil
}

// validateDefaults checks that the default provider names resolve, and that
// the API keys for the providers the system will actually call are present.
// Unreferenced providers only get shape checks so unused entries don't
// demand credentials.
func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	for field, name := range map[string]string{
		"llm_provider":    d.LLMProvider,
		"vision_provider": d.VisionProvider,
		"asr_provider":    d.ASRProvider,
	} {
		if name == "" {
			return NewValidationError("defaults", "defaults", field, ErrMissingRequiredField)
		}
		provider, err := v.cfg.LLMProviderRegistry.Get(name)
		if err != nil {
			return NewValidationError("defaults", "defaults", field, err)
		}
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env",
					fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}
	}

	if !d.PromptVersion.IsValid() {
		return NewValidationError("defaults", "defaults", "prompt_version", fmt.Errorf("invalid prompt version: %s", d.PromptVersion))
	}

	if d.FetchIntervalMinutes < 1 {
		return NewValidationError("defaults", "defaults", "fetch_interval_minutes", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	s := v.cfg.Scheduler

	if s.Interval <= 0 {
		return NewValidationError("scheduler", "scheduler", "interval", fmt.Errorf("must be positive"))
	}
	if s.PostBatchSize < 1 {
		return NewValidationError("scheduler", "scheduler", "post_batch_size", fmt.Errorf("must be at least 1"))
	}
	if s.FactBatchSize < 1 {
		return NewValidationError("scheduler", "scheduler", "fact_batch_size", fmt.Errorf("must be at least 1"))
	}
	if s.OperatorTimeout <= 0 {
		return NewValidationError("scheduler", "scheduler", "operator_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateSearch() error {
	s := v.cfg.Search

	if !s.Provider.IsValid() {
		return NewValidationError("search", "search", "provider", fmt.Errorf("invalid search provider: %s", s.Provider))
	}
	if s.MaxResults < 1 {
		return NewValidationError("search", "search", "max_results", fmt.Errorf("must be at least 1"))
	}

	// A missing search key is allowed: web verification degrades to
	// "unavailable" rather than blocking startup.
	return nil
}

func (v *ConfigValidator) validateMonitoring() error {
	m := v.cfg.Monitoring

	if m.DefaultWindowDays < 1 {
		return NewValidationError("monitoring", "monitoring", "default_window_days", fmt.Errorf("must be at least 1"))
	}
	if m.MaxWindowDays < m.DefaultWindowDays {
		return NewValidationError("monitoring", "monitoring", "max_window_days",
			fmt.Errorf("must be at least default_window_days (%d)", m.DefaultWindowDays))
	}

	return nil
}
