package config

import (
	"sync"
	"time"
)

// BuiltinConfig holds all built-in configuration data: default LLM providers
// and the registry of authoritative data sources the verifier knows how to
// query. User YAML overrides entries by name.
type BuiltinConfig struct {
	LLMProviders map[string]LLMProviderConfig
	DataSources  map[string]DataSourceConfig

	DefaultLLMProvider    string
	DefaultVisionProvider string
	DefaultASRProvider    string
	DefaultPromptVersion  PromptVersion
	DefaultFetchInterval  int // minutes
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:          initBuiltinLLMProviders(),
		DataSources:           initBuiltinDataSources(),
		DefaultLLMProvider:    "openai-default",
		DefaultVisionProvider: "openai-vision",
		DefaultASRProvider:    "whisper-default",
		DefaultPromptVersion:  PromptVersionBasic,
		DefaultFetchInterval:  60,
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:            LLMProviderTypeOpenAI,
			Model:           "gpt-4o",
			APIKeyEnv:       "OPENAI_API_KEY",
			MaxOutputTokens: 4096,
		},
		"openai-vision": {
			Type:            LLMProviderTypeOpenAI,
			Model:           "gpt-4o",
			APIKeyEnv:       "OPENAI_API_KEY",
			MaxOutputTokens: 1024,
		},
		"anthropic-default": {
			Type:            LLMProviderTypeAnthropic,
			Model:           "claude-sonnet-4-5",
			APIKeyEnv:       "ANTHROPIC_API_KEY",
			MaxOutputTokens: 4096,
		},
		"whisper-default": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "whisper-1",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
}

func initBuiltinDataSources() map[string]DataSourceConfig {
	return map[string]DataSourceConfig{
		"fred": {
			BaseURL:   "https://api.stlouisfed.org/fred",
			APIKeyEnv: "FRED_API_KEY",
			CacheTTL:  1 * time.Hour,
			Timeout:   20 * time.Second,
		},
		"bls": {
			BaseURL:   "https://api.bls.gov/publicAPI/v2",
			APIKeyEnv: "BLS_API_KEY", // optional; raises the rate limit
			CacheTTL:  1 * time.Hour,
			Timeout:   20 * time.Second,
		},
		"world_bank": {
			BaseURL:  "https://api.worldbank.org/v2",
			CacheTTL: 6 * time.Hour,
			Timeout:  20 * time.Second,
		},
		"imf": {
			BaseURL:  "https://www.imf.org/external/datamapper/api/v1",
			CacheTTL: 6 * time.Hour,
			Timeout:  20 * time.Second,
		},
		"federal_register": {
			BaseURL:  "https://www.federalregister.gov/api/v1",
			CacheTTL: 1 * time.Hour,
			Timeout:  20 * time.Second,
		},
		"usitc": {
			BaseURL:  "https://hts.usitc.gov/reststop",
			CacheTTL: 12 * time.Hour,
			Timeout:  20 * time.Second,
		},
		"china_macro": {
			Disabled: true,
			Note:     "no public REST API; NBS/PBOC series need a licensed feed",
		},
	}
}
