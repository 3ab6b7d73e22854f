package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig defines LLM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable name for API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint. For type "openai" this allows any
	// OpenAI-compatible server (vLLM, Ollama, DeepSeek).
	BaseURL string `yaml:"base_url,omitempty"`

	// Maximum tokens for completions (default applied by loader)
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty"`

	// Sampling temperature; nil means provider default
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
