package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	// Required for the default providers referenced by defaults
	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.NotNil(t, cfg.LLMProviderRegistry)
	assert.NotNil(t, cfg.DataSourceRegistry)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Scheduler)
	assert.NotNil(t, cfg.Search)
	assert.NotNil(t, cfg.Monitoring)

	// Built-in configs are loaded
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-default"))
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic-default"))
	assert.True(t, cfg.DataSourceRegistry.Has("fred"))
	assert.True(t, cfg.DataSourceRegistry.Has("world_bank"))

	stats := cfg.Stats()
	assert.Greater(t, stats.LLMProviders, 0)
	assert.Greater(t, stats.DataSources, 0)
}

func TestInitializeMissingFilesUsesBuiltins(t *testing.T) {
	// Empty directory: both YAML files absent
	configDir := t.TempDir()

	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-default"))
	assert.Equal(t, "openai-default", cfg.Defaults.LLMProvider)
	assert.Equal(t, PromptVersionBasic, cfg.Defaults.PromptVersion)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `defaults: [nope`
	err := os.WriteFile(filepath.Join(configDir, "pundit.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Defaults reference a provider that does not exist
	invalidConfig := `
defaults:
  llm_provider: "nonexistent-provider"
`
	err := os.WriteFile(filepath.Join(configDir, "pundit.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "nonexistent-provider")
}

func TestLoadPunditYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  http_addr: ":9090"
  search:
    max_results: 3
  monitoring:
    default_window_days: 30

defaults:
  llm_provider: "anthropic-default"
  prompt_version: "v2_cot"

scheduler:
  interval: "2m"
  post_batch_size: 5

data_sources:
  fred:
    api_key_env: "MY_FRED_KEY"
`
	err := os.WriteFile(filepath.Join(configDir, "pundit.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	punditConfig, err := loader.loadPunditYAML()

	require.NoError(t, err)
	require.NotNil(t, punditConfig.Defaults)
	assert.Equal(t, "anthropic-default", punditConfig.Defaults.LLMProvider)
	assert.Equal(t, PromptVersionCoT, punditConfig.Defaults.PromptVersion)
	require.NotNil(t, punditConfig.System)
	assert.Equal(t, ":9090", punditConfig.System.HTTPAddr)
	require.NotNil(t, punditConfig.Scheduler)
	assert.Equal(t, "2m", punditConfig.Scheduler.Interval)
	assert.Equal(t, 5, punditConfig.Scheduler.PostBatchSize)
	assert.Len(t, punditConfig.DataSources, 1)
	assert.Equal(t, "MY_FRED_KEY", punditConfig.DataSources["fred"].APIKeyEnv)
}

func TestLoadLLMProvidersYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm_providers:
  local-vllm:
    type: openai
    model: qwen3-32b
    api_key_env: LOCAL_LLM_KEY
    base_url: http://localhost:8000/v1
    max_output_tokens: 8192
`
	err := os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	providers, err := loader.loadLLMProvidersYAML()

	require.NoError(t, err)
	assert.Len(t, providers, 1)
	provider := providers["local-vllm"]
	assert.Equal(t, LLMProviderTypeOpenAI, provider.Type)
	assert.Equal(t, "qwen3-32b", provider.Model)
	assert.Equal(t, "LOCAL_LLM_KEY", provider.APIKeyEnv)
	assert.Equal(t, "http://localhost:8000/v1", provider.BaseURL)
	assert.Equal(t, 8192, provider.MaxOutputTokens)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm_providers:
  custom:
    type: openai
    model: "{{.TEST_MODEL}}"
    base_url: "{{.TEST_BASE_URL}}"
`
	err := os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_MODEL", "gpt-4o-mini")
	t.Setenv("TEST_BASE_URL", "https://llm.internal:8443/v1")
	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	provider, err := cfg.LLMProviderRegistry.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", provider.Model)
	assert.Equal(t, "https://llm.internal:8443/v1", provider.BaseURL)
}

func TestResolveSchedulerConfig(t *testing.T) {
	t.Run("nil yields defaults", func(t *testing.T) {
		cfg, err := resolveSchedulerConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultSchedulerConfig(), cfg)
	})

	t.Run("partial override keeps other defaults", func(t *testing.T) {
		cfg, err := resolveSchedulerConfig(&SchedulerYAMLConfig{
			Interval:      "90s",
			PostBatchSize: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.Interval)
		assert.Equal(t, 3, cfg.PostBatchSize)
		assert.Equal(t, DefaultSchedulerConfig().FactBatchSize, cfg.FactBatchSize)
		assert.Equal(t, DefaultSchedulerConfig().OperatorTimeout, cfg.OperatorTimeout)
	})

	t.Run("invalid duration rejected", func(t *testing.T) {
		_, err := resolveSchedulerConfig(&SchedulerYAMLConfig{Interval: "five minutes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interval")
	})
}

func TestResolveDataSourcesPartialOverride(t *testing.T) {
	resolved, err := resolveDataSources(map[string]DataSourceYAMLConfig{
		"fred": {APIKeyEnv: "CUSTOM_FRED_KEY"},
	})
	require.NoError(t, err)

	fred := resolved["fred"]
	assert.Equal(t, "CUSTOM_FRED_KEY", fred.APIKeyEnv)
	// Endpoint and TTL fall back to the built-in entry
	assert.Equal(t, GetBuiltinConfig().DataSources["fred"].BaseURL, fred.BaseURL)
	assert.Equal(t, GetBuiltinConfig().DataSources["fred"].CacheTTL, fred.CacheTTL)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	punditYAML := `
defaults:
  llm_provider: "openai-default"
`
	err := os.WriteFile(filepath.Join(dir, "pundit.yaml"), []byte(punditYAML), 0644)
	require.NoError(t, err)

	llmYAML := `
llm_providers: {}
`
	err = os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0644)
	require.NoError(t, err)

	return dir
}
