// Package config loads and validates application configuration from YAML
// files with environment variable expansion, merged over built-in defaults.
package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults (provider selection, prompt version)
	Defaults *Defaults

	// Pipeline scheduler configuration
	Scheduler *SchedulerConfig

	// HTTP listen address for the API server
	HTTPAddr string

	// Web search configuration (verification fallback)
	Search *SearchConfig

	// Prediction monitoring window defaults
	Monitoring *MonitoringConfig

	// Media enrichment settings
	Media *MediaConfig

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
	DataSourceRegistry  *DataSourceRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
	DataSources  int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.DataSourceRegistry != nil {
		s.DataSources = c.DataSourceRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// GetDataSource retrieves a data source configuration by ID.
// This is a convenience method that wraps DataSourceRegistry.Get().
func (c *Config) GetDataSource(sourceID string) (*DataSourceConfig, error) {
	return c.DataSourceRegistry.Get(sourceID)
}

// ExtractionProvider returns the provider used for extraction and the
// pipeline's text evaluators.
func (c *Config) ExtractionProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.LLMProvider)
}

// VisionProvider returns the provider used for image descriptions.
func (c *Config) VisionProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.VisionProvider)
}

// ASRProvider returns the provider used for audio transcription.
func (c *Config) ASRProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.ASRProvider)
}

// AllDataSourceIDs returns all configured data source IDs.
func (c *Config) AllDataSourceIDs() []string {
	return c.DataSourceRegistry.SourceIDs()
}
