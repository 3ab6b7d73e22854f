package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// PunditYAMLConfig represents the complete pundit.yaml file structure
type PunditYAMLConfig struct {
	System      *SystemYAMLConfig               `yaml:"system"`
	DataSources map[string]DataSourceYAMLConfig `yaml:"data_sources"`
	Defaults    *Defaults                       `yaml:"defaults"`
	Scheduler   *SchedulerYAMLConfig            `yaml:"scheduler"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	HTTPAddr   string                `yaml:"http_addr,omitempty"`
	Search     *SearchYAMLConfig     `yaml:"search,omitempty"`
	Monitoring *MonitoringYAMLConfig `yaml:"monitoring,omitempty"`
	Media      *MediaYAMLConfig      `yaml:"media,omitempty"`
}

// SearchYAMLConfig holds web search settings from YAML.
type SearchYAMLConfig struct {
	Provider   string `yaml:"provider,omitempty"`
	APIKeyEnv  string `yaml:"api_key_env,omitempty"`
	MaxResults int    `yaml:"max_results,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"` // Parsed to time.Duration
}

// MonitoringYAMLConfig holds prediction monitoring window settings from YAML.
type MonitoringYAMLConfig struct {
	DefaultWindowDays int `yaml:"default_window_days,omitempty"`
	MaxWindowDays     int `yaml:"max_window_days,omitempty"`
}

// MediaYAMLConfig holds media enrichment settings from YAML.
type MediaYAMLConfig struct {
	DescribeImages  *bool `yaml:"describe_images,omitempty"`
	TranscribeAudio *bool `yaml:"transcribe_audio,omitempty"`
	MaxItemsPerPost int   `yaml:"max_items_per_post,omitempty"`
}

// SchedulerYAMLConfig holds scheduler settings from YAML. Durations are
// strings ("5m", "30s") parsed during resolution.
type SchedulerYAMLConfig struct {
	Interval                string `yaml:"interval,omitempty"`
	InitialDelay            string `yaml:"initial_delay,omitempty"`
	PostBatchSize           int    `yaml:"post_batch_size,omitempty"`
	FactBatchSize           int    `yaml:"fact_batch_size,omitempty"`
	OperatorTimeout         string `yaml:"operator_timeout,omitempty"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout,omitempty"`
}

// DataSourceYAMLConfig holds data source settings from YAML.
type DataSourceYAMLConfig struct {
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	CacheTTL  string `yaml:"cache_ttl,omitempty"` // Parsed to time.Duration
	Timeout   string `yaml:"timeout,omitempty"`   // Parsed to time.Duration
	Disabled  *bool  `yaml:"disabled,omitempty"`
	Note      string `yaml:"note,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both optional; built-ins apply)
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"data_sources", stats.DataSources,
		"llm_provider", cfg.Defaults.LLMProvider,
		"prompt_version", cfg.Defaults.PromptVersion)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load pundit.yaml (system, data_sources, defaults, scheduler)
	punditConfig, err := loader.loadPunditYAML()
	if err != nil {
		return nil, NewLoadError("pundit.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	userSources, err := resolveDataSources(punditConfig.DataSources)
	if err != nil {
		return nil, err
	}
	dataSourcesMerged := mergeDataSources(builtin.DataSources, userSources)

	// 5. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)
	dataSourceRegistry := NewDataSourceRegistry(dataSourcesMerged)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := &Defaults{
		LLMProvider:          builtin.DefaultLLMProvider,
		VisionProvider:       builtin.DefaultVisionProvider,
		ASRProvider:          builtin.DefaultASRProvider,
		PromptVersion:        builtin.DefaultPromptVersion,
		FetchIntervalMinutes: builtin.DefaultFetchInterval,
	}
	if punditConfig.Defaults != nil {
		if err := mergo.Merge(defaults, punditConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	// 7. Resolve scheduler config (merge user YAML with built-in defaults)
	schedulerConfig, err := resolveSchedulerConfig(punditConfig.Scheduler)
	if err != nil {
		return nil, err
	}

	// 8. Resolve system config (HTTP + search + monitoring + media)
	httpAddr := resolveHTTPAddr(punditConfig.System)
	searchCfg := resolveSearchConfig(punditConfig.System)
	monitoringCfg := resolveMonitoringConfig(punditConfig.System)
	mediaCfg := resolveMediaConfig(punditConfig.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Scheduler:           schedulerConfig,
		HTTPAddr:            httpAddr,
		Search:              searchCfg,
		Monitoring:          monitoringCfg,
		Media:               mediaCfg,
		LLMProviderRegistry: llmProviderRegistry,
		DataSourceRegistry:  dataSourceRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadPunditYAML loads pundit.yaml. A missing file is tolerated: built-in
// defaults cover a bare installation.
func (l *configLoader) loadPunditYAML() (*PunditYAMLConfig, error) {
	var config PunditYAMLConfig

	config.DataSources = make(map[string]DataSourceYAMLConfig)

	if err := l.loadYAML("pundit.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("pundit.yaml not present, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadLLMProvidersYAML loads llm-providers.yaml. A missing file is
// tolerated: the built-in providers remain available.
func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("llm-providers.yaml not present, using built-in providers")
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveDataSources converts YAML data source entries (string durations)
// into resolved configs.
func resolveDataSources(yamlSources map[string]DataSourceYAMLConfig) (map[string]DataSourceConfig, error) {
	result := make(map[string]DataSourceConfig, len(yamlSources))

	for id, ys := range yamlSources {
		cfg := DataSourceConfig{
			BaseURL:   ys.BaseURL,
			APIKeyEnv: ys.APIKeyEnv,
			Note:      ys.Note,
		}
		if ys.Disabled != nil {
			cfg.Disabled = *ys.Disabled
		}
		if ys.CacheTTL != "" {
			d, err := time.ParseDuration(ys.CacheTTL)
			if err != nil {
				return nil, NewValidationError("data_source", id, "cache_ttl", fmt.Errorf("%w: %v", ErrInvalidValue, err))
			}
			cfg.CacheTTL = d
		}
		if ys.Timeout != "" {
			d, err := time.ParseDuration(ys.Timeout)
			if err != nil {
				return nil, NewValidationError("data_source", id, "timeout", fmt.Errorf("%w: %v", ErrInvalidValue, err))
			}
			cfg.Timeout = d
		}

		// Fall back to the built-in entry's endpoint and TTLs for partial
		// overrides (e.g. only swapping the API key env var).
		if base, ok := GetBuiltinConfig().DataSources[id]; ok {
			if cfg.BaseURL == "" {
				cfg.BaseURL = base.BaseURL
			}
			if cfg.APIKeyEnv == "" {
				cfg.APIKeyEnv = base.APIKeyEnv
			}
			if cfg.CacheTTL == 0 {
				cfg.CacheTTL = base.CacheTTL
			}
			if cfg.Timeout == 0 {
				cfg.Timeout = base.Timeout
			}
		}

		result[id] = cfg
	}

	return result, nil
}

// resolveSchedulerConfig resolves scheduler configuration from YAML,
// applying built-in defaults for unset values.
func resolveSchedulerConfig(ys *SchedulerYAMLConfig) (*SchedulerConfig, error) {
	cfg := DefaultSchedulerConfig()
	if ys == nil {
		return cfg, nil
	}

	parsed := &SchedulerConfig{
		PostBatchSize: ys.PostBatchSize,
		FactBatchSize: ys.FactBatchSize,
	}

	var err error
	if parsed.Interval, err = parseOptionalDuration(ys.Interval); err != nil {
		return nil, NewValidationError("scheduler", "scheduler", "interval", err)
	}
	if parsed.InitialDelay, err = parseOptionalDuration(ys.InitialDelay); err != nil {
		return nil, NewValidationError("scheduler", "scheduler", "initial_delay", err)
	}
	if parsed.OperatorTimeout, err = parseOptionalDuration(ys.OperatorTimeout); err != nil {
		return nil, NewValidationError("scheduler", "scheduler", "operator_timeout", err)
	}
	if parsed.GracefulShutdownTimeout, err = parseOptionalDuration(ys.GracefulShutdownTimeout); err != nil {
		return nil, NewValidationError("scheduler", "scheduler", "graceful_shutdown_timeout", err)
	}

	// Non-zero user values override defaults
	if err := mergo.Merge(cfg, parsed, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
	}

	return cfg, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return d, nil
}

// resolveHTTPAddr resolves the HTTP listen address, applying the default.
func resolveHTTPAddr(sys *SystemYAMLConfig) string {
	if sys != nil && sys.HTTPAddr != "" {
		return sys.HTTPAddr
	}
	return ":8080"
}

// resolveSearchConfig resolves web search configuration from system YAML, applying defaults.
func resolveSearchConfig(sys *SystemYAMLConfig) *SearchConfig {
	cfg := &SearchConfig{
		Provider:   SearchProviderTavily,
		APIKeyEnv:  "TAVILY_API_KEY",
		MaxResults: 5,
		Timeout:    15 * time.Second,
	}

	if sys == nil || sys.Search == nil {
		return cfg
	}

	s := sys.Search
	if s.Provider != "" {
		cfg.Provider = SearchProviderType(s.Provider)
	}
	if s.APIKeyEnv != "" {
		cfg.APIKeyEnv = s.APIKeyEnv
	}
	if s.MaxResults > 0 {
		cfg.MaxResults = s.MaxResults
	}
	if s.Timeout != "" {
		if d, err := time.ParseDuration(s.Timeout); err == nil {
			cfg.Timeout = d
		} else {
			slog.Warn("Invalid timeout in search config, using default",
				"value", s.Timeout,
				"default", cfg.Timeout,
				"error", err)
		}
	}

	return cfg
}

// resolveMonitoringConfig resolves monitoring window configuration, applying defaults.
func resolveMonitoringConfig(sys *SystemYAMLConfig) *MonitoringConfig {
	cfg := &MonitoringConfig{
		DefaultWindowDays: 90,
		MaxWindowDays:     365,
	}

	if sys == nil || sys.Monitoring == nil {
		return cfg
	}

	m := sys.Monitoring
	if m.DefaultWindowDays > 0 {
		cfg.DefaultWindowDays = m.DefaultWindowDays
	}
	if m.MaxWindowDays > 0 {
		cfg.MaxWindowDays = m.MaxWindowDays
	}

	return cfg
}

// resolveMediaConfig resolves media enrichment configuration, applying defaults.
func resolveMediaConfig(sys *SystemYAMLConfig) *MediaConfig {
	cfg := &MediaConfig{
		DescribeImages:  true,
		TranscribeAudio: true,
		MaxItemsPerPost: 4,
	}

	if sys == nil || sys.Media == nil {
		return cfg
	}

	m := sys.Media
	if m.DescribeImages != nil {
		cfg.DescribeImages = *m.DescribeImages
	}
	if m.TranscribeAudio != nil {
		cfg.TranscribeAudio = *m.TranscribeAudio
	}
	if m.MaxItemsPerPost > 0 {
		cfg.MaxItemsPerPost = m.MaxItemsPerPost
	}

	return cfg
}
