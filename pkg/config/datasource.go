package config

import (
	"fmt"
	"sync"
	"time"
)

// DataSourceConfig defines one authoritative data source the fact verifier
// can query (FRED, BLS, World Bank, ...). IDs are fixed strings the LLM
// selects from when proposing a verification method.
type DataSourceConfig struct {
	// Base endpoint for the source's REST API
	BaseURL string

	// Environment variable name for the API key, when the source needs one
	APIKeyEnv string

	// How long fetched observations stay cached
	CacheTTL time.Duration

	// Per-request timeout
	Timeout time.Duration

	// Disabled sources stay registered so lookups produce a clear
	// "unavailable" record instead of an unknown-source error
	Disabled bool

	// Note describes why a source is disabled or any usage caveat
	Note string
}

// DataSourceRegistry stores data source configurations in memory with thread-safe access
type DataSourceRegistry struct {
	sources map[string]*DataSourceConfig
	mu      sync.RWMutex
}

// NewDataSourceRegistry creates a new data source registry
func NewDataSourceRegistry(sources map[string]*DataSourceConfig) *DataSourceRegistry {
	copied := make(map[string]*DataSourceConfig, len(sources))
	for k, v := range sources {
		copied[k] = v
	}
	return &DataSourceRegistry{
		sources: copied,
	}
}

// Get retrieves a data source configuration by ID (thread-safe)
func (r *DataSourceRegistry) Get(sourceID string) (*DataSourceConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, exists := r.sources[sourceID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrDataSourceNotFound, sourceID)
	}
	return source, nil
}

// GetAll returns all data source configurations (thread-safe, returns copy)
func (r *DataSourceRegistry) GetAll() map[string]*DataSourceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*DataSourceConfig, len(r.sources))
	for k, v := range r.sources {
		result[k] = v
	}
	return result
}

// Has checks if a data source exists in the registry (thread-safe)
func (r *DataSourceRegistry) Has(sourceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.sources[sourceID]
	return exists
}

// Len returns the number of data sources in the registry (thread-safe)
func (r *DataSourceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}

// SourceIDs returns all registered data source IDs (thread-safe)
func (r *DataSourceRegistry) SourceIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sources))
	for id := range r.sources {
		ids = append(ids, id)
	}
	return ids
}
