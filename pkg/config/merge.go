package config

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeDataSources merges built-in and user-defined data source configurations.
// User-defined sources override built-in sources with the same ID.
func mergeDataSources(builtinSources map[string]DataSourceConfig, userSources map[string]DataSourceConfig) map[string]*DataSourceConfig {
	result := make(map[string]*DataSourceConfig)

	for id, source := range builtinSources {
		sourceCopy := source
		result[id] = &sourceCopy
	}

	for id, userSource := range userSources {
		sourceCopy := userSource
		result[id] = &sourceCopy
	}

	return result
}
