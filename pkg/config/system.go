package config

import "time"

// SearchConfig holds resolved web search configuration.
type SearchConfig struct {
	Provider   SearchProviderType // Search backend (default: "tavily")
	APIKeyEnv  string             // Env var name for the API key (default: "TAVILY_API_KEY")
	MaxResults int                // Results per query (default: 5)
	Timeout    time.Duration      // Per-request timeout (default: 15s)
}

// MonitoringConfig holds defaults for prediction monitoring windows.
type MonitoringConfig struct {
	// DefaultWindowDays is used when the monitor cannot parse an explicit
	// horizon out of a predictive claim.
	DefaultWindowDays int

	// MaxWindowDays caps how far into the future a monitoring window may
	// extend; longer claims are clamped and noted.
	MaxWindowDays int
}

// MediaConfig holds media enrichment settings.
type MediaConfig struct {
	DescribeImages  bool // Run vision descriptions for photos/GIFs
	TranscribeAudio bool // Run ASR transcription for video/audio
	MaxItemsPerPost int  // Media items processed per post (default: 4)
}
