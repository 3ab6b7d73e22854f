package config

import "time"

// SchedulerConfig controls the pipeline scheduler: how often a full pass
// runs and how much work each operator picks up per pass.
type SchedulerConfig struct {
	// Interval between pipeline passes.
	Interval time.Duration `yaml:"interval"`

	// InitialDelay before the first pass after startup, giving the
	// ingestion side a head start on a cold database.
	InitialDelay time.Duration `yaml:"initial_delay"`

	// PostBatchSize is the maximum number of unprocessed posts the
	// extractor claims per pass.
	PostBatchSize int `yaml:"post_batch_size"`

	// FactBatchSize is the maximum number of pending verifiable facts
	// the verifier evaluates per pass.
	FactBatchSize int `yaml:"fact_batch_size"`

	// OperatorTimeout bounds a single operator's run within a pass.
	OperatorTimeout time.Duration `yaml:"operator_timeout"`

	// GracefulShutdownTimeout is the max time to wait for an in-flight
	// pass to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		Interval:                5 * time.Minute,
		InitialDelay:            10 * time.Second,
		PostBatchSize:           10,
		FactBatchSize:           20,
		OperatorTimeout:         10 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
