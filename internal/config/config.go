// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory synthesis job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of synthesis workers. Zero means
	// CPU-derived.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the request deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// ShardCount configures the number of shards in the artifact store.
	ShardCount int `koanf:"shard_count"`

	// Threshold is the qualification gate: businesses scoring at or above
	// it are skipped.
	Threshold int `koanf:"threshold"`

	// TargetImages is the media sourcing target per synthesis run.
	TargetImages int `koanf:"target_images"`

	// MinImages is the validation minimum image count.
	MinImages int `koanf:"min_images"`

	// SynthesisTimeoutSec bounds one synthesis run end to end.
	SynthesisTimeoutSec int `koanf:"synthesis_timeout_sec"`

	// Provider credentials. An empty key disables the provider.
	UnsplashAccessKey string `koanf:"unsplash_access_key"`
	PexelsAPIKey      string `koanf:"pexels_api_key"`

	// Generative content settings. An empty key routes every job to the
	// local content fallback.
	GenAIAPIKey string `koanf:"genai_api_key"`
	GenAIModel  string `koanf:"genai_model"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		QueueSize:           10_000,
		WorkerCount:         0,
		DedupeSize:          50_000,
		ShardCount:          16,
		Threshold:           70,
		TargetImages:        15,
		MinImages:           8,
		SynthesisTimeoutSec: 180,
	}
	return c
}
