package config

import "time"

// Default values for configuration fields.
const (
	// Output defaults
	DefaultOutputFormat = "text"

	// Severity threshold defaults
	DefaultFailOn = "low"

	// Watch defaults
	DefaultWatchDebounceInterval = 100 * time.Millisecond
)

// ApplyDefaults fills in default values for all unset configuration
// fields. It is called after loading and before validation.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.FailOn == "" {
		cfg.FailOn = DefaultFailOn
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}
	if cfg.Policies == nil {
		cfg.Policies = make(map[string]PolicyConfig)
	}
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
