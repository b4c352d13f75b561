package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path, applies
// defaults and environment overrides, and validates the result. A missing
// file is not an error; defaults apply.
//
// Environment variables follow the naming convention GANTRY_SECTION_FIELD
// (e.g. GANTRY_OUTPUT_FORMAT) and always take precedence over file-based
// configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No config file; run with defaults.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies GANTRY_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GANTRY_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("GANTRY_FAIL_ON"); v != "" {
		cfg.FailOn = v
	}
	if v := os.Getenv("GANTRY_WATCH_DEBOUNCE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
}
