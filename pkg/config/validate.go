package config

import "fmt"

// validFormats are the supported output formats.
var validFormats = map[string]bool{
	"text": true,
	"json": true,
}

// validSeverities are the recognized severity names.
var validSeverities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// Validate checks the configuration for invalid values. It returns the
// first problem found.
func Validate(cfg *Config) error {
	if !validFormats[cfg.Output.Format] {
		return fmt.Errorf("output.format: unknown format %q (valid: text, json)", cfg.Output.Format)
	}

	if !validSeverities[cfg.FailOn] {
		return fmt.Errorf("fail_on: unknown severity %q (valid: low, medium, high)", cfg.FailOn)
	}

	for id, pc := range cfg.Policies {
		if pc.Severity != "" && !validSeverities[pc.Severity] {
			return fmt.Errorf("policies.%s.severity: unknown severity %q (valid: low, medium, high)", id, pc.Severity)
		}
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval: must not be negative")
	}

	return nil
}
