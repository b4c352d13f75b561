package config

import "time"

// Config is the root configuration structure for Gantry. It is read from
// an optional .gantry.yaml file; every field has a default and the file
// may be absent entirely.
type Config struct {
	// Output controls how findings are rendered.
	Output OutputConfig `yaml:"output"`

	// FailOn is the minimum finding severity that makes a check run exit
	// non-zero: "low", "medium", or "high".
	// Default: "low" (any finding fails the run)
	FailOn string `yaml:"fail_on"`

	// Policies holds per-policy overrides keyed by policy identifier.
	// Policies not mentioned here run with their built-in defaults.
	Policies map[string]PolicyConfig `yaml:"policies"`

	// Watch contains settings for watch mode.
	Watch WatchConfig `yaml:"watch"`
}

// OutputConfig controls how findings are rendered.
type OutputConfig struct {
	// Format is the output format: "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// PolicyConfig is a per-policy override.
type PolicyConfig struct {
	// Enabled enables or disables the policy. A nil value keeps the
	// policy's built-in default.
	Enabled *bool `yaml:"enabled"`

	// Severity overrides the policy's default finding severity.
	// Empty keeps the built-in severity.
	Severity string `yaml:"severity"`
}

// WatchConfig contains settings for watch mode.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a file change before
	// files are re-checked.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// PolicyEnabled resolves whether the policy with the given identifier
// should run, given its built-in default.
func (c *Config) PolicyEnabled(id string, defaultEnabled bool) bool {
	if pc, ok := c.Policies[id]; ok && pc.Enabled != nil {
		return *pc.Enabled
	}
	return defaultEnabled
}

// SeverityOverride returns the configured severity override for a policy,
// if any.
func (c *Config) SeverityOverride(id string) (string, bool) {
	pc, ok := c.Policies[id]
	if !ok || pc.Severity == "" {
		return "", false
	}
	return pc.Severity, true
}
