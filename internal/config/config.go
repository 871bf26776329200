// Package config defines process configuration and loading hooks.
//
// Conventions follow the rest of the project:
// - Provide New() to build a Config with defaults.
// - Layer file and environment sources on top via Load.
// - External errors are wrapped over this package's sentinel kinds.
package config

// Default values applied by New.
const (
	defaultLogLevel = "info"
	defaultTopCount = 3
)

// Config contains process configuration. Flags read their defaults from
// here, so file/env settings become the baseline the CLI can override.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TopCount is the number of top records to display. Non-positive
	// values are defined behavior downstream (empty top list), so no
	// bound is enforced here.
	TopCount int `koanf:"top_count"`

	// Normalize rescales values to sum to 1.0 before ranking and stats.
	Normalize bool `koanf:"normalize"`

	// JSONOutput selects structured output instead of human-readable text.
	JSONOutput bool `koanf:"json_output"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   defaultLogLevel,
		TopCount:   defaultTopCount,
		Normalize:  false,
		JSONOutput: false,
	}
}
