// Package config defines the has configuration model and default values.
//
// has reads no configuration files and no environment variables; every
// field is fixed at startup from NewDefaultConfig and build-time metadata.
package config

import "time"

// Config holds every tunable used by the probe engine and report driver.
type Config struct {
	// Identity reported by -v/--version and the help text.
	ProgramName string
	Version     string

	// Timeout bounds each individual version-probe attempt.
	Timeout time.Duration

	// Shell is invoked as `<Shell> -c "type <name>"` for builtin detection.
	Shell string

	// MaxVersionWidth is the longest version string printed as-is, in runes.
	// Longer strings are cut to MaxVersionWidth-3 runes plus "...".
	MaxVersionWidth int

	// Verbose enables debug logging of failed probe attempts. The has CLI
	// never sets it because its option set is fixed; it is for programs
	// embedding the probe engine and for tests.
	Verbose bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		ProgramName:     "has",
		Version:         "v2.0.0",
		Timeout:         2 * time.Second,
		Shell:           "bash",
		MaxVersionWidth: 50,
	}
}
