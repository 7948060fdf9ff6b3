// Package config defines core configuration types for nblint.
// These types are pure data structures; file discovery and merging live
// in internal/configloader.
package config

// Config is the root configuration structure for nblint.
//
// On disk it lives in the [tool.nblint] table of a project's
// pyproject.toml, or at the top level of a standalone .nblint.toml.
type Config struct {
	// Root is the directory notebooks are discovered under when no
	// paths are given on the command line.
	Root string `toml:"root"`

	// Disable lists rules to skip, by ID or name.
	Disable []string `toml:"disable"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `toml:"ignore"`

	// Quiet suppresses per-document success output.
	Quiet bool `toml:"quiet"`

	// CLI-level options (not persisted to config files).

	// Jobs is the worker count for the run (0 = auto).
	Jobs int `toml:"-"`

	// KeepGoing continues past documents that fail to parse.
	KeepGoing bool `toml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Root: ".",
	}
}
