// Package configloader provides configuration loading and resolution:
// project file discovery, TOML decoding, environment variable support,
// CLI-flag precedence, and disable-list validation against the registry.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/nblint/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading NBLINT_* environment variables.
	IgnoreEnv bool

	// IgnoreProjectConfig skips project config discovery.
	IgnoreProjectConfig bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (NBLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (pyproject.toml / .nblint.toml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	path := opts.ExplicitPath
	if path == "" && !opts.IgnoreProjectConfig {
		discovered, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path != "" {
		fileCfg, found, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		switch {
		case found:
			merge(cfg, fileCfg)
			result.LoadedFrom = append(result.LoadedFrom, path)
		case opts.ExplicitPath != "":
			// An explicitly named file with no nblint section is a
			// config error; a discovered pyproject.toml without one is
			// routine.
			return nil, fmt.Errorf("%s: no [tool.nblint] configuration found", path)
		}
	}

	if !opts.IgnoreEnv {
		envCfg, warnings := fromEnv()
		merge(cfg, envCfg)
		result.Warnings = append(result.Warnings, warnings...)
	}

	if opts.CLIConfig != nil {
		merge(cfg, opts.CLIConfig)
	}

	result.Config = cfg
	return result, nil
}

// pyprojectFile mirrors the [tool.nblint] nesting of pyproject.toml.
type pyprojectFile struct {
	Tool struct {
		Nblint config.Config `toml:"nblint"`
	} `toml:"tool"`
}

// decodeFile reads a TOML config file. pyproject.toml files are read
// through their [tool.nblint] table; any other file is decoded at the
// top level. The second return reports whether nblint configuration was
// actually present.
func decodeFile(path string) (*config.Config, bool, error) {
	if filepath.Base(path) == "pyproject.toml" {
		var file pyprojectFile
		meta, err := toml.DecodeFile(path, &file)
		if err != nil {
			return nil, false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if !meta.IsDefined("tool", "nblint") {
			return nil, false, nil
		}
		return &file.Tool.Nblint, true, nil
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &cfg, true, nil
}

// merge overlays src onto dst. Zero values in src leave dst untouched,
// so sources apply in precedence order from lowest to highest.
func merge(dst, src *config.Config) {
	if src.Root != "" {
		dst.Root = src.Root
	}
	if len(src.Disable) > 0 {
		dst.Disable = src.Disable
	}
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
	if src.Quiet {
		dst.Quiet = true
	}
	if src.Jobs != 0 {
		dst.Jobs = src.Jobs
	}
	if src.KeepGoing {
		dst.KeepGoing = true
	}
}
