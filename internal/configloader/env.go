package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/nblint/pkg/config"
)

// Environment variables recognized by nblint.
const (
	envRoot    = "NBLINT_ROOT"
	envDisable = "NBLINT_DISABLE"
	envQuiet   = "NBLINT_QUIET"
)

// fromEnv builds a Config overlay from NBLINT_* environment variables.
// Unparseable values produce warnings rather than errors; the variable
// is ignored.
func fromEnv() (*config.Config, []string) {
	cfg := &config.Config{}
	var warnings []string

	if root := os.Getenv(envRoot); root != "" {
		cfg.Root = root
	}

	if disable := os.Getenv(envDisable); disable != "" {
		for _, name := range strings.Split(disable, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Disable = append(cfg.Disable, name)
			}
		}
	}

	if quiet := os.Getenv(envQuiet); quiet != "" {
		val, err := strconv.ParseBool(quiet)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: not a boolean", envQuiet, quiet))
		} else {
			cfg.Quiet = val
		}
	}

	return cfg, warnings
}
