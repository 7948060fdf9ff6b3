package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// projectConfigFiles are the config file names we search for, in order
// of preference. pyproject.toml carries the config in its [tool.nblint]
// table; .nblint.toml carries it at the top level.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".nblint.toml",
	"pyproject.toml",
}

// vcsRootMarkers are directories that indicate a VCS root; the upward
// search stops after the directory containing one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from workDir for a project config
// file. It returns the empty string when none is found.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("config discovery cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
