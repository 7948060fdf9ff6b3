// Package reporter formats lint results for humans and machines.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/nblint/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the given options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		return nil, fmt.Errorf("reporter requires a writer")
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// displayPath makes a path relative to the working directory when that
// produces a shorter, in-tree path.
func displayPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
