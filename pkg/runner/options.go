// Package runner provides multi-notebook linting orchestration: file
// discovery and a worker pool running the per-document
// parse/assign/analyze pipeline.
package runner

// Options controls multi-notebook linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered notebooks. Defaults to [".ipynb"].
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// Disabled is the set of rule IDs to skip, keyed by canonical ID.
	// Callers resolve user-supplied names through the registry first.
	Disabled map[string]bool

	// KeepGoing records parse failures on the document's outcome and
	// continues with the rest of the run. When false (the default) the
	// first parse failure aborts the run.
	KeepGoing bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// DefaultExtensions returns the default set of notebook file extensions.
func DefaultExtensions() []string {
	return []string{".ipynb"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
