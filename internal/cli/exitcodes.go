package cli

import (
	"errors"

	"github.com/yaklabco/nblint/internal/configloader"
	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
	"github.com/yaklabco/nblint/pkg/runner"
)

// Exit codes for nblint.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitFindings indicates the check completed but found failures.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors, including
	// unresolvable rule names in a disable list.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file read or parse errors that aborted
	// the run.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() || result.HasErrors() {
		return ExitFindings
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by command execution to a
// process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrFindingsFound) {
		return ExitFindings
	}
	if errors.Is(err, ErrUsage) {
		return ExitInvalidUsage
	}
	if errors.Is(err, ErrConfig) {
		return ExitConfigError
	}

	var disableErr *configloader.DisableListError
	var unknownRule *lint.UnknownRuleError
	if errors.As(err, &disableErr) || errors.As(err, &unknownRule) {
		return ExitConfigError
	}

	var parseErr *notebook.ParseError
	if errors.As(err, &parseErr) {
		return ExitIOError
	}

	return ExitInternalError
}
