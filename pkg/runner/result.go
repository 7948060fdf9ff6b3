package runner

import (
	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// DocumentOutcome is the per-notebook outcome of a run.
type DocumentOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Notebook is the parsed document. Nil if parsing failed.
	Notebook *notebook.Notebook

	// Results holds one entry per enabled rule, in registry order.
	Results []lint.Result

	// Err is set if the file could not be read or parsed.
	Err error
}

// Failed reports whether the document had any failing rule.
func (o DocumentOutcome) Failed() bool {
	return lint.AnyFailed(o.Results)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered"`

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int `json:"files_processed"`

	// FilesErrored is the number of files that failed to read or parse.
	FilesErrored int `json:"files_errored"`

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int `json:"files_with_findings"`

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int `json:"findings_total"`

	// FindingsByRule maps rule names to finding counts.
	FindingsByRule map[string]int `json:"findings_by_rule"`
}

// Result is the overall runner result.
type Result struct {
	// Documents contains the outcome for each processed notebook,
	// ordered deterministically (by path).
	Documents []DocumentOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any analyzed document had a failing rule.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any document failed to read or parse.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsByRule: make(map[string]int),
	}
}

// accumulate updates the result with a document outcome.
func (r *Result) accumulate(outcome DocumentOutcome) {
	r.Documents = append(r.Documents, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	var findings int
	for _, result := range outcome.Results {
		findings += len(result.Findings)
		if len(result.Findings) > 0 {
			r.Stats.FindingsByRule[result.RuleName] += len(result.Findings)
		}
	}

	r.Stats.FindingsTotal += findings
	if findings > 0 {
		r.Stats.FilesWithFindings++
	}
}
