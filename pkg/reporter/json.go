package reporter

import (
	"context"
	"encoding/json"

	"github.com/yaklabco/nblint/pkg/runner"
)

// JSONReporter emits machine-readable output for CI consumers.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonFinding is one finding in JSON output.
type jsonFinding struct {
	Cell    int    `json:"cell"`
	Message string `json:"message"`
	Rule    string `json:"rule"`
	RuleID  string `json:"rule_id"`
}

// jsonDocument is one analyzed document in JSON output.
type jsonDocument struct {
	Path     string        `json:"path"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Findings []jsonFinding `json:"findings"`
}

// jsonReport is the top-level JSON output structure.
type jsonReport struct {
	Documents []jsonDocument `json:"documents"`
	Stats     runner.Stats   `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	report := jsonReport{Documents: []jsonDocument{}}
	if result != nil {
		report.Stats = result.Stats
	}

	var total int
	if result != nil {
		for _, doc := range result.Documents {
			jd := jsonDocument{
				Path:     displayPath(doc.Path, r.opts.WorkingDir),
				Passed:   doc.Err == nil && !doc.Failed(),
				Findings: []jsonFinding{},
			}
			if doc.Err != nil {
				jd.Error = doc.Err.Error()
			}
			for _, ruleResult := range doc.Results {
				for _, finding := range ruleResult.Findings {
					jd.Findings = append(jd.Findings, jsonFinding{
						Cell:    finding.Pos,
						Message: finding.Message,
						Rule:    ruleResult.RuleName,
						RuleID:  ruleResult.RuleID,
					})
					total++
				}
			}
			report.Documents = append(report.Documents, jd)
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return total, err
	}
	return total, nil
}
