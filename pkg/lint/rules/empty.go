package rules

import (
	"strings"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// NoEmptyCellsRule checks for cells with no content, typically blank
// cells left behind by editing tools.
type NoEmptyCellsRule struct {
	lint.BaseRule
}

// NewNoEmptyCellsRule creates a new empty cell rule.
func NewNoEmptyCellsRule() *NoEmptyCellsRule {
	return &NoEmptyCellsRule{
		BaseRule: lint.NewBaseRule(
			"NB003",
			"no-empty-cells",
			"Notebooks should not contain empty code or markdown cells",
		),
	}
}

// Check yields one finding per empty cell, code and markdown alike, in
// document order. A cell is empty if it has no source lines or every
// line is whitespace after trimming.
func (r *NoEmptyCellsRule) Check(nb *notebook.Notebook) lint.Result {
	var findings []lint.Finding

	for _, cell := range nb.Cells {
		if isEmpty(cell.Lines()) {
			findings = append(findings, lint.Finding{
				Pos:     cell.Pos(),
				Message: "cell is empty",
			})
		}
	}

	return r.Fail(findings...)
}

func isEmpty(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
