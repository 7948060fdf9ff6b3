package rules

import (
	"fmt"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// SequentialExecutionRule checks that code cells were executed exactly
// once each, top to bottom. It catches notebooks re-run out of order or
// shipped with stale cached outputs.
type SequentialExecutionRule struct {
	lint.BaseRule
}

// NewSequentialExecutionRule creates a new sequential execution rule.
func NewSequentialExecutionRule() *SequentialExecutionRule {
	return &SequentialExecutionRule{
		BaseRule: lint.NewBaseRule(
			"NB002",
			"sequential-execution",
			"Code cells should carry execution counts 1..K in document order",
		),
	}
}

// Check walks code cells in document order with an expected counter
// starting at 1. A cell with no recorded count fails as never run; a
// cell whose count differs from the expected counter fails as executed
// out of order. The counter increments once per code cell either way, so
// a single out-of-place run shows up on every cell it displaced.
// Markdown cells are not counted and never appear in the findings.
func (r *SequentialExecutionRule) Check(nb *notebook.Notebook) lint.Result {
	var findings []lint.Finding

	expected := 1
	for _, cell := range nb.CodeCells() {
		switch {
		case cell.ExecutionCount == nil:
			findings = append(findings, lint.Finding{
				Pos:     cell.Pos(),
				Message: "cell was not run",
			})
		case *cell.ExecutionCount != expected:
			findings = append(findings, lint.Finding{
				Pos:     cell.Pos(),
				Message: fmt.Sprintf("not executed in order, got %d", *cell.ExecutionCount),
			})
		}
		expected++
	}

	return r.Fail(findings...)
}
