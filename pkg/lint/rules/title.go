package rules

import (
	"strings"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// HasTitleCellRule checks that the notebook opens with a markdown
// heading, a minimal documentation convention.
type HasTitleCellRule struct {
	lint.BaseRule
}

// NewHasTitleCellRule creates a new title cell rule.
func NewHasTitleCellRule() *HasTitleCellRule {
	return &HasTitleCellRule{
		BaseRule: lint.NewBaseRule(
			"NB004",
			"has-title-cell",
			"The first cell should be a markdown cell starting with a heading",
		),
	}
}

// Check passes iff the first cell exists, is markdown, has source, and
// its first line begins with a heading marker. Anything else, including
// a code cell in first position, yields one document-level finding.
func (r *HasTitleCellRule) Check(nb *notebook.Notebook) lint.Result {
	fail := r.Fail(lint.Finding{
		Pos:     lint.DocumentLevel,
		Message: "notebook does not start with a markdown title cell",
	})

	if len(nb.Cells) == 0 {
		return fail
	}

	md, ok := nb.Cells[0].(*notebook.MarkdownCell)
	if !ok || len(md.Source) == 0 {
		return fail
	}

	first := strings.TrimLeft(md.Source[0], " \t")
	if !strings.HasPrefix(first, "#") {
		return fail
	}
	return r.Pass()
}
