package rules

import (
	"strings"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// FilenameNotPlaceholderRule checks that the notebook has been renamed
// from an editor's default "Untitled" name.
type FilenameNotPlaceholderRule struct {
	lint.BaseRule
}

// NewFilenameNotPlaceholderRule creates a new filename placeholder rule.
func NewFilenameNotPlaceholderRule() *FilenameNotPlaceholderRule {
	return &FilenameNotPlaceholderRule{
		BaseRule: lint.NewBaseRule(
			"NB001",
			"filename-not-placeholder",
			"Notebook filename should not be an editor's default placeholder",
		),
	}
}

// Check fails with one document-level finding iff the display name,
// case-folded, contains the substring "untitled".
func (r *FilenameNotPlaceholderRule) Check(nb *notebook.Notebook) lint.Result {
	name := strings.ToLower(nb.DisplayName())
	if !strings.Contains(name, "untitled") {
		return r.Pass()
	}
	return r.Fail(lint.Finding{
		Pos:     lint.DocumentLevel,
		Message: `filename contains "untitled"`,
	})
}
