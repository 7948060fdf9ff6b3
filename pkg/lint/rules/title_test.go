package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

func TestHasTitleCellRule(t *testing.T) {
	tests := []struct {
		name     string
		cells    []notebook.Cell
		wantPass bool
	}{
		{
			name: "markdown heading first",
			cells: []notebook.Cell{
				&notebook.MarkdownCell{Source: []string{"# My Notebook"}},
			},
			wantPass: true,
		},
		{
			name: "deeper heading level",
			cells: []notebook.Cell{
				&notebook.MarkdownCell{Source: []string{"## Section"}},
			},
			wantPass: true,
		},
		{
			name: "indented heading",
			cells: []notebook.Cell{
				&notebook.MarkdownCell{Source: []string{"  # Title"}},
			},
			wantPass: true,
		},
		{
			name: "code cell first",
			cells: []notebook.Cell{
				&notebook.CodeCell{Source: []string{"# looks like a heading but is code"}},
				&notebook.MarkdownCell{Source: []string{"# Title"}},
			},
			wantPass: false,
		},
		{
			name: "markdown without heading",
			cells: []notebook.Cell{
				&notebook.MarkdownCell{Source: []string{"Just some prose."}},
			},
			wantPass: false,
		},
		{
			name: "markdown with empty source",
			cells: []notebook.Cell{
				&notebook.MarkdownCell{},
			},
			wantPass: false,
		},
		{
			name:     "no cells",
			cells:    nil,
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewHasTitleCellRule()
			result := rule.Check(newNotebook("test.ipynb", tt.cells...))

			assert.Equal(t, tt.wantPass, result.Passed())
			if !tt.wantPass {
				require.Len(t, result.Findings, 1)
				assert.Equal(t, lint.DocumentLevel, result.Findings[0].Pos)
			}
		})
	}
}
