package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nblint/pkg/notebook"
)

func TestSequentialExecutionRule(t *testing.T) {
	tests := []struct {
		name     string
		counts   []*int
		wantMsgs []string
		wantPos  []int
	}{
		{
			name:   "in order",
			counts: []*int{intPtr(1), intPtr(2), intPtr(3)},
		},
		{
			name:   "no code cells",
			counts: nil,
		},
		{
			name:     "swapped tail",
			counts:   []*int{intPtr(1), intPtr(3), intPtr(2)},
			wantMsgs: []string{"not executed in order, got 3", "not executed in order, got 2"},
			wantPos:  []int{1, 2},
		},
		{
			name:     "never run",
			counts:   []*int{nil},
			wantMsgs: []string{"cell was not run"},
			wantPos:  []int{0},
		},
		{
			name:     "gap from re-run",
			counts:   []*int{intPtr(1), intPtr(5)},
			wantMsgs: []string{"not executed in order, got 5"},
			wantPos:  []int{1},
		},
		{
			name:     "mixed missing and stale",
			counts:   []*int{nil, intPtr(1)},
			wantMsgs: []string{"cell was not run", "not executed in order, got 1"},
			wantPos:  []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewSequentialExecutionRule()
			result := rule.Check(newNotebook("test.ipynb", codeCells(tt.counts...)...))

			require.Len(t, result.Findings, len(tt.wantMsgs))
			for i, finding := range result.Findings {
				assert.Equal(t, tt.wantMsgs[i], finding.Message)
				assert.Equal(t, tt.wantPos[i], finding.Pos)
			}
		})
	}
}

func TestSequentialExecutionCounterSkipsMarkdown(t *testing.T) {
	// The expected counter keeps counting across markdown gaps; it never
	// resets per contiguous code run.
	nb := newNotebook("test.ipynb",
		&notebook.CodeCell{Source: []string{"a"}, ExecutionCount: intPtr(1)},
		&notebook.MarkdownCell{Source: []string{"prose"}},
		&notebook.MarkdownCell{Source: []string{"more prose"}},
		&notebook.CodeCell{Source: []string{"b"}, ExecutionCount: intPtr(2)},
	)

	result := NewSequentialExecutionRule().Check(nb)
	assert.True(t, result.Passed())
}

func TestSequentialExecutionFindingsUseDocumentPositions(t *testing.T) {
	nb := newNotebook("test.ipynb",
		&notebook.MarkdownCell{Source: []string{"# Title"}},
		&notebook.CodeCell{Source: []string{"a"}, ExecutionCount: nil},
	)

	result := NewSequentialExecutionRule().Check(nb)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, 1, result.Findings[0].Pos)
}
