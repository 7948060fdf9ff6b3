package rules

import "github.com/yaklabco/nblint/pkg/notebook"

// newNotebook builds a synthetic notebook with positions assigned, the
// way the loader would after parsing.
func newNotebook(path string, cells ...notebook.Cell) *notebook.Notebook {
	nb := &notebook.Notebook{Path: path, Cells: cells}
	nb.AssignPositions()
	return nb
}

func intPtr(i int) *int { return &i }

// codeCells builds one code cell per execution count, nil meaning the
// cell was never run. Each cell gets a non-empty body.
func codeCells(counts ...*int) []notebook.Cell {
	cells := make([]notebook.Cell, 0, len(counts))
	for _, count := range counts {
		cells = append(cells, &notebook.CodeCell{
			Source:         []string{"x = 1\n"},
			ExecutionCount: count,
		})
	}
	return cells
}
