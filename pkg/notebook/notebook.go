// Package notebook provides the in-memory document model for Jupyter-style
// notebooks: an ordered sequence of code and markdown cells plus document
// metadata, with read-only query helpers used by the lint rules.
package notebook

// InMemoryName is the display name used for notebooks constructed without
// a source path (e.g., synthetic documents in tests).
const InMemoryName = "<in-memory>"

// Notebook is a parsed notebook document. Rules treat notebooks as
// read-only; the only mutation after load is position stamping via
// AssignPositions.
type Notebook struct {
	// Path is the source path the notebook was loaded from.
	// Empty for in-memory notebooks.
	Path string

	// Cells holds the document's cells in canonical order.
	Cells []Cell

	NBFormat      int
	NBFormatMinor int

	// Metadata is free-form document metadata, preserved for round-trip
	// fidelity and ignored by all rules.
	Metadata map[string]any
}

// New creates an empty notebook with the given source path.
func New(path string) *Notebook {
	nb := &Notebook{Path: path}
	nb.AssignPositions()
	return nb
}

// AssignPositions stamps each cell with its 0-based offset in the cell
// sequence. It is idempotent; re-running after edits re-stamps positions
// to match the current order.
func (n *Notebook) AssignPositions() {
	for i, cell := range n.Cells {
		cell.setPos(i)
	}
}

// CodeCells returns the notebook's code cells in document order.
// The returned slice is a non-owning view.
func (n *Notebook) CodeCells() []*CodeCell {
	var cells []*CodeCell
	for _, cell := range n.Cells {
		if c, ok := cell.(*CodeCell); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// MarkdownCells returns the notebook's markdown cells in document order.
// The returned slice is a non-owning view.
func (n *Notebook) MarkdownCells() []*MarkdownCell {
	var cells []*MarkdownCell
	for _, cell := range n.Cells {
		if c, ok := cell.(*MarkdownCell); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// DisplayName returns the notebook's source path, or InMemoryName when
// the notebook has no associated path.
func (n *Notebook) DisplayName() string {
	if n.Path == "" {
		return InMemoryName
	}
	return n.Path
}
