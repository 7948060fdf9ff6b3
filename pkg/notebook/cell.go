package notebook

// CellType identifies the variant of a cell.
type CellType string

const (
	// CellTypeCode is a code cell.
	CellTypeCode CellType = "code"

	// CellTypeMarkdown is a prose (markdown) cell.
	CellTypeMarkdown CellType = "markdown"
)

// Cell is one unit of a notebook document, either code or markdown.
// Concrete types are *CodeCell and *MarkdownCell.
type Cell interface {
	// Type returns the cell variant.
	Type() CellType

	// Pos returns the cell's 0-based position within its notebook.
	// Positions are stamped by Notebook.AssignPositions after load.
	Pos() int

	// Lines returns the cell's source as an ordered sequence of lines.
	Lines() []string

	setPos(int)
}

// Output is a single output record attached to a code cell.
// Outputs are retained for round-trip fidelity; no rule inspects them.
type Output struct {
	Name       string   `json:"name,omitempty"`
	OutputType string   `json:"output_type,omitempty"`
	Text       []string `json:"text,omitempty"`
}

// CodeCell is an executable cell with source lines, an optional
// execution count, and any captured outputs.
type CodeCell struct {
	ID       string         `json:"id,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// ExecutionCount is nil when the cell has never been run.
	ExecutionCount *int `json:"execution_count"`

	Outputs []Output `json:"outputs"`

	// Source is the cell body as an ordered sequence of lines.
	Source []string `json:"source"`

	pos int
}

// Type implements Cell.
func (c *CodeCell) Type() CellType { return CellTypeCode }

// Pos implements Cell.
func (c *CodeCell) Pos() int { return c.pos }

// Lines implements Cell.
func (c *CodeCell) Lines() []string { return c.Source }

func (c *CodeCell) setPos(i int) { c.pos = i }

// MarkdownCell is a prose cell with source lines.
type MarkdownCell struct {
	ID       string         `json:"id,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Source is the cell body as an ordered sequence of lines.
	Source []string `json:"source"`

	pos int
}

// Type implements Cell.
func (c *MarkdownCell) Type() CellType { return CellTypeMarkdown }

// Pos implements Cell.
func (c *MarkdownCell) Pos() int { return c.pos }

// Lines implements Cell.
func (c *MarkdownCell) Lines() []string { return c.Source }

func (c *MarkdownCell) setPos(i int) { c.pos = i }
