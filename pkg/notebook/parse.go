package notebook

import (
	"encoding/json"
	"fmt"
)

// ParseError indicates that a notebook's on-disk representation could not
// be deserialized. It is scoped to a single document; the caller decides
// whether to skip the document or abort the run.
type ParseError struct {
	// Path is the source path of the document that failed to parse.
	Path string

	// Err is the underlying decode diagnostic.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.displayPath(), e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) displayPath() string {
	if e.Path == "" {
		return InMemoryName
	}
	return e.Path
}

// rawNotebook mirrors the nbformat top-level JSON structure with cells
// left undecoded, so each cell can be dispatched on its cell_type tag.
type rawNotebook struct {
	Cells         []json.RawMessage `json:"cells"`
	NBFormat      int               `json:"nbformat"`
	NBFormatMinor int               `json:"nbformat_minor"`
	Metadata      map[string]any    `json:"metadata"`
}

// cellTag carries only the discriminator field of a serialized cell.
type cellTag struct {
	CellType CellType `json:"cell_type"`
}

// Parse deserializes a notebook's JSON representation. The path is
// recorded as the notebook's source path and used in error reporting.
//
// Decoding is strict about structure: malformed JSON, wrong field types,
// or an unrecognized cell_type all fail with a *ParseError. Unknown
// sibling fields are tolerated (the nbformat schema grows over time).
//
// Cell positions are assigned in one pass immediately after decode.
func Parse(path string, data []byte) (*Notebook, error) {
	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	nb := &Notebook{
		Path:          path,
		NBFormat:      raw.NBFormat,
		NBFormatMinor: raw.NBFormatMinor,
		Metadata:      raw.Metadata,
	}

	for i, rawCell := range raw.Cells {
		cell, err := decodeCell(rawCell)
		if err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("cell %d: %w", i, err)}
		}
		nb.Cells = append(nb.Cells, cell)
	}

	nb.AssignPositions()
	return nb, nil
}

// decodeCell dispatches a serialized cell on its cell_type tag.
func decodeCell(data json.RawMessage) (Cell, error) {
	var tag cellTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.CellType {
	case CellTypeCode:
		var cell CodeCell
		if err := json.Unmarshal(data, &cell); err != nil {
			return nil, err
		}
		return &cell, nil
	case CellTypeMarkdown:
		var cell MarkdownCell
		if err := json.Unmarshal(data, &cell); err != nil {
			return nil, err
		}
		return &cell, nil
	default:
		return nil, fmt.Errorf("unknown cell_type %q", string(tag.CellType))
	}
}

// codeCellEnvelope and markdownCellEnvelope reinstate the cell_type tag
// when a notebook is re-serialized.
type codeCellEnvelope struct {
	CellType CellType `json:"cell_type"`
	*CodeCell
}

type markdownCellEnvelope struct {
	CellType CellType `json:"cell_type"`
	*MarkdownCell
}

// MarshalJSON re-serializes the notebook in nbformat layout, restoring
// each cell's cell_type tag.
func (n *Notebook) MarshalJSON() ([]byte, error) {
	cells := make([]any, 0, len(n.Cells))
	for _, cell := range n.Cells {
		switch c := cell.(type) {
		case *CodeCell:
			cells = append(cells, codeCellEnvelope{CellType: CellTypeCode, CodeCell: c})
		case *MarkdownCell:
			cells = append(cells, markdownCellEnvelope{CellType: CellTypeMarkdown, MarkdownCell: c})
		default:
			return nil, fmt.Errorf("unknown cell type %T", cell)
		}
	}

	return json.Marshal(struct {
		Cells         []any          `json:"cells"`
		NBFormat      int            `json:"nbformat"`
		NBFormatMinor int            `json:"nbformat_minor"`
		Metadata      map[string]any `json:"metadata"`
	}{
		Cells:         cells,
		NBFormat:      n.NBFormat,
		NBFormatMinor: n.NBFormatMinor,
		Metadata:      n.Metadata,
	})
}
