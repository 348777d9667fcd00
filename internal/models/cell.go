package models

import (
	"encoding/json"
	"fmt"
)

// Cell types as they appear in content.json.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
	CellTypeText     = "text"
)

// Cell is one unit of note body content. The concrete types are
// CodeCell, MarkdownCell, TextCell and UnknownCell.
type Cell interface {
	isCell()
}

// CodeCell holds source code rendered as a fenced block.
type CodeCell struct {
	Language string
	Data     string
}

// MarkdownCell holds Markdown passed through unchanged.
type MarkdownCell struct {
	Data string
}

// TextCell holds rich text as HTML.
type TextCell struct {
	Data string
}

// UnknownCell is a cell of a type the converter does not handle.
type UnknownCell struct {
	Type string
}

func (CodeCell) isCell()     {}
func (MarkdownCell) isCell() {}
func (TextCell) isCell()     {}
func (UnknownCell) isCell()  {}

type rawCell struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Data     string `json:"data"`
}

func (r rawCell) cell() Cell {
	switch r.Type {
	case CellTypeCode:
		return CodeCell{Language: r.Language, Data: r.Data}
	case CellTypeMarkdown:
		return MarkdownCell{Data: r.Data}
	case CellTypeText:
		return TextCell{Data: r.Data}
	default:
		return UnknownCell{Type: r.Type}
	}
}

// UnmarshalJSON decodes content.json, turning each cell into its concrete type.
func (n *NoteContent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title string    `json:"title"`
		Cells []rawCell `json:"cells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode note content: %w", err)
	}
	n.Title = raw.Title
	n.Cells = make([]Cell, 0, len(raw.Cells))
	for _, c := range raw.Cells {
		n.Cells = append(n.Cells, c.cell())
	}
	return nil
}
