// Package render turns notes into Markdown documents with YAML frontmatter.
package render

import (
	"fmt"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/starford/quiver-to-markdown/internal/models"
)

const cellSeparator = "\n\n"

// Renderer renders notes. It holds one HTML converter shared by all text
// cells and is safe for concurrent use.
type Renderer struct {
	html *md.Converter
}

// NewRenderer builds a Renderer converting rich text with GitHub-flavored rules.
func NewRenderer() *Renderer {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:     "atx",
		BulletListMarker: "-",
		CodeBlockStyle:   "fenced",
		Fence:            "```",
	})
	conv.Use(plugin.GitHubFlavored())
	return &Renderer{html: conv}
}

// Cell renders a single cell. Cells of unknown type render to "".
func (r *Renderer) Cell(c models.Cell) (string, error) {
	switch c := c.(type) {
	case models.CodeCell:
		return "```" + c.Language + "\n" + c.Data + "\n```", nil
	case models.MarkdownCell:
		return c.Data, nil
	case models.TextCell:
		return r.HTML(c.Data)
	case models.UnknownCell:
		return "", nil
	default:
		return "", fmt.Errorf("render: unsupported cell %T", c)
	}
}

// Body renders cells in order and joins the non-empty results with a blank line.
func (r *Renderer) Body(cells []models.Cell) (string, error) {
	parts := make([]string, 0, len(cells))
	for i, c := range cells {
		s, err := r.Cell(c)
		if err != nil {
			return "", fmt.Errorf("render: cell %d: %w", i, err)
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, cellSeparator), nil
}

// HTML converts rich text markup into Markdown.
func (r *Renderer) HTML(markup string) (string, error) {
	out, err := r.html.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("render: convert html: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Document renders the complete Markdown file for a note.
func (r *Renderer) Document(note models.EnrichedNote, layout string, loc *time.Location) (string, error) {
	fm, err := Frontmatter(note, layout, loc)
	if err != nil {
		return "", err
	}
	body, err := r.Body(note.Cells)
	if err != nil {
		return "", fmt.Errorf("render: %s: %w", note.SourcePath(), err)
	}
	return fm + "\n" + body, nil
}
