package render

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/starford/quiver-to-markdown/internal/apperr"
	"github.com/starford/quiver-to-markdown/internal/models"
)

// DateLayout is the format of the "updated" field.
const DateLayout = "2006-01-02"

// Frontmatter renders the YAML block that opens every note:
//
//	---
//	title: <title>
//	category: <notebook folder>
//	layout: <layout>
//	tags: [a,b]
//	updated: YYYY-MM-DD
//	---
func Frontmatter(note models.EnrichedNote, layout string, loc *time.Location) (string, error) {
	if note.Meta == nil {
		return "", fmt.Errorf("render: %s: %w", note.SourcePath(), apperr.ErrMissingMetadata)
	}

	title, err := scalar(note.Title, false)
	if err != nil {
		return "", err
	}
	category, err := scalar(note.Folder, false)
	if err != nil {
		return "", err
	}
	layoutValue, err := scalar(layout, false)
	if err != nil {
		return "", err
	}
	tags := make([]string, 0, len(note.Meta.Tags))
	for _, tag := range note.Meta.Tags {
		s, err := scalar(tag, true)
		if err != nil {
			return "", err
		}
		tags = append(tags, s)
	}
	updated := time.Unix(note.Meta.UpdatedAt, 0).In(loc).Format(DateLayout)

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	fmt.Fprintf(&b, "category: %s\n", category)
	fmt.Fprintf(&b, "layout: %s\n", layoutValue)
	fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(tags, ","))
	fmt.Fprintf(&b, "updated: %s\n", updated)
	b.WriteString("---\n")
	return b.String(), nil
}

// scalar returns s as a single-line YAML scalar: plain when it reads back
// unchanged, double-quoted otherwise. Inside a flow sequence the flow
// indicators force quoting as well.
func scalar(s string, flow bool) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("render: encode %q: %w", s, err)
	}
	v := strings.TrimSuffix(string(out), "\n")
	if !strings.Contains(v, "\n") && !(flow && strings.ContainsAny(v, ",[]{}")) {
		return v, nil
	}

	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
	out, err = yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("render: encode %q: %w", s, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
