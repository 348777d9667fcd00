package writer

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/starford/quiver-to-markdown/internal/models"
)

// CategoriesFile is the manifest name at the output root.
const CategoriesFile = "categories.yml"

// Manifest is the content of categories.yml.
type Manifest struct {
	Enabled bool     `yaml:"enabled"`
	Names   []string `yaml:"names"`
}

// Categories returns the distinct non-empty notebook folders of notes, sorted.
func Categories(notes []models.EnrichedNote) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, n := range notes {
		if n.Folder == "" {
			continue
		}
		if _, ok := seen[n.Folder]; ok {
			continue
		}
		seen[n.Folder] = struct{}{}
		out = append(out, n.Folder)
	}
	sort.Strings(out)
	return out
}

// WriteCategories writes categories.yml for notes.
func (w *Writer) WriteCategories(notes []models.EnrichedNote) error {
	m := Manifest{Enabled: true, Names: Categories(notes)}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("writer: encode categories: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writer: encode categories: %w", err)
	}
	if err := w.store.Write(CategoriesFile, buf.Bytes()); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	w.logger.Debug("writer: categories written", slog.Int("names", len(m.Names)))
	return nil
}
