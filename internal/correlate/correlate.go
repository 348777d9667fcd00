// Package correlate joins loaded fragments into notes by their position in
// the library tree.
package correlate

import (
	"sort"

	"github.com/starford/quiver-to-markdown/internal/filename"
	"github.com/starford/quiver-to-markdown/internal/fragment"
	"github.com/starford/quiver-to-markdown/internal/models"
)

// FolderNames maps each notebook directory to its output folder name.
func FolderNames(frags []models.Fragment) map[string]string {
	out := make(map[string]string)
	for _, f := range frags {
		if nb, ok := f.(*models.NotebookDescriptor); ok {
			out[nb.Dir()] = filename.Folder(nb.Name)
		}
	}
	return out
}

// Metadata maps each note directory to its metadata.
func Metadata(frags []models.Fragment) map[string]*models.NoteMetadata {
	out := make(map[string]*models.NoteMetadata)
	for _, f := range frags {
		if meta, ok := f.(*models.NoteMetadata); ok {
			out[meta.Dir()] = meta
		}
	}
	return out
}

// Notebooks returns the distinct folder names of all notebooks, sorted.
func Notebooks(frags []models.Fragment) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range FolderNames(frags) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Notes enriches every note content fragment with its notebook folder and
// metadata. Joins that find nothing leave the field empty. Notes are
// returned ordered by source path.
func Notes(frags []models.Fragment) []models.EnrichedNote {
	folders := FolderNames(frags)
	metas := Metadata(frags)

	var out []models.EnrichedNote
	for _, f := range frags {
		content, ok := f.(*models.NoteContent)
		if !ok {
			continue
		}
		out = append(out, models.EnrichedNote{
			NoteContent: content,
			Folder:      folders[fragment.NotebookRoot(content.SourcePath())],
			Meta:        metas[content.Dir()],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SourcePath() < out[j].SourcePath()
	})
	return out
}
