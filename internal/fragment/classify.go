package fragment

import (
	"path/filepath"
	"strings"

	"github.com/starford/quiver-to-markdown/internal/models"
)

// Classify derives a fragment's role from its path.
//
//	<dir>.qvnote/meta.json     note metadata
//	<dir>.qvnote/content.json  note content
//	<dir>.qvnotebook/<id>.json notebook descriptor
func Classify(path string) models.Kind {
	if filepath.Ext(path) != ".json" {
		return models.KindUnknown
	}
	dir, base := filepath.Split(path)
	parent := filepath.Ext(filepath.Clean(dir))
	switch {
	case parent == models.NoteExt && base == "meta.json":
		return models.KindNoteMeta
	case parent == models.NoteExt && base == "content.json":
		return models.KindNoteContent
	case parent == models.NotebookExt:
		return models.KindNotebook
	default:
		return models.KindUnknown
	}
}

// NotebookRoot returns the notebook directory a path lies under: everything
// up to and including the last ".qvnotebook" segment. It returns "" when the
// path is not inside a notebook.
func NotebookRoot(path string) string {
	sep := string(filepath.Separator)
	marker := models.NotebookExt + sep
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	return path[:i+len(models.NotebookExt)]
}
