// Package models defines the domain types for the Quiver library conversion.
package models

import "path/filepath"

// Directory extensions used by the library layout.
const (
	NotebookExt = ".qvnotebook"
	NoteExt     = ".qvnote"
)

// Kind is the role of a fragment, derived from its path.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotebook
	KindNoteMeta
	KindNoteContent
)

func (k Kind) String() string {
	switch k {
	case KindNotebook:
		return "notebook"
	case KindNoteMeta:
		return "note_meta"
	case KindNoteContent:
		return "note_content"
	default:
		return "unknown"
	}
}

// Fragment is one parsed JSON file of the library.
type Fragment interface {
	Kind() Kind
	SourcePath() string
}

// Source carries the path a fragment was read from.
type Source struct {
	Path string `json:"-"`
}

// SourcePath returns the path the fragment was discovered at.
func (s Source) SourcePath() string { return s.Path }

// Dir returns the directory containing the fragment.
func (s Source) Dir() string { return filepath.Dir(s.Path) }

// NotebookDescriptor is the manifest of a notebook directory.
type NotebookDescriptor struct {
	Source
	Name string `json:"name"`
	UUID string `json:"uuid,omitempty"`
}

func (*NotebookDescriptor) Kind() Kind { return KindNotebook }

// NoteMetadata is the meta.json of a note directory.
type NoteMetadata struct {
	Source
	Title     string   `json:"title,omitempty"`
	UUID      string   `json:"uuid,omitempty"`
	CreatedAt int64    `json:"created_at,omitempty"`
	UpdatedAt int64    `json:"updated_at"`
	Tags      []string `json:"tags"`
}

func (*NoteMetadata) Kind() Kind { return KindNoteMeta }

// NoteContent is the content.json of a note directory.
type NoteContent struct {
	Source
	Title string `json:"title"`
	Cells []Cell `json:"-"`
}

func (*NoteContent) Kind() Kind { return KindNoteContent }

// EnrichedNote is a note joined with its notebook folder and metadata.
// Folder is empty and Meta is nil when the join found nothing.
type EnrichedNote struct {
	*NoteContent
	Folder string
	Meta   *NoteMetadata
}
