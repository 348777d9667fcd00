// Package writer renders enriched notes and the category manifest into the
// output tree.
package writer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/quiver-to-markdown/internal/checksum"
	"github.com/starford/quiver-to-markdown/internal/filename"
	"github.com/starford/quiver-to-markdown/internal/models"
	"github.com/starford/quiver-to-markdown/internal/render"
	"github.com/starford/quiver-to-markdown/internal/storage"
)

// Options configures a Writer.
type Options struct {
	Layout   string
	Location *time.Location
	Workers  int
}

// Writer writes notes below an output root.
type Writer struct {
	store    storage.Provider
	opts     Options
	renderer *render.Renderer
	logger   *slog.Logger
}

// New returns a Writer for store.
func New(store storage.Provider, opts Options, logger *slog.Logger) *Writer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Writer{store: store, opts: opts, renderer: render.NewRenderer(), logger: logger}
}

// NotePath returns the output path of a note relative to the output root.
// Notes without a notebook folder land at the root.
func NotePath(note models.EnrichedNote) string {
	name := filename.Sanitize(note.Title) + ".md"
	if note.Folder == "" {
		return name
	}
	return filepath.Join(note.Folder, name)
}

// CreateFolders creates one folder per notebook, including notebooks
// without notes.
func (w *Writer) CreateFolders(names []string) error {
	for _, name := range names {
		if err := w.store.Mkdir(name); err != nil {
			return fmt.Errorf("writer: notebook folder: %w", err)
		}
	}
	return nil
}

// WriteNotes renders and writes every note with bounded parallelism. The
// first failure stops the remaining work and is returned. Notes whose
// sanitized titles collide overwrite each other: the last one in input
// order wins.
func (w *Writer) WriteNotes(ctx context.Context, notes []models.EnrichedNote) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.opts.Workers)
	for _, note := range w.dedupe(notes) {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return w.WriteNote(note)
		})
	}
	return g.Wait()
}

// dedupe keeps the last note per output path, preserving input order.
func (w *Writer) dedupe(notes []models.EnrichedNote) []models.EnrichedNote {
	last := make(map[string]int, len(notes))
	for i, note := range notes {
		last[NotePath(note)] = i
	}
	out := make([]models.EnrichedNote, 0, len(last))
	for i, note := range notes {
		path := NotePath(note)
		if last[path] != i {
			w.logger.Debug("writer: note overwritten",
				slog.String("path", path),
				slog.String("source", note.SourcePath()),
				slog.String("winner", notes[last[path]].SourcePath()))
			continue
		}
		out = append(out, note)
	}
	return out
}

// WriteNote renders a single note and writes it.
func (w *Writer) WriteNote(note models.EnrichedNote) error {
	doc, err := w.renderer.Document(note, w.opts.Layout, w.opts.Location)
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	path := NotePath(note)
	if note.Folder == "" {
		w.logger.Warn("writer: note has no notebook", slog.String("source", note.SourcePath()))
	}
	data := []byte(doc)
	if err := w.store.Write(path, data); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	w.logger.Debug("writer: note written",
		slog.String("path", path),
		slog.String("source", note.SourcePath()),
		slog.String("checksum", checksum.Sum(data)))
	return nil
}
