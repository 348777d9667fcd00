// Package fragment discovers and decodes the JSON files of a Quiver library.
package fragment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/starford/quiver-to-markdown/internal/apperr"
	"github.com/starford/quiver-to-markdown/internal/models"
	"github.com/starford/quiver-to-markdown/internal/storage"
)

// Loader reads every JSON fragment below a library root.
type Loader struct {
	store   storage.Provider
	workers int
	logger  *slog.Logger
}

// NewLoader returns a Loader reading through store with at most workers
// files in flight.
func NewLoader(store storage.Provider, workers int, logger *slog.Logger) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{store: store, workers: workers, logger: logger}
}

// Load discovers and decodes all fragments. Unrecognized JSON files are
// validated and dropped. The first read or decode error aborts the load.
func (l *Loader) Load(ctx context.Context) ([]models.Fragment, error) {
	paths, err := l.store.List("", ".json")
	if err != nil {
		return nil, fmt.Errorf("fragment: discover: %w", err)
	}
	l.logger.Debug("fragment: discovered", slog.Int("files", len(paths)))

	out := make([]models.Fragment, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, rel := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			frag, err := l.loadOne(rel)
			if err != nil {
				return err
			}
			out[i] = frag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	frags := out[:0]
	for _, f := range out {
		if f != nil {
			frags = append(frags, f)
		}
	}
	return frags, nil
}

func (l *Loader) loadOne(rel string) (models.Fragment, error) {
	data, err := l.store.Read(rel)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}
	path := filepath.Join(l.store.Root(), rel)

	frag, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	if frag == nil {
		l.logger.Debug("fragment: skipped unrecognized", slog.String("path", rel))
	}
	return frag, nil
}

// Decode parses data as the fragment kind implied by path. It returns a nil
// fragment for well-formed JSON of an unrecognized kind.
func Decode(path string, data []byte) (models.Fragment, error) {
	var (
		frag   models.Fragment
		target any
	)
	switch Classify(path) {
	case models.KindNotebook:
		nb := &models.NotebookDescriptor{Source: models.Source{Path: path}}
		frag, target = nb, nb
	case models.KindNoteMeta:
		meta := &models.NoteMetadata{Source: models.Source{Path: path}}
		frag, target = meta, meta
	case models.KindNoteContent:
		content := &models.NoteContent{Source: models.Source{Path: path}}
		frag, target = content, content
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("fragment: %s: %w", path, apperr.ErrMalformedFragment)
		}
		return nil, nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("fragment: %s: %w: %v", path, apperr.ErrMalformedFragment, err)
	}
	return frag, nil
}
