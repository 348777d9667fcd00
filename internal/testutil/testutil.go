// Package testutil provides shared test helpers for building Quiver libraries on disk.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Cell mirrors one entry of a content.json "cells" array.
type Cell struct {
	Type     string `json:"type"`
	Language string `json:"language,omitempty"`
	Data     string `json:"data"`
}

// Library builds a *.qvlibrary tree in a temporary directory.
type Library struct {
	t    *testing.T
	Root string
}

// NewLibrary creates an empty library directory "Quiver.qvlibrary" below t.TempDir().
func NewLibrary(t *testing.T) *Library {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Quiver.qvlibrary")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	lib := &Library{t: t, Root: root}
	lib.WriteJSON("meta.json", map[string]any{"children": []any{}})
	return lib
}

// Notebook writes a notebook descriptor and returns the notebook directory
// relative to the library root.
func (l *Library) Notebook(id, name string) string {
	l.t.Helper()
	dir := id + ".qvnotebook"
	l.WriteJSON(filepath.Join(dir, "meta.json"), map[string]any{"name": name, "uuid": id})
	return dir
}

// Note writes meta.json and content.json for a note inside notebookDir.
func (l *Library) Note(notebookDir, id, title string, updatedAt int64, tags []string, cells ...Cell) string {
	l.t.Helper()
	dir := filepath.Join(notebookDir, id+".qvnote")
	l.NoteMeta(dir, updatedAt, tags)
	l.NoteContent(dir, title, cells...)
	return dir
}

// NoteMeta writes only the meta.json of a note directory.
func (l *Library) NoteMeta(noteDir string, updatedAt int64, tags []string) {
	l.t.Helper()
	if tags == nil {
		tags = []string{}
	}
	l.WriteJSON(filepath.Join(noteDir, "meta.json"), map[string]any{
		"created_at": updatedAt,
		"updated_at": updatedAt,
		"tags":       tags,
		"uuid":       filepath.Base(noteDir),
	})
}

// NoteContent writes only the content.json of a note directory.
func (l *Library) NoteContent(noteDir, title string, cells ...Cell) {
	l.t.Helper()
	if cells == nil {
		cells = []Cell{}
	}
	l.WriteJSON(filepath.Join(noteDir, "content.json"), map[string]any{
		"title": title,
		"cells": cells,
	})
}

// WriteJSON encodes v into rel below the library root.
func (l *Library) WriteJSON(rel string, v any) {
	l.t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		l.t.Fatal(err)
	}
	l.WriteFile(rel, data)
}

// WriteFile writes raw bytes into rel below the library root.
func (l *Library) WriteFile(rel string, data []byte) {
	l.t.Helper()
	p := filepath.Join(l.Root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		l.t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		l.t.Fatal(err)
	}
}

// ReadTree returns every file below root keyed by slash-separated relative path.
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}
