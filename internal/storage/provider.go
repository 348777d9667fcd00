// Package storage defines the file-system abstraction for the library and output trees.
package storage

// Provider is the interface for file operations relative to a root directory.
type Provider interface {
	// Root returns the absolute root directory.
	Root() string
	// List returns the paths (relative to root) of every file under dir with the given extension.
	List(dir, ext string) ([]string, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root).
	Write(path string, content []byte) error
	// Mkdir creates the directory at path (relative to root) and any parents.
	Mkdir(path string) error
}
