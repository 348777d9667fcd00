// Package checksum fingerprints written notes and whole output trees.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Tree returns a digest over every regular file in fsys: its slash path and
// its content digest, in lexical walk order. Two trees with the same files
// and bytes share a digest.
func Tree(fsys fs.FS) (string, error) {
	h := sha256.New()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(h, "%s\x00%s\n", p, Sum(data))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("checksum: tree: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
