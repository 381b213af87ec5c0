// Package archive stores binary flight traces content-addressed by the
// SHA-256 of their bytes. The on-disk layout is an external contract:
// other consumers locate files by recomputing the same paths.
package archive

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Hash returns the lowercase hex SHA-256 of data
func Hash(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// Path returns the location of a trace within root. The first two hex
// characters of the hash become two nested directory levels, bounding the
// fan-out of any directory to 256 entries.
func Path(root, sha256Hash string) string {
	return filepath.Join(root, sha256Hash[0:1], sha256Hash[1:2], sha256Hash)
}

// Write stores data at its content-addressed location under root,
// creating intermediate directories as needed, and returns the full path.
// Raw bytes, no compression, no metadata sidecar.
func Write(root, sha256Hash string, data []byte) (string, error) {
	fullPath := Path(root, sha256Hash)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write trace file: %w", err)
	}

	return fullPath, nil
}
