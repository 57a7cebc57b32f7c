// Package storage writes uploaded customer images under a fixed public root.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// BuildName derives a collision-free destination name from the upload's
// original filename: `{unix-timestamp}-{sanitized name}`.
func BuildName(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), sanitize(original))
}

// sanitize replaces spaces with underscores and strips any directory
// component so an upload name cannot escape the public root.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}

// Store writes content at name under the public root, overwriting any
// existing file at that path.
func (s *FileStore) Store(name string, content []byte) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create image directory: %w", err)
	}
	dest := filepath.Join(s.root, filepath.Base(name))
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}
	return nil
}

// Remove deletes the file backing a stored image path. Removing an absent
// file is an error.
func (s *FileStore) Remove(path string) error {
	dest := filepath.Join(s.root, filepath.Base(path))
	if err := os.Remove(dest); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
