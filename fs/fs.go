// Package fs provides the on-disk layout for topic documentation: one
// directory per topic under a docs root, with extracted markdown files
// beneath it.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/devdocs"
)

// TopicDirName derives a topic's directory name from its display name:
// lowercased, spaces replaced with underscores.
func TopicDirName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// TopicDir returns the topic's directory under docsRoot, creating it (and
// parents) if absent.
func TopicDir(docsRoot, name string) (string, error) {
	dir := filepath.Join(docsRoot, TopicDirName(name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// EnsureDir creates the directory and any parents if absent.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ReadDocument reads a stored document's content from disk.
// Returns ENOTFOUND if the file no longer exists.
func ReadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", devdocs.Errorf(devdocs.ENOTFOUND, "document file not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RemoveDir deletes a directory and all its contents. Removing a missing
// directory is not an error.
func RemoveDir(path string) error {
	return os.RemoveAll(path)
}
