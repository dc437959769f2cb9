// Package zip provides an implementation of devdocs.ArchiveExtractor over
// ZIP repository archives.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/devdocs"
)

const markdownExt = ".md"

// Ensure Extractor implements devdocs.ArchiveExtractor at compile time.
var _ devdocs.ArchiveExtractor = (*Extractor)(nil)

// Extractor extracts markdown files from ZIP archives into a local
// directory layout.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes the archive's markdown files beneath targetDir and returns
// one record per written file.
func (e *Extractor) Extract(archive []byte, targetDir, subfolder string) ([]devdocs.ExtractedFile, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, devdocs.Errorf(devdocs.EINTERNAL, "unreadable archive: %v", err)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, devdocs.Errorf(devdocs.EINTERNAL, "create target directory: %v", err)
	}

	var files []devdocs.ExtractedFile
	for _, f := range r.File {
		name := f.Name

		// Skip directory entries and non-markdown files.
		if strings.HasSuffix(name, "/") || !strings.HasSuffix(name, markdownExt) {
			continue
		}
		if hasHiddenSegment(name) {
			continue
		}

		rel := name
		if subfolder != "" {
			// Substring match, not segment-aware: an occurrence anywhere
			// in the path qualifies, and the path is rewritten to start at
			// the first occurrence.
			idx := strings.Index(name, subfolder)
			if idx == -1 {
				continue
			}
			rel = name[idx:]
		} else {
			// Drop the archive's synthetic root folder (e.g. "repo-main/").
			rest, ok := cutRoot(name)
			if !ok {
				continue
			}
			rel = rest
		}

		data, err := readEntry(f)
		if err != nil {
			return nil, devdocs.Errorf(devdocs.EINTERNAL, "read archive entry %q: %v", name, err)
		}

		localPath := filepath.Join(targetDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
			return nil, devdocs.Errorf(devdocs.EINTERNAL, "create directory for %q: %v", rel, err)
		}
		if err := os.WriteFile(localPath, data, 0644); err != nil {
			return nil, devdocs.Errorf(devdocs.EINTERNAL, "write %q: %v", rel, err)
		}

		files = append(files, devdocs.ExtractedFile{
			LocalPath:    localPath,
			RelativePath: rel,
			Hash:         fmt.Sprintf("%x", xxhash.Sum64(data)),
		})
	}

	return files, nil
}

// cutRoot removes the first path segment. ok is false when nothing remains.
func cutRoot(name string) (string, bool) {
	_, rest, found := strings.Cut(name, "/")
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}

// hasHiddenSegment reports whether any path segment begins with a dot.
func hasHiddenSegment(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
