package mock

import "github.com/fwojciec/devdocs"

var _ devdocs.ArchiveExtractor = (*ArchiveExtractor)(nil)

// ArchiveExtractor is a mock implementation of devdocs.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(archive []byte, targetDir, subfolder string) ([]devdocs.ExtractedFile, error)
}

func (e *ArchiveExtractor) Extract(archive []byte, targetDir, subfolder string) ([]devdocs.ExtractedFile, error) {
	return e.ExtractFn(archive, targetDir, subfolder)
}
