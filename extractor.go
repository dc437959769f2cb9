package devdocs

// ExtractedFile describes one markdown file written to disk during
// extraction.
type ExtractedFile struct {
	// LocalPath is the path of the written file, using host separators.
	LocalPath string

	// RelativePath is the slash-separated path within the topic's document
	// set. It drives both storage layout and tree display ordering.
	RelativePath string

	// Hash is a hash of the file contents, used for change detection.
	Hash string
}

// ArchiveExtractor extracts markdown files from a repository archive and
// writes them to a local directory layout.
type ArchiveExtractor interface {
	// Extract iterates the archive and writes its markdown files beneath
	// targetDir, creating it and any intermediate directories as needed.
	// Directory entries, non-markdown entries, and entries with a hidden
	// (dot-prefixed) path segment are skipped.
	//
	// When subfolder is non-empty, only entries whose full path contains it
	// as a substring are extracted, and each path is rewritten to start at
	// the first occurrence of subfolder. When subfolder is empty, the
	// archive's synthetic root segment (e.g. "repo-main/") is dropped.
	//
	// Returns EINTERNAL if the archive is unreadable or a write fails.
	Extract(archive []byte, targetDir, subfolder string) ([]ExtractedFile, error)
}
