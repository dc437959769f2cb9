package devdocs

import "context"

// ArchiveFetcher retrieves a repository branch archive as a raw byte blob.
// The full archive is buffered in memory before extraction.
type ArchiveFetcher interface {
	// Fetch downloads the archive for the repository at sourceURL, trying a
	// fixed ordered list of branch names and returning the body of the
	// first successful response.
	// Returns EINVALID if sourceURL does not have the expected repository
	// host shape, and EUNAVAILABLE when every branch candidate failed.
	Fetch(ctx context.Context, sourceURL string) ([]byte, error)
}
