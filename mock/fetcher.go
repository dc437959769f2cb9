package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.ArchiveFetcher = (*ArchiveFetcher)(nil)

// ArchiveFetcher is a mock implementation of devdocs.ArchiveFetcher.
type ArchiveFetcher struct {
	FetchFn func(ctx context.Context, sourceURL string) ([]byte, error)
}

func (f *ArchiveFetcher) Fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	return f.FetchFn(ctx, sourceURL)
}
