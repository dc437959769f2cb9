// Package slog provides logging decorators for the service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/devdocs"
)

// Ensure LoggingFetcher implements devdocs.ArchiveFetcher.
var _ devdocs.ArchiveFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an ArchiveFetcher with debug logging.
type LoggingFetcher struct {
	next   devdocs.ArchiveFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next devdocs.ArchiveFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, sourceURL string) (archive []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("archive fetch",
			"url", sourceURL,
			"bytes", len(archive),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, sourceURL)
}
