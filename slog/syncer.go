package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/devdocs"
)

// Ensure LoggingSyncer implements devdocs.TopicSyncer.
var _ devdocs.TopicSyncer = (*LoggingSyncer)(nil)

// LoggingSyncer wraps a TopicSyncer with debug logging.
type LoggingSyncer struct {
	next   devdocs.TopicSyncer
	logger *slog.Logger
}

// NewLoggingSyncer creates a new LoggingSyncer.
func NewLoggingSyncer(next devdocs.TopicSyncer, logger *slog.Logger) *LoggingSyncer {
	return &LoggingSyncer{next: next, logger: logger}
}

// SyncTopic delegates to the wrapped syncer and logs the operation.
func (s *LoggingSyncer) SyncTopic(ctx context.Context, topic *devdocs.Topic, progress devdocs.SyncProgressFunc) (result *devdocs.SyncResult, err error) {
	defer func(begin time.Time) {
		created := 0
		if result != nil {
			created = result.Created
		}
		s.logger.Info("topic sync",
			"topic", topic.Name,
			"created", created,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SyncTopic(ctx, topic, progress)
}
