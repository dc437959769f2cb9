package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.TopicSyncer = (*TopicSyncer)(nil)

// TopicSyncer is a mock implementation of devdocs.TopicSyncer.
type TopicSyncer struct {
	SyncTopicFn func(ctx context.Context, topic *devdocs.Topic, progress devdocs.SyncProgressFunc) (*devdocs.SyncResult, error)
}

func (s *TopicSyncer) SyncTopic(ctx context.Context, topic *devdocs.Topic, progress devdocs.SyncProgressFunc) (*devdocs.SyncResult, error) {
	return s.SyncTopicFn(ctx, topic, progress)
}
