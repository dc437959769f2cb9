package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.TopicService = (*TopicService)(nil)

// TopicService is a mock implementation of devdocs.TopicService.
type TopicService struct {
	CreateTopicFn   func(ctx context.Context, topic *devdocs.Topic) error
	FindTopicByIDFn func(ctx context.Context, id int64) (*devdocs.Topic, error)
	FindTopicsFn    func(ctx context.Context, filter devdocs.TopicFilter) ([]*devdocs.Topic, error)
	DeleteTopicFn   func(ctx context.Context, id int64) error
	TouchTopicFn    func(ctx context.Context, id int64) error
}

func (s *TopicService) CreateTopic(ctx context.Context, topic *devdocs.Topic) error {
	return s.CreateTopicFn(ctx, topic)
}

func (s *TopicService) FindTopicByID(ctx context.Context, id int64) (*devdocs.Topic, error) {
	return s.FindTopicByIDFn(ctx, id)
}

func (s *TopicService) FindTopics(ctx context.Context, filter devdocs.TopicFilter) ([]*devdocs.Topic, error) {
	return s.FindTopicsFn(ctx, filter)
}

func (s *TopicService) DeleteTopic(ctx context.Context, id int64) error {
	return s.DeleteTopicFn(ctx, id)
}

func (s *TopicService) TouchTopic(ctx context.Context, id int64) error {
	return s.TouchTopicFn(ctx, id)
}
