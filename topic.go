package devdocs

import (
	"context"
	"time"
)

// Topic represents a registered documentation source: one GitHub repository
// plus an optional subfolder scope.
type Topic struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`
	LocalPath string    `json:"localPath"`
	Subfolder string    `json:"subfolder,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the topic contains invalid fields.
func (t *Topic) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "topic name required")
	}
	if t.SourceURL == "" {
		return Errorf(EINVALID, "topic source URL required")
	}
	return nil
}

// TopicService represents a service for managing topics.
type TopicService interface {
	// CreateTopic creates a new topic.
	// Returns ECONFLICT if a topic with the same name already exists;
	// no partial write occurs in that case.
	CreateTopic(ctx context.Context, topic *Topic) error

	// FindTopicByID retrieves a topic by ID.
	// Returns ENOTFOUND if topic does not exist.
	FindTopicByID(ctx context.Context, id int64) (*Topic, error)

	// FindTopics retrieves topics matching the filter, sorted by name
	// ascending.
	FindTopics(ctx context.Context, filter TopicFilter) ([]*Topic, error)

	// DeleteTopic permanently removes a topic and all associated documents.
	// Returns ENOTFOUND if topic does not exist.
	DeleteTopic(ctx context.Context, id int64) error

	// TouchTopic sets the topic's updated_at timestamp to now.
	// Returns ENOTFOUND if topic does not exist.
	TouchTopic(ctx context.Context, id int64) error
}

// TopicFilter represents a filter for FindTopics.
type TopicFilter struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
