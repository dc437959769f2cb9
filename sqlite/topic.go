package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/devdocs"
)

// Compile-time interface verification.
var _ devdocs.TopicService = (*TopicService)(nil)

// TopicService implements devdocs.TopicService using SQLite.
type TopicService struct {
	db *DB
}

// NewTopicService creates a new TopicService.
func NewTopicService(db *DB) *TopicService {
	return &TopicService{db: db}
}

// CreateTopic creates a new topic. The store assigns the ID.
func (s *TopicService) CreateTopic(ctx context.Context, topic *devdocs.Topic) error {
	if err := topic.Validate(); err != nil {
		return err
	}

	// Reject duplicate names before writing so no partial state is created.
	// The UNIQUE constraint on name backs this up at the schema level.
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM topics WHERE name = ?
	`, topic.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return devdocs.Errorf(devdocs.ECONFLICT, "topic %q already exists", topic.Name)
	}

	now := storedNow()
	topic.CreatedAt = now
	topic.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO topics (name, source_url, local_path, subfolder, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, topic.Name, topic.SourceURL, topic.LocalPath, topic.Subfolder,
		topic.CreatedAt.Format(time.RFC3339), topic.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return devdocs.Errorf(devdocs.ECONFLICT, "topic %q already exists", topic.Name)
		}
		return err
	}

	topic.ID, err = result.LastInsertId()
	return err
}

// FindTopicByID retrieves a topic by ID.
func (s *TopicService) FindTopicByID(ctx context.Context, id int64) (*devdocs.Topic, error) {
	var topic devdocs.Topic
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, local_path, subfolder, created_at, updated_at
		FROM topics
		WHERE id = ?
	`, id).Scan(&topic.ID, &topic.Name, &topic.SourceURL, &topic.LocalPath, &topic.Subfolder,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, devdocs.Errorf(devdocs.ENOTFOUND, "topic not found")
	}
	if err != nil {
		return nil, err
	}

	if topic.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if topic.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &topic, nil
}

// FindTopics retrieves topics matching the filter, sorted by name ascending.
func (s *TopicService) FindTopics(ctx context.Context, filter devdocs.TopicFilter) ([]*devdocs.Topic, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, local_path, subfolder, created_at, updated_at FROM topics WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*devdocs.Topic
	for rows.Next() {
		var topic devdocs.Topic
		var createdAt, updatedAt string

		if err := rows.Scan(&topic.ID, &topic.Name, &topic.SourceURL, &topic.LocalPath, &topic.Subfolder,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if topic.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if topic.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		topics = append(topics, &topic)
	}

	return topics, rows.Err()
}

// DeleteTopic permanently removes a topic. Document rows go with it via the
// ON DELETE CASCADE foreign key.
func (s *TopicService) DeleteTopic(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM topics WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return devdocs.Errorf(devdocs.ENOTFOUND, "topic not found")
	}

	return nil
}

// TouchTopic sets the topic's updated_at timestamp to now. Called after a
// successful sync.
func (s *TopicService) TouchTopic(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE topics SET updated_at = ? WHERE id = ?
	`, storedNow().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return devdocs.Errorf(devdocs.ENOTFOUND, "topic not found")
	}

	return nil
}
