package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/devdocs"
)

// Compile-time interface verification.
var _ devdocs.DocumentService = (*DocumentService)(nil)

// DocumentService implements devdocs.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document. The store assigns the ID.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *devdocs.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	now := storedNow()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (topic_id, title, filename, file_path, relative_path, content_hash, is_read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.TopicID, doc.Title, doc.Filename, doc.FilePath, doc.RelativePath, doc.ContentHash,
		boolToInt(doc.IsRead), doc.CreatedAt.Format(time.RFC3339), doc.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	doc.ID, err = result.LastInsertId()
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*devdocs.Document, error) {
	var doc devdocs.Document
	var isRead int
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, topic_id, title, filename, file_path, relative_path, content_hash, is_read, created_at, updated_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.TopicID, &doc.Title, &doc.Filename, &doc.FilePath, &doc.RelativePath,
		&doc.ContentHash, &isRead, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, devdocs.Errorf(devdocs.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.IsRead = isRead != 0
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, sorted by relative
// path ascending.
func (s *DocumentService) FindDocuments(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, topic_id, title, filename, file_path, relative_path, content_hash, is_read, created_at, updated_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.TopicID != nil {
		query.WriteString(" AND topic_id = ?")
		args = append(args, *filter.TopicID)
	}

	query.WriteString(" ORDER BY relative_path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*devdocs.Document
	for rows.Next() {
		var doc devdocs.Document
		var isRead int
		var createdAt, updatedAt string

		if err := rows.Scan(&doc.ID, &doc.TopicID, &doc.Title, &doc.Filename, &doc.FilePath, &doc.RelativePath,
			&doc.ContentHash, &isRead, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		doc.IsRead = isRead != 0
		if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// SetReadState updates the read flag and refreshes the update timestamp.
func (s *DocumentService) SetReadState(ctx context.Context, id int64, read bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents SET is_read = ?, updated_at = ? WHERE id = ?
	`, boolToInt(read), storedNow().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return devdocs.Errorf(devdocs.ENOTFOUND, "document not found")
	}

	return nil
}

// CountUnread returns the number of unread documents for a topic.
func (s *DocumentService) CountUnread(ctx context.Context, topicID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM documents WHERE topic_id = ? AND is_read = 0
	`, topicID).Scan(&count)
	return count, err
}

// DeleteDocumentsByTopic removes all documents for a topic.
func (s *DocumentService) DeleteDocumentsByTopic(ctx context.Context, topicID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE topic_id = ?", topicID)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
