package devdocs

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// Document represents one markdown file belonging to a topic, tracked with
// read/unread state. The file contents live on disk at FilePath; the store
// holds only the index entry.
type Document struct {
	ID           int64     `json:"id"`
	TopicID      int64     `json:"topicId"`
	Title        string    `json:"title"`
	Filename     string    `json:"filename"`
	FilePath     string    `json:"filePath"`
	RelativePath string    `json:"relativePath"`
	ContentHash  string    `json:"contentHash"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.TopicID == 0 {
		return Errorf(EINVALID, "document topic ID required")
	}
	if d.Filename == "" {
		return Errorf(EINVALID, "document filename required")
	}
	if d.RelativePath == "" {
		return Errorf(EINVALID, "document relative path required")
	}
	return nil
}

// DocumentService represents a service for managing document index entries.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id int64) (*Document, error)

	// FindDocuments retrieves documents matching the filter, sorted by
	// relative path ascending. This ordering is what makes the folder tree
	// render deterministically.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// SetReadState updates the read flag and the update timestamp.
	// Returns ENOTFOUND if document does not exist.
	SetReadState(ctx context.Context, id int64, read bool) error

	// CountUnread returns the number of unread documents for a topic.
	CountUnread(ctx context.Context, topicID int64) (int, error)

	// DeleteDocumentsByTopic removes all documents for a topic. Used
	// immediately before re-population during sync so that stale entries
	// from removed files never survive.
	DeleteDocumentsByTopic(ctx context.Context, topicID int64) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID      *int64 `json:"id"`
	TopicID *int64 `json:"topicId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TitleFromFilename derives a display title from a markdown filename: the
// extension is stripped, underscores become spaces, and words are
// title-cased (first letter of each letter run upper, the rest lower).
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")
	name = strings.ReplaceAll(name, "_", " ")

	var b strings.Builder
	b.Grow(len(name))
	prevLetter := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
