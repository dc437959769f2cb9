package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of devdocs.DocumentService.
type DocumentService struct {
	CreateDocumentFn         func(ctx context.Context, doc *devdocs.Document) error
	FindDocumentByIDFn       func(ctx context.Context, id int64) (*devdocs.Document, error)
	FindDocumentsFn          func(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error)
	SetReadStateFn           func(ctx context.Context, id int64, read bool) error
	CountUnreadFn            func(ctx context.Context, topicID int64) (int, error)
	DeleteDocumentsByTopicFn func(ctx context.Context, topicID int64) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *devdocs.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*devdocs.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter devdocs.DocumentFilter) ([]*devdocs.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) SetReadState(ctx context.Context, id int64, read bool) error {
	return s.SetReadStateFn(ctx, id, read)
}

func (s *DocumentService) CountUnread(ctx context.Context, topicID int64) (int, error) {
	return s.CountUnreadFn(ctx, topicID)
}

func (s *DocumentService) DeleteDocumentsByTopic(ctx context.Context, topicID int64) error {
	return s.DeleteDocumentsByTopicFn(ctx, topicID)
}
