// Package download provides sync orchestration for topics. It coordinates
// archive fetching, markdown extraction, and re-indexing of a topic's
// document rows, and enforces one active sync per topic.
package download

import (
	"context"
	"path"
	"sync"

	"github.com/fwojciec/devdocs"
)

// Ensure Syncer implements devdocs.TopicSyncer at compile time.
var _ devdocs.TopicSyncer = (*Syncer)(nil)

// Syncer runs the fetch -> clear -> extract -> re-index pipeline for a
// topic. A Syncer is safe for concurrent use; syncs for distinct topics may
// run in parallel, while a second sync for the same topic is rejected.
type Syncer struct {
	Fetcher   devdocs.ArchiveFetcher
	Extractor devdocs.ArchiveExtractor
	Topics    devdocs.TopicService
	Documents devdocs.DocumentService

	mu       sync.Mutex
	inFlight map[int64]bool
}

// SyncTopic synchronizes a topic's documents with its source repository.
//
// The steps are strictly sequential: the fetch completes fully before
// extraction begins, and extraction completes fully before the index is
// rewritten. Existing rows are cleared only after a successful fetch, and
// new rows are written only after successful extraction, so no partial index
// state is ever observable.
func (s *Syncer) SyncTopic(ctx context.Context, topic *devdocs.Topic, progress devdocs.SyncProgressFunc) (*devdocs.SyncResult, error) {
	if !s.tryAcquire(topic.ID) {
		return nil, devdocs.Errorf(devdocs.ECONFLICT, "sync already in progress for topic %q", topic.Name)
	}
	defer s.release(topic.ID)

	notify := func(p devdocs.SyncProgress) {
		if progress != nil {
			progress(p)
		}
	}
	fail := func(err error) (*devdocs.SyncResult, error) {
		notify(devdocs.SyncProgress{Type: devdocs.SyncFailed, Err: err})
		return nil, err
	}

	notify(devdocs.SyncProgress{Type: devdocs.SyncStarted, Fraction: 0})

	archive, err := s.Fetcher.Fetch(ctx, topic.SourceURL)
	if err != nil {
		return fail(err)
	}

	// The old index is cleared only now, after a successful fetch, so a
	// failed download leaves the previous document set intact.
	if err := s.Documents.DeleteDocumentsByTopic(ctx, topic.ID); err != nil {
		return fail(err)
	}

	files, err := s.Extractor.Extract(archive, topic.LocalPath, topic.Subfolder)
	if err != nil {
		return fail(err)
	}

	created := 0
	for _, file := range files {
		filename := path.Base(file.RelativePath)
		doc := &devdocs.Document{
			TopicID:      topic.ID,
			Title:        devdocs.TitleFromFilename(filename),
			Filename:     filename,
			FilePath:     file.LocalPath,
			RelativePath: file.RelativePath,
			ContentHash:  file.Hash,
		}
		if err := s.Documents.CreateDocument(ctx, doc); err != nil {
			return fail(err)
		}
		created++
	}

	if err := s.Topics.TouchTopic(ctx, topic.ID); err != nil {
		return fail(err)
	}

	notify(devdocs.SyncProgress{Type: devdocs.SyncFinished, Fraction: 1})

	return &devdocs.SyncResult{Created: created}, nil
}

// tryAcquire marks a topic sync as in flight. Reports false when one
// already is.
func (s *Syncer) tryAcquire(topicID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		s.inFlight = make(map[int64]bool)
	}
	if s.inFlight[topicID] {
		return false
	}
	s.inFlight[topicID] = true
	return true
}

func (s *Syncer) release(topicID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, topicID)
}
