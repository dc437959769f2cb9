package devdocs

import "context"

// SyncResult holds the outcome of a topic sync.
type SyncResult struct {
	// Created is the number of document index entries written.
	Created int
}

// SyncProgressType indicates the type of sync progress event.
type SyncProgressType int

// Sync progress event types.
const (
	SyncStarted SyncProgressType = iota
	SyncFinished
	SyncFailed
)

// SyncProgress reports coarse progress during a sync: fraction 0 at start
// and 1 at completion, with no per-file increments.
type SyncProgress struct {
	Type     SyncProgressType
	Fraction float64
	Err      error
}

// SyncProgressFunc is called as a sync proceeds.
type SyncProgressFunc func(SyncProgress)

// TopicSyncer runs the end-to-end fetch, extract, and re-index operation for
// a topic. Within one sync the steps are strictly sequential; existing index
// entries are cleared only after a successful fetch and new entries are
// written only after successful extraction, so a failed sync leaves either
// the old complete index or the new one.
type TopicSyncer interface {
	// SyncTopic synchronizes the topic's documents with its source
	// repository. The progress callback, if provided, receives events as
	// the sync proceeds.
	// Returns ECONFLICT if a sync for the same topic is already in flight;
	// the concurrent request is rejected, not queued.
	SyncTopic(ctx context.Context, topic *Topic, progress SyncProgressFunc) (*SyncResult, error)
}
