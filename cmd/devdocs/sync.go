package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/github"
	"golang.org/x/sync/errgroup"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if c.All {
		return c.runAll(deps)
	}

	if c.Name == "" {
		fmt.Fprintf(deps.Stderr, "error: specify a topic name or use --all\n")
		return devdocs.Errorf(devdocs.EINVALID, "specify a topic name or use --all")
	}

	topic, err := findTopicByName(deps, c.Name)
	if err != nil {
		return err
	}

	return syncOne(deps, topic)
}

// runAll syncs every registered topic, a few at a time. Failures are
// reported per topic and do not stop the others.
func (c *SyncCmd) runAll(deps *Dependencies) error {
	topics, err := deps.Topics.FindTopics(deps.Ctx, devdocs.TopicFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics found. Use 'devdocs add' to create one.")
		return nil
	}

	// The goroutines share stdout/stderr, so wrap both in a single lock to
	// keep their writes serialized.
	var mu sync.Mutex
	locked := *deps
	locked.Stdout = &lockedWriter{mu: &mu, w: deps.Stdout}
	locked.Stderr = &lockedWriter{mu: &mu, w: deps.Stderr}

	g := &errgroup.Group{}
	g.SetLimit(c.Concurrency)
	for _, topic := range topics {
		g.Go(func() error {
			return syncOne(&locked, topic)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("one or more topics failed to sync")
	}

	fmt.Fprintf(deps.Stdout, "Synced %d topics\n", len(topics))
	return nil
}

func syncOne(deps *Dependencies, topic *devdocs.Topic) error {
	fmt.Fprintf(deps.Stdout, "Syncing %q from %s...\n", topic.Name, topic.SourceURL)

	result, err := deps.Syncer.SyncTopic(deps.Ctx, topic, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		if devdocs.ErrorCode(err) == devdocs.EUNAVAILABLE {
			fmt.Fprintf(deps.Stderr, "Hint: check that the repository exists, is public, and has one of these branches: %s\n",
				strings.Join(github.BranchCandidates, ", "))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "  indexed %d documents for %q\n", result.Created, topic.Name)
	return nil
}

// lockedWriter serializes writes from concurrent topic syncs.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
