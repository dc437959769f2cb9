// Package github provides an HTTP-based implementation of
// devdocs.ArchiveFetcher that downloads GitHub branch archives.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/devdocs"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout bounds each branch-candidate attempt.
const DefaultFetchTimeout = 30 * time.Second

// DefaultHost is the repository host accepted by default.
const DefaultHost = "github.com"

// BranchCandidates is the fixed ordered list of branch names tried during a
// fetch. A single pass through this list is the entire resilience strategy;
// there are no retries and no backoff.
var BranchCandidates = []string{"main", "master", "develop", "dev"}

// Ensure Fetcher implements devdocs.ArchiveFetcher at compile time.
var _ devdocs.ArchiveFetcher = (*Fetcher)(nil)

// Fetcher downloads repository branch archives as ZIP blobs. The full
// archive body is buffered in memory.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	host    string
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each branch-candidate attempt.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHost overrides the accepted repository host. Used by tests to point
// the fetcher at a local server.
func WithHost(host string) Option {
	return func(f *Fetcher) {
		f.host = host
	}
}

// WithLimiter overrides the token bucket pacing branch-candidate requests.
func WithLimiter(l *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		host:    DefaultHost,
		// One request per second with no bursting keeps the candidate
		// pass polite toward the archive host.
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch downloads the repository archive, trying each branch candidate in
// order and returning the body of the first 200 response. Any other status
// or transport error means "try the next candidate".
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	repoURL, err := f.normalizeSource(sourceURL)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, branch := range BranchCandidates {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, ok, err := f.fetchBranch(ctx, repoURL, branch)
		if err != nil {
			lastErr = err
			continue
		}
		if !ok {
			// Non-success status: indistinguishable from a missing
			// branch, so it is not recorded as the underlying error.
			continue
		}
		return body, nil
	}

	if lastErr != nil {
		return nil, devdocs.Errorf(devdocs.EUNAVAILABLE, "could not download repository from any branch: %v", lastErr)
	}
	return nil, devdocs.Errorf(devdocs.EUNAVAILABLE, "repository not found or no accessible branches")
}

// normalizeSource validates the source URL shape and trims a trailing .git.
func (f *Fetcher) normalizeSource(sourceURL string) (string, error) {
	repoURL := strings.TrimSuffix(sourceURL, ".git")

	u, err := url.Parse(repoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host != f.host ||
		u.Path == "" || u.Path == "/" {
		return "", devdocs.Errorf(devdocs.EINVALID, "invalid repository URL %q: expected https://%s/<owner>/<repo>", sourceURL, f.host)
	}

	return repoURL, nil
}

// fetchBranch retrieves one branch archive. ok reports whether the server
// answered with a success status; err reports transport-level failures.
func (f *Fetcher) fetchBranch(ctx context.Context, repoURL, branch string) (body []byte, ok bool, err error) {
	archiveURL := fmt.Sprintf("%s/archive/refs/heads/%s.zip", repoURL, branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, nil
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}

	return body, true, nil
}
