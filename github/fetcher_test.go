package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// newTestFetcher returns a Fetcher pointed at the test server with rate
// limiting effectively disabled.
func newTestFetcher(t *testing.T, ts *httptest.Server) *github.Fetcher {
	t.Helper()
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	return github.NewFetcher(
		github.WithHost(u.Host),
		github.WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
}

// branchRecorder serves archives per branch and records requested paths.
type branchRecorder struct {
	mu       sync.Mutex
	paths    []string
	statuses map[string]int // branch name -> status
	body     string
}

func (r *branchRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.paths = append(r.paths, req.URL.Path)
	r.mu.Unlock()

	for branch, status := range r.statuses {
		if req.URL.Path == "/owner/repo/archive/refs/heads/"+branch+".zip" {
			w.WriteHeader(status)
			if status == http.StatusOK {
				w.Write([]byte(r.body))
			}
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (r *branchRecorder) requested() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("falls back to master and does not attempt develop or dev", func(t *testing.T) {
		t.Parallel()

		rec := &branchRecorder{
			statuses: map[string]int{
				"main":    http.StatusNotFound,
				"master":  http.StatusOK,
				"develop": http.StatusOK,
				"dev":     http.StatusOK,
			},
			body: "archive-bytes",
		}
		ts := httptest.NewServer(rec)
		defer ts.Close()

		f := newTestFetcher(t, ts)

		body, err := f.Fetch(context.Background(), ts.URL+"/owner/repo")
		require.NoError(t, err)
		assert.Equal(t, "archive-bytes", string(body))

		assert.Equal(t, []string{
			"/owner/repo/archive/refs/heads/main.zip",
			"/owner/repo/archive/refs/heads/master.zip",
		}, rec.requested(), "first success short-circuits remaining candidates")
	})

	t.Run("returns the first branch's body when main succeeds", func(t *testing.T) {
		t.Parallel()

		rec := &branchRecorder{
			statuses: map[string]int{"main": http.StatusOK},
			body:     "main-bytes",
		}
		ts := httptest.NewServer(rec)
		defer ts.Close()

		f := newTestFetcher(t, ts)

		body, err := f.Fetch(context.Background(), ts.URL+"/owner/repo")
		require.NoError(t, err)
		assert.Equal(t, "main-bytes", string(body))
		assert.Len(t, rec.requested(), 1)
	})

	t.Run("returns EUNAVAILABLE when every candidate fails", func(t *testing.T) {
		t.Parallel()

		rec := &branchRecorder{statuses: map[string]int{}}
		ts := httptest.NewServer(rec)
		defer ts.Close()

		f := newTestFetcher(t, ts)

		_, err := f.Fetch(context.Background(), ts.URL+"/owner/repo")
		require.Error(t, err)
		assert.Equal(t, devdocs.EUNAVAILABLE, devdocs.ErrorCode(err))
		assert.Contains(t, devdocs.ErrorMessage(err), "not found")
		assert.Len(t, rec.requested(), 4, "all four candidates are attempted")
	})

	t.Run("carries the underlying transport error", func(t *testing.T) {
		t.Parallel()

		// Closed server: every attempt fails at the transport level.
		ts := httptest.NewServer(http.NotFoundHandler())
		u, err := url.Parse(ts.URL)
		require.NoError(t, err)
		ts.Close()

		f := github.NewFetcher(
			github.WithHost(u.Host),
			github.WithLimiter(rate.NewLimiter(rate.Inf, 1)),
		)

		_, err = f.Fetch(context.Background(), ts.URL+"/owner/repo")
		require.Error(t, err)
		assert.Equal(t, devdocs.EUNAVAILABLE, devdocs.ErrorCode(err))
		assert.Contains(t, devdocs.ErrorMessage(err), "could not download repository from any branch")
	})

	t.Run("trims a trailing .git from the source URL", func(t *testing.T) {
		t.Parallel()

		rec := &branchRecorder{
			statuses: map[string]int{"main": http.StatusOK},
			body:     "archive-bytes",
		}
		ts := httptest.NewServer(rec)
		defer ts.Close()

		f := newTestFetcher(t, ts)

		body, err := f.Fetch(context.Background(), ts.URL+"/owner/repo.git")
		require.NoError(t, err)
		assert.Equal(t, "archive-bytes", string(body))
		assert.Equal(t, []string{"/owner/repo/archive/refs/heads/main.zip"}, rec.requested())
	})

	t.Run("returns EINVALID for a non-GitHub URL", func(t *testing.T) {
		t.Parallel()

		f := github.NewFetcher() // default host: github.com

		_, err := f.Fetch(context.Background(), "https://gitlab.com/owner/repo")
		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("returns EINVALID for a URL without a repository path", func(t *testing.T) {
		t.Parallel()

		f := github.NewFetcher()

		_, err := f.Fetch(context.Background(), "https://github.com/")
		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}
