package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/devdocs"
	main "github.com/fwojciec/devdocs/cmd/devdocs"
	"github.com/fwojciec/devdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsTestDeps(t *testing.T, stdout, stderr *bytes.Buffer) *main.Dependencies {
	t.Helper()

	topics := &mock.TopicService{
		FindTopicsFn: func(_ context.Context, _ devdocs.TopicFilter) ([]*devdocs.Topic, error) {
			return []*devdocs.Topic{{ID: 1, Name: "Laravel Docs"}}, nil
		},
	}
	documents := &mock.DocumentService{
		FindDocumentsFn: func(_ context.Context, _ devdocs.DocumentFilter) ([]*devdocs.Document, error) {
			return []*devdocs.Document{
				{ID: 1, RelativePath: "README.md", Filename: "README.md", IsRead: true},
				{ID: 2, RelativePath: "guide/install.md", Filename: "install.md"},
				{ID: 3, RelativePath: "guide/upgrade.md", Filename: "upgrade.md"},
			}, nil
		},
	}

	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Topics:    topics,
		Documents: documents,
	}
}

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints an indented tree with unread markers", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := docsTestDeps(t, stdout, stderr)

		cmd := &main.DocsCmd{Name: "Laravel Docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Documents for Laravel Docs (3 files):")
		assert.Contains(t, output, "guide/\n")
		assert.Contains(t, output, "  install.md *")
		assert.Contains(t, output, "README.md\n")
		assert.NotContains(t, output, "README.md *")
	})

	t.Run("search narrows the tree", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := docsTestDeps(t, stdout, stderr)

		cmd := &main.DocsCmd{Name: "Laravel Docs", Search: "install"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "(1 files)")
		assert.NotContains(t, stdout.String(), "upgrade.md")
	})

	t.Run("search with no matches says so", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := docsTestDeps(t, stdout, stderr)

		cmd := &main.DocsCmd{Name: "Laravel Docs", Search: "zzz"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No documents match "zzz"`)
	})

	t.Run("unsynced topic reports missing documents", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := docsTestDeps(t, stdout, stderr)
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ devdocs.DocumentFilter) ([]*devdocs.Document, error) {
				return nil, nil
			},
		}

		cmd := &main.DocsCmd{Name: "Laravel Docs"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), "devdocs sync")
	})
}
