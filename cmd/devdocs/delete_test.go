package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/devdocs"
	main "github.com/fwojciec/devdocs/cmd/devdocs"
	"github.com/fwojciec/devdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Name: "Laravel Docs"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes the topic and its directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "laravel_docs")
		require.NoError(t, os.MkdirAll(dir, 0o755))

		var deletedID int64
		topics := &mock.TopicService{
			FindTopicsFn: func(_ context.Context, _ devdocs.TopicFilter) ([]*devdocs.Topic, error) {
				return []*devdocs.Topic{{ID: 8, Name: "Laravel Docs", LocalPath: dir}}, nil
			},
			DeleteTopicFn: func(_ context.Context, id int64) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Topics: topics,
		}

		cmd := &main.DeleteCmd{Name: "Laravel Docs", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, int64(8), deletedID)
		assert.Contains(t, stdout.String(), `Deleted topic "Laravel Docs"`)
		assert.NoDirExists(t, dir)
	})

	t.Run("unknown topic reports not found", func(t *testing.T) {
		t.Parallel()

		topics := &mock.TopicService{
			FindTopicsFn: func(_ context.Context, _ devdocs.TopicFilter) ([]*devdocs.Topic, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Topics: topics,
		}

		cmd := &main.DeleteCmd{Name: "Nope", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	})
}
