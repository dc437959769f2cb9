package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicDirName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Laravel Docs", "laravel_docs"},
		{"Python Docs", "python_docs"},
		{"vue", "vue"},
		{"Multi Word Topic Name", "multi_word_topic_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.TopicDirName(tt.name))
		})
	}
}

func TestTopicDir(t *testing.T) {
	t.Parallel()

	t.Run("creates the directory under the docs root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		dir, err := fs.TopicDir(root, "Laravel Docs")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "laravel_docs"), dir)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		_, err := fs.TopicDir(root, "Laravel Docs")
		require.NoError(t, err)
		_, err = fs.TopicDir(root, "Laravel Docs")
		assert.NoError(t, err)
	})
}

func TestReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title"), 0644))

		content, err := fs.ReadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "# Title", content)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadDocument(filepath.Join(t.TempDir(), "missing.md"))
		require.Error(t, err)
		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	})
}

func TestRemoveDir(t *testing.T) {
	t.Parallel()

	t.Run("removes a directory with contents", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "topic")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "guide"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "guide", "a.md"), []byte("a"), 0644))

		require.NoError(t, fs.RemoveDir(dir))

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, fs.RemoveDir(filepath.Join(t.TempDir(), "missing")))
	})
}
