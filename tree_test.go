package devdocs_test

import (
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsFromPaths(paths ...string) []*devdocs.Document {
	docs := make([]*devdocs.Document, len(paths))
	for i, p := range paths {
		docs[i] = &devdocs.Document{ID: int64(i + 1), TopicID: 1, RelativePath: p}
	}
	return docs
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	t.Run("empty filter reproduces every document exactly once", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(
			"README.md",
			"guide/install.md",
			"guide/advanced/tuning.md",
			"reference/api.md",
		)

		tree := devdocs.BuildTree(docs, "")

		assert.Equal(t, len(docs), tree.Count())

		// Each document is reachable by following the folder keys derived
		// from splitting its relative path.
		require.Len(t, tree.Files, 1)
		assert.Equal(t, "README.md", tree.Files[0].RelativePath)

		guide := tree.Folders["guide"]
		require.NotNil(t, guide)
		require.Len(t, guide.Files, 1)
		assert.Equal(t, "guide/install.md", guide.Files[0].RelativePath)

		advanced := guide.Folders["advanced"]
		require.NotNil(t, advanced)
		require.Len(t, advanced.Files, 1)
		assert.Equal(t, "guide/advanced/tuning.md", advanced.Files[0].RelativePath)

		reference := tree.Folders["reference"]
		require.NotNil(t, reference)
		require.Len(t, reference.Files, 1)
	})

	t.Run("filter is a case-insensitive substring match", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(
			"guide/Install.md",
			"guide/uninstall.md",
			"reference/api.md",
		)

		tree := devdocs.BuildTree(docs, "INSTALL")

		assert.Equal(t, 2, tree.Count())
		assert.Nil(t, tree.Folders["reference"])
	})

	t.Run("empty input yields empty tree", func(t *testing.T) {
		t.Parallel()

		tree := devdocs.BuildTree(nil, "")

		assert.Zero(t, tree.Count())
		assert.Empty(t, tree.FolderNames())
	})

	t.Run("folder names are sorted alphabetically", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(
			"zebra/a.md",
			"alpha/b.md",
			"mid/c.md",
		)

		tree := devdocs.BuildTree(docs, "")

		assert.Equal(t, []string{"alpha", "mid", "zebra"}, tree.FolderNames())
	})

	t.Run("file order within a folder follows input order", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(
			"guide/b.md",
			"guide/a.md",
			"guide/c.md",
		)

		tree := devdocs.BuildTree(docs, "")

		guide := tree.Folders["guide"]
		require.NotNil(t, guide)
		require.Len(t, guide.Files, 3)
		assert.Equal(t, "guide/b.md", guide.Files[0].RelativePath)
		assert.Equal(t, "guide/a.md", guide.Files[1].RelativePath)
		assert.Equal(t, "guide/c.md", guide.Files[2].RelativePath)
	})

	t.Run("backslash separators are normalized", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(`guide\install.md`)

		tree := devdocs.BuildTree(docs, "")

		guide := tree.Folders["guide"]
		require.NotNil(t, guide)
		assert.Len(t, guide.Files, 1)
	})
}
