package devdocs

import (
	"sort"
	"strings"
)

// Tree is a hierarchical folder/file view over a topic's documents, derived
// from their relative paths. It is a disposable presentation structure:
// rebuilt on every browse or search action and never persisted.
type Tree struct {
	Folders map[string]*Tree `json:"folders,omitempty"`
	Files   []*Document      `json:"files,omitempty"`
}

// BuildTree groups documents into nested folders by splitting each relative
// path on the path separator. All segments except the last become folder
// keys, created on demand; the document itself lands in the terminal
// folder's file list, preserving input order.
//
// Documents whose relative path does not contain filter as a
// case-insensitive substring are excluded. An empty filter keeps everything.
func BuildTree(docs []*Document, filter string) *Tree {
	root := newTree()
	needle := strings.ToLower(filter)

	for _, doc := range docs {
		rel := strings.ReplaceAll(doc.RelativePath, `\`, "/")
		if needle != "" && !strings.Contains(strings.ToLower(rel), needle) {
			continue
		}

		parts := strings.Split(rel, "/")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node.Folders[part]
			if !ok {
				child = newTree()
				node.Folders[part] = child
			}
			node = child
		}
		node.Files = append(node.Files, doc)
	}

	return root
}

func newTree() *Tree {
	return &Tree{Folders: make(map[string]*Tree)}
}

// FolderNames returns the node's folder names in alphabetical order, the
// iteration order for display.
func (t *Tree) FolderNames() []string {
	names := make([]string, 0, len(t.Folders))
	for name := range t.Folders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of files reachable from the node.
func (t *Tree) Count() int {
	n := len(t.Files)
	for _, child := range t.Folders {
		n += child.Count()
	}
	return n
}
