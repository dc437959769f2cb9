package main

import (
	"fmt"
	"io"
	"path"

	"github.com/fwojciec/devdocs"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	topic, err := findTopicByName(deps, c.Name)
	if err != nil {
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, devdocs.DocumentFilter{TopicID: &topic.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: topic %q has no documents. Run 'devdocs sync %s' first.\n", c.Name, c.Name)
		return devdocs.Errorf(devdocs.ENOTFOUND, "topic %q has no documents", c.Name)
	}

	tree := devdocs.BuildTree(docs, c.Search)
	if tree.Count() == 0 {
		fmt.Fprintf(deps.Stdout, "No documents match %q.\n", c.Search)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d files):\n\n", topic.Name, tree.Count())
	writeTree(deps.Stdout, tree, "")
	fmt.Fprintln(deps.Stdout, "\n* unread")

	return nil
}

// writeTree prints a tree node with two-space indentation, folders before
// files, both alphabetical.
func writeTree(w io.Writer, tree *devdocs.Tree, indent string) {
	for _, name := range tree.FolderNames() {
		fmt.Fprintf(w, "%s%s/\n", indent, name)
		writeTree(w, tree.Folders[name], indent+"  ")
	}
	for _, doc := range tree.Files {
		marker := ""
		if !doc.IsRead {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s%s\n", indent, path.Base(doc.RelativePath), marker)
	}
}
