package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	topic, err := findTopicByName(deps, c.Name)
	if err != nil {
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, devdocs.DocumentFilter{TopicID: &topic.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	doc := matchDocument(docs, c.Path)
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: no document %q in topic %q. Run 'devdocs docs %s' to see its documents.\n", c.Path, c.Name, c.Name)
		return devdocs.Errorf(devdocs.ENOTFOUND, "no document %q in topic %q", c.Path, c.Name)
	}

	content, err := fs.ReadDocument(doc.FilePath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if c.HTML {
		content, err = deps.Renderer.Render(content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, content)

	// Opening a document marks it read.
	if err := deps.Documents.SetReadState(deps.Ctx, doc.ID, true); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	return nil
}

// matchDocument resolves a user-supplied path to a document. An exact
// relative path wins; otherwise a unique filename match is accepted.
func matchDocument(docs []*devdocs.Document, p string) *devdocs.Document {
	norm := strings.ReplaceAll(p, `\`, "/")
	for _, doc := range docs {
		if doc.RelativePath == norm {
			return doc
		}
	}

	var found *devdocs.Document
	for _, doc := range docs {
		if doc.Filename == norm {
			if found != nil {
				return nil // ambiguous
			}
			found = doc
		}
	}
	return found
}
