// Package goldmark provides a devdocs.Renderer backed by the goldmark
// markdown library with GitHub Flavored Markdown extensions enabled.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/devdocs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements devdocs.Renderer at compile time.
var _ devdocs.Renderer = (*Renderer)(nil)

// Renderer converts markdown documents to HTML. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithRendererOptions(
				html.WithXHTML(),
			),
		),
	}
}

// Render converts markdown source to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", devdocs.Errorf(devdocs.EINTERNAL, "render markdown: %v", err)
	}
	return buf.String(), nil
}
