package mock

import "github.com/fwojciec/devdocs"

var _ devdocs.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of devdocs.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
