package devdocs

// Renderer converts markdown document content into display HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}
