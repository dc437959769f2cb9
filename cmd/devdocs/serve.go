package main

import (
	"fmt"
	"os"
	"os/signal"

	devhttp "github.com/fwojciec/devdocs/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := devhttp.NewServer()
	server.Addr = c.Addr
	server.DocsDir = deps.DocsDir
	server.TopicService = deps.Topics
	server.DocumentService = deps.Documents
	server.Syncer = deps.Syncer
	server.Renderer = deps.Renderer

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %v\n", c.Addr, err)
		return err
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
