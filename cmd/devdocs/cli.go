package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	DocsDir   string
	Topics    devdocs.TopicService
	Documents devdocs.DocumentService
	Syncer    devdocs.TopicSyncer
	Renderer  devdocs.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Add a documentation topic"`
	List   ListCmd   `cmd:"" help:"List all topics"`
	Sync   SyncCmd   `cmd:"" help:"Download and index a topic's documentation"`
	Docs   DocsCmd   `cmd:"" help:"Show a topic's document tree"`
	Read   ReadCmd   `cmd:"" help:"Print a document and mark it read"`
	Delete DeleteCmd `cmd:"" help:"Delete a topic and its documents"`
	Serve  ServeCmd  `cmd:"" help:"Start the HTTP API server"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name      string `arg:"" help:"Topic name"`
	URL       string `arg:"" help:"GitHub repository URL"`
	Subfolder string `short:"s" help:"Only extract markdown under this repository subfolder"`
	Force     bool   `short:"f" help:"Delete existing topic first"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Name        string `arg:"" optional:"" help:"Topic name"`
	All         bool   `help:"Sync every registered topic"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent topic limit with --all"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name   string `arg:"" help:"Topic name"`
	Search string `short:"s" help:"Filter documents by path substring"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Name string `arg:"" help:"Topic name"`
	Path string `arg:"" help:"Document path within the topic"`
	HTML bool   `help:"Render markdown to HTML"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Topic name"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Bind address"`
}

// findTopicByName resolves a topic by name, printing a hint to stderr when
// it does not exist.
func findTopicByName(deps *Dependencies, name string) (*devdocs.Topic, error) {
	topics, err := deps.Topics.FindTopics(deps.Ctx, devdocs.TopicFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return nil, err
	}
	if len(topics) == 0 {
		fmt.Fprintf(deps.Stderr, "error: topic %q not found. Use 'devdocs list' to see available topics.\n", name)
		return nil, devdocs.Errorf(devdocs.ENOTFOUND, "topic %q not found", name)
	}
	return topics[0], nil
}
