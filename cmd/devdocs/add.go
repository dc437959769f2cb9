package main

import (
	"fmt"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing topic first
	if c.Force {
		existing, err := deps.Topics.FindTopics(deps.Ctx, devdocs.TopicFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Topics.DeleteTopic(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
				return err
			}
			if err := fs.RemoveDir(existing[0].LocalPath); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
				return err
			}
		}
	}

	dir, err := fs.TopicDir(deps.DocsDir, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	topic := &devdocs.Topic{
		Name:      c.Name,
		SourceURL: c.URL,
		Subfolder: c.Subfolder,
		LocalPath: dir,
	}

	if err := deps.Topics.CreateTopic(deps.Ctx, topic); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added topic %q (#%d)\n", c.Name, topic.ID)
	fmt.Fprintf(deps.Stdout, "Run 'devdocs sync %s' to download its documentation.\n", c.Name)

	return nil
}
