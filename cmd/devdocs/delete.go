package main

import (
	"fmt"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return devdocs.Errorf(devdocs.EINVALID, "use --force to confirm deletion")
	}

	topic, err := findTopicByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Topics.DeleteTopic(deps.Ctx, topic.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	if err := fs.RemoveDir(topic.LocalPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted topic %q\n", topic.Name)
	return nil
}
