package main

import (
	"fmt"

	"github.com/fwojciec/devdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	topics, err := deps.Topics.FindTopics(deps.Ctx, devdocs.TopicFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics found. Use 'devdocs add' to create one.")
		return nil
	}

	for _, topic := range topics {
		docs, err := deps.Documents.FindDocuments(deps.Ctx, devdocs.DocumentFilter{TopicID: &topic.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
		unread, err := deps.Documents.CountUnread(deps.Ctx, topic.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "#%d  %s  %s  (%d docs, %d unread)  updated %s\n",
			topic.ID, topic.Name, topic.SourceURL, len(docs), unread,
			topic.UpdatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
