package main

import (
	"fmt"

	"github.com/fwojciec/municode"
	munislog "github.com/fwojciec/municode/slog"
)

// Run executes the chapter command.
func (c *ChapterCmd) Run(deps *Dependencies) error {
	client := munislog.NewLoggingClient(newContentClient(c.BaseURL), deps.Logger)

	resp, err := client.GetChapterContent(deps.Ctx, municode.FetchParams{
		JobID:     c.JobID,
		NodeID:    c.Node,
		ProductID: c.ProductID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", municode.ErrorMessage(err))
		return err
	}

	if len(resp.Docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No content found for %s\n", c.Node)
		return nil
	}

	for _, doc := range resp.Docs {
		section := municode.NewSection(doc)
		fmt.Fprintf(deps.Stdout, "%s  depth=%d  %s\n", section.ID, section.Depth, section.Title)
		if c.Full && section.Content != "" {
			fmt.Fprintln(deps.Stdout, section.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	fmt.Fprintf(deps.Stdout, "%d sections\n", len(resp.Docs))

	return nil
}
