package main

import (
	"fmt"

	"github.com/fwojciec/municode"
	"github.com/fwojciec/municode/sqlite"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	filter := municode.SectionFilter{Query: &c.Query, Limit: c.Limit}

	sections, err := sqlite.NewChapterService(db).FindSections(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", municode.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stdout, "No sections match %q\n", c.Query)
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.ID, s.Title)
		if c.Full && s.Content != "" {
			fmt.Fprintln(deps.Stdout, s.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
