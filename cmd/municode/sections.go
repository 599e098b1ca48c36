package main

import (
	"fmt"

	"github.com/fwojciec/municode"
	"github.com/fwojciec/municode/sqlite"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	filter := municode.SectionFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Chapter != "" {
		filter.ChapterKey = &c.Chapter
	}
	if c.Depth >= 0 {
		filter.Depth = &c.Depth
	}

	sections, err := sqlite.NewChapterService(db).FindSections(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", municode.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No sections found. Use 'municode fetch --db' to populate the database.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%s  depth=%d  %s\n", s.ID, s.Depth, s.Title)
	}

	return nil
}
