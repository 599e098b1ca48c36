package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/municode"
	"github.com/fwojciec/municode/fetch"
	"github.com/fwojciec/municode/fs"
	munihttp "github.com/fwojciec/municode/http"
	munislog "github.com/fwojciec/municode/slog"
	"github.com/fwojciec/municode/sqlite"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	outDir := fs.DatedDir(c.Out, time.Now())

	writers := []municode.ChapterWriter{fs.NewWriter(outDir)}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		writers = append(writers, sqlite.NewChapterService(db))
	}

	fetcher := &fetch.Fetcher{
		Client:      munislog.NewLoggingClient(newContentClient(c.BaseURL), deps.Logger),
		Writer:      municode.MultiWriter(writers...),
		Logger:      deps.Logger,
		JobID:       c.JobID,
		ProductID:   c.ProductID,
		RootNodeID:  c.RootNode,
		Delay:       c.Delay,
		Concurrency: c.Concurrency,
	}

	progress := func(p fetch.ProgressEvent) {
		switch p.Type {
		case fetch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Targeting %d chapters\n", p.Total)
		case fetch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.Key, p.Error)
		case fetch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", p.Completed, p.Total, p.Key)
		}
	}

	result, err := fetcher.RunWithProgress(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", municode.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d/%d chapters (%d nodes discovered) into %s\n",
		result.Processed, result.Targeted, result.Discovered, outDir)

	return nil
}

// newContentClient builds the HTTP client, honoring a base URL override.
func newContentClient(baseURL string) *munihttp.Client {
	if baseURL == "" {
		return munihttp.NewClient()
	}
	return munihttp.NewClient(munihttp.WithBaseURL(baseURL))
}
