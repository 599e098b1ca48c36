// Package fetch orchestrates municipal-code retrieval: chapter discovery,
// deduplication, paced per-chapter fetching, normalization, and persistence.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/municode"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between successive chapter fetches.
const DefaultDelay = time.Second

// Fetcher drives a full fetch run against the content API.
type Fetcher struct {
	Client municode.ContentClient
	Writer municode.ChapterWriter
	Logger *slog.Logger

	JobID      int
	ProductID  int
	RootNodeID string

	// Delay paces successive chapter fetches. The first fetch is never
	// delayed. Defaults to DefaultDelay when zero or negative.
	Delay time.Duration

	// Concurrency bounds the worker pool. Defaults to 1, which preserves
	// strictly sequential fetching; pacing is enforced globally through a
	// shared limiter regardless of the pool size.
	Concurrency int
}

// Result holds the outcome of a fetch run.
type Result struct {
	// Discovered is the number of nodes in the raw listing.
	Discovered int
	// Targeted is the number of unique chapters after deduplication.
	Targeted int
	// Processed is the number of chapters fetched and persisted.
	Processed int
	// Failed is the number of chapters skipped due to errors.
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a fetch run.
type ProgressEvent struct {
	Type      ProgressType
	Key       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting fetch progress. It may be
// invoked from multiple goroutines when Concurrency is greater than 1.
type ProgressFunc func(event ProgressEvent)

// Run executes a full fetch: one discovery call, chapter deduplication,
// then one paced content fetch per unique chapter. A discovery failure
// aborts the run; a per-chapter failure is logged and skipped.
func (f *Fetcher) Run(ctx context.Context) (*Result, error) {
	return f.RunWithProgress(ctx, nil)
}

// RunWithProgress is Run with a progress callback.
func (f *Fetcher) RunWithProgress(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}

	docs, err := f.Client.ListChapters(ctx, municode.FetchParams{
		JobID:     f.JobID,
		NodeID:    f.RootNodeID,
		ProductID: f.ProductID,
	})
	if err != nil {
		return nil, fmt.Errorf("chapter discovery: %w", err)
	}

	keys := municode.DedupeChapters(docs)
	result := &Result{
		Discovered: len(docs),
		Targeted:   len(keys),
	}

	logger.Info("discovered chapters",
		"root", f.RootNodeID,
		"nodes", len(docs),
		"unique", len(keys),
	)

	// The raw listing is kept for reference; the snapshot is advisory and
	// a failure here does not block the fetch.
	if err := f.Writer.WriteListing(ctx, docs); err != nil {
		logger.Error("listing snapshot failed", "err", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(keys)})
	}

	delay := f.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	// Burst 1 grants the first token immediately, so only fetches after
	// the first wait out the delay.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, key := range keys {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				// Context canceled; abandon remaining chapters.
				return err
			}

			err := f.fetchChapter(gctx, key)

			mu.Lock()
			completed++
			done := completed
			if err != nil {
				result.Failed++
			} else {
				result.Processed++
			}
			mu.Unlock()

			if err != nil {
				logger.Error("skip chapter", "key", key, "err", err)
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, Key: key, Completed: done, Total: len(keys), Error: err})
				}
				return nil
			}

			logger.Info("stored chapter", "key", key)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Key: key, Completed: done, Total: len(keys)})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(keys), Total: len(keys)})
	}

	logger.Info("fetch complete",
		"discovered", result.Discovered,
		"targeted", result.Targeted,
		"processed", result.Processed,
		"failed", result.Failed,
	)

	return result, nil
}

// fetchChapter retrieves one chapter's nodes, normalizes them into
// sections, and hands the grouped chapter to the writer.
func (f *Fetcher) fetchChapter(ctx context.Context, key string) error {
	resp, err := f.Client.GetChapterContent(ctx, municode.FetchParams{
		JobID:     f.JobID,
		NodeID:    key,
		ProductID: f.ProductID,
	})
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	chapter := &municode.Chapter{
		Key:      key,
		NodeID:   key,
		Sections: make([]*municode.Section, 0, len(resp.Docs)),
	}
	for _, doc := range resp.Docs {
		chapter.Sections = append(chapter.Sections, municode.NewSection(doc))
	}

	if err := f.Writer.WriteChapter(ctx, chapter); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
