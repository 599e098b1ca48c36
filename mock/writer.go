package mock

import (
	"context"

	"github.com/fwojciec/municode"
)

var _ municode.ChapterWriter = (*ChapterWriter)(nil)

// ChapterWriter is a mock implementation of municode.ChapterWriter.
// Unset Fn fields are treated as successful no-ops.
type ChapterWriter struct {
	WriteChapterFn func(ctx context.Context, chapter *municode.Chapter) error
	WriteListingFn func(ctx context.Context, docs []*municode.Document) error
}

func (w *ChapterWriter) WriteChapter(ctx context.Context, chapter *municode.Chapter) error {
	if w.WriteChapterFn == nil {
		return nil
	}
	return w.WriteChapterFn(ctx, chapter)
}

func (w *ChapterWriter) WriteListing(ctx context.Context, docs []*municode.Document) error {
	if w.WriteListingFn == nil {
		return nil
	}
	return w.WriteListingFn(ctx, docs)
}
