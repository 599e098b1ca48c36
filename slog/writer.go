package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/municode"
)

// Ensure LoggingWriter implements municode.ChapterWriter.
var _ municode.ChapterWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a ChapterWriter with operation logging.
type LoggingWriter struct {
	next   municode.ChapterWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next municode.ChapterWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteChapter delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteChapter(ctx context.Context, chapter *municode.Chapter) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write chapter",
			"key", chapter.Key,
			"sections", len(chapter.Sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteChapter(ctx, chapter)
}

// WriteListing delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteListing(ctx context.Context, docs []*municode.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write listing",
			"nodes", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteListing(ctx, docs)
}
