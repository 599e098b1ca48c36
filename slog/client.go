// Package slog provides logging decorators for municode services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/municode"
)

// Ensure LoggingClient implements municode.ContentClient.
var _ municode.ContentClient = (*LoggingClient)(nil)

// LoggingClient wraps a ContentClient with operation logging.
type LoggingClient struct {
	next   municode.ContentClient
	logger *slog.Logger
}

// NewLoggingClient creates a new LoggingClient.
func NewLoggingClient(next municode.ContentClient, logger *slog.Logger) *LoggingClient {
	return &LoggingClient{next: next, logger: logger}
}

// ListChapters delegates to the wrapped client and logs the operation.
func (c *LoggingClient) ListChapters(ctx context.Context, params municode.FetchParams) (docs []*municode.Document, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list chapters",
			"node", params.NodeID,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListChapters(ctx, params)
}

// GetChapterContent delegates to the wrapped client and logs the operation.
func (c *LoggingClient) GetChapterContent(ctx context.Context, params municode.FetchParams) (resp *municode.Response, err error) {
	defer func(begin time.Time) {
		count := 0
		if resp != nil {
			count = len(resp.Docs)
		}
		c.logger.Info("get chapter content",
			"node", params.NodeID,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.GetChapterContent(ctx, params)
}
