// Package mock provides mock implementations of municode interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/municode"
)

var _ municode.ContentClient = (*ContentClient)(nil)

// ContentClient is a mock implementation of municode.ContentClient.
type ContentClient struct {
	ListChaptersFn      func(ctx context.Context, params municode.FetchParams) ([]*municode.Document, error)
	GetChapterContentFn func(ctx context.Context, params municode.FetchParams) (*municode.Response, error)
}

func (c *ContentClient) ListChapters(ctx context.Context, params municode.FetchParams) ([]*municode.Document, error) {
	return c.ListChaptersFn(ctx, params)
}

func (c *ContentClient) GetChapterContent(ctx context.Context, params municode.FetchParams) (*municode.Response, error) {
	return c.GetChapterContentFn(ctx, params)
}
