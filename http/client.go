// Package http provides an HTTP-based implementation of
// municode.ContentClient for the remote codes-content API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/municode"
)

// DefaultBaseURL is the production content API endpoint.
const DefaultBaseURL = "https://api.municode.com"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// contentPath is the single endpoint serving both listings and content.
const contentPath = "/CodesContent"

// Ensure Client implements municode.ContentClient at compile time.
var _ municode.ContentClient = (*Client)(nil)

// Client retrieves municipal-code nodes over HTTP. Listings and chapter
// content share one endpoint; the nodeId parameter selects the scope.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a custom http.Client. When set, WithTimeout has
// no effect.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new content API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

// ListChapters fetches the flattened node listing under the root node.
// Nodes without a usable id are dropped.
func (c *Client) ListChapters(ctx context.Context, params municode.FetchParams) ([]*municode.Document, error) {
	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	docs := make([]*municode.Document, 0, len(resp.Docs))
	for _, doc := range resp.Docs {
		if doc.ID == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// GetChapterContent fetches every node under the chapter named by
// params.NodeID.
func (c *Client) GetChapterContent(ctx context.Context, params municode.FetchParams) (*municode.Response, error) {
	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params municode.FetchParams) (*municode.Response, error) {
	q := url.Values{}
	q.Set("jobId", strconv.Itoa(params.JobID))
	q.Set("nodeId", params.NodeID)
	q.Set("productId", strconv.Itoa(params.ProductID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+contentPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, municode.Errorf(municode.EUNAVAILABLE, "content api: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeResponse(body)
}

// wireDoc mirrors one element of the API's Docs array. Decoding goes
// through this shape so newDocument can apply the documented defaults and
// yield a fully-formed record even from a sparse payload.
type wireDoc struct {
	ID                       string  `json:"Id"`
	Title                    string  `json:"Title"`
	TitleHTML                string  `json:"TitleHtml"`
	Content                  string  `json:"Content"`
	NodeDepth                int     `json:"NodeDepth"`
	DocOrderID               int     `json:"DocOrderId"`
	DocType                  int     `json:"DocType"`
	CompareStatus            int     `json:"CompareStatus"`
	IsAmended                bool    `json:"IsAmended"`
	IsUpdated                bool    `json:"IsUpdated"`
	AmendedBy                []any   `json:"AmendedBy"`
	Notes                    []any   `json:"Notes"`
	Drafts                   []any   `json:"Drafts"`
	ChunkGroupStartingNodeID string  `json:"ChunkGroupStartingNodeId"`
	SortDate                 *string `json:"SortDate"`
	Footnotes                any     `json:"Footnotes"`
}

func decodeResponse(body []byte) (*municode.Response, error) {
	var wire struct {
		Docs []wireDoc `json:"Docs"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode content api response: %w", err)
	}

	resp := &municode.Response{Docs: make([]*municode.Document, 0, len(wire.Docs))}
	for _, w := range wire.Docs {
		resp.Docs = append(resp.Docs, newDocument(w))
	}
	return resp, nil
}

// newDocument maps a wire document onto the domain record. Missing wire
// fields keep their zero values; sequence fields default to empty, never
// nil, so callers can range without nil checks.
func newDocument(w wireDoc) *municode.Document {
	doc := &municode.Document{
		ID:                       w.ID,
		Title:                    w.Title,
		TitleHTML:                w.TitleHTML,
		Content:                  w.Content,
		NodeDepth:                w.NodeDepth,
		DocOrderID:               w.DocOrderID,
		DocType:                  w.DocType,
		CompareStatus:            w.CompareStatus,
		IsAmended:                w.IsAmended,
		IsUpdated:                w.IsUpdated,
		AmendedBy:                w.AmendedBy,
		Notes:                    w.Notes,
		Drafts:                   w.Drafts,
		ChunkGroupStartingNodeID: w.ChunkGroupStartingNodeID,
		SortDate:                 w.SortDate,
		Footnotes:                w.Footnotes,
	}
	if doc.AmendedBy == nil {
		doc.AmendedBy = []any{}
	}
	if doc.Notes == nil {
		doc.Notes = []any{}
	}
	if doc.Drafts == nil {
		doc.Drafts = []any{}
	}
	return doc
}
