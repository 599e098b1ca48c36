package municode

import "context"

// FetchParams identifies one content API call. Immutable, constructed per
// fetch.
type FetchParams struct {
	JobID     int
	NodeID    string
	ProductID int
}

// Response is the content API envelope.
type Response struct {
	Docs []*Document `json:"Docs"`
}

// ContentClient retrieves municipal-code nodes from the content API.
// Implementations hide the transport; callers treat any failure as a single
// opaque error with no retry.
type ContentClient interface {
	// ListChapters fetches the flattened node listing under the root node
	// named by params.NodeID. Used for chapter discovery; a failure here
	// is fatal to a fetch run. Nodes without a usable id are dropped.
	ListChapters(ctx context.Context, params FetchParams) ([]*Document, error)

	// GetChapterContent fetches every node under a single chapter.
	GetChapterContent(ctx context.Context, params FetchParams) (*Response, error)
}
