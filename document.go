package municode

import "strings"

// Document represents one node of a municipal code as returned by the
// content API. Field tags mirror the wire names. A document is constructed
// once from an API response element and never mutated afterwards; cleaned
// content is derived into a Section and never overwrites Content.
type Document struct {
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

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document id required")
	}
	return nil
}

// ConsistentDepth reports whether the depth reported by the API agrees with
// the depth implied by the id's segment count.
func (d *Document) ConsistentDepth() bool {
	return d.NodeDepth == SegmentDepth(d.ID)
}

// FilterByDepth returns the documents at the given hierarchy depth,
// preserving input order.
func FilterByDepth(docs []*Document, depth int) []*Document {
	var out []*Document
	for _, doc := range docs {
		if doc.NodeDepth == depth {
			out = append(out, doc)
		}
	}
	return out
}

// SearchDocuments returns the documents whose title or content contains the
// query, case-insensitively. Input order is preserved.
func SearchDocuments(docs []*Document, query string) []*Document {
	term := strings.ToLower(query)
	var out []*Document
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), term) ||
			strings.Contains(strings.ToLower(doc.Content), term) {
			out = append(out, doc)
		}
	}
	return out
}

// FindDocumentByID returns the first document with the given id, or nil if
// no document matches.
func FindDocumentByID(docs []*Document, id string) *Document {
	for _, doc := range docs {
		if doc.ID == id {
			return doc
		}
	}
	return nil
}
