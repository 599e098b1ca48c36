package municode

import "context"

// Chapter groups the cleaned sections fetched for one top-level chapter.
// The JSON tags match the layout of the persisted chapter files.
type Chapter struct {
	Key      string     `json:"chapter"`
	NodeID   string     `json:"node_id"`
	Sections []*Section `json:"sections"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Key == "" {
		return Errorf(EINVALID, "chapter key required")
	}
	return nil
}

// Section is the persisted projection of a Document. Content holds the
// cleaned text; RawContent preserves the original fragment alongside it.
type Section struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	RawContent string `json:"rawContent,omitempty"`
	Content    string `json:"content"`
	Depth      int    `json:"depth"`
	DocOrderID int    `json:"doc_order_id"`
	IsAmended  bool   `json:"is_amended"`
	IsUpdated  bool   `json:"is_updated"`
}

// NewSection builds a Section from an API document, normalizing the body
// through CleanContent.
func NewSection(doc *Document) *Section {
	return &Section{
		ID:         doc.ID,
		Title:      doc.Title,
		RawContent: doc.Content,
		Content:    CleanContent(doc.Content),
		Depth:      doc.NodeDepth,
		DocOrderID: doc.DocOrderID,
		IsAmended:  doc.IsAmended,
		IsUpdated:  doc.IsUpdated,
	}
}

// ChapterWriter persists fetched chapters. Writes are fire-and-forget from
// the orchestrator's perspective: a failed write fails that chapter only
// and never aborts a run.
type ChapterWriter interface {
	// WriteChapter persists one chapter with its cleaned sections.
	WriteChapter(ctx context.Context, chapter *Chapter) error

	// WriteListing persists the raw discovery listing for reference.
	WriteListing(ctx context.Context, docs []*Document) error
}

// MultiWriter returns a ChapterWriter that forwards every write to all of
// the given writers, stopping at the first error.
func MultiWriter(writers ...ChapterWriter) ChapterWriter {
	return multiWriter(writers)
}

type multiWriter []ChapterWriter

func (m multiWriter) WriteChapter(ctx context.Context, chapter *Chapter) error {
	for _, w := range m {
		if err := w.WriteChapter(ctx, chapter); err != nil {
			return err
		}
	}
	return nil
}

func (m multiWriter) WriteListing(ctx context.Context, docs []*Document) error {
	for _, w := range m {
		if err := w.WriteListing(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}

// ChapterService represents a service for managing stored chapters.
type ChapterService interface {
	// CreateChapter stores a chapter and its sections, replacing any
	// previously stored chapter with the same key.
	CreateChapter(ctx context.Context, chapter *Chapter) error

	// FindChapterByKey retrieves a chapter with its sections in document
	// order. Returns ENOTFOUND if the chapter does not exist.
	FindChapterByKey(ctx context.Context, key string) (*Chapter, error)

	// FindSections retrieves sections matching the filter.
	FindSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// DeleteChapterByKey removes a chapter and its sections.
	// Returns ENOTFOUND if the chapter does not exist.
	DeleteChapterByKey(ctx context.Context, key string) error
}

// SectionFilter represents a filter for FindSections. Query matches the
// section title or cleaned content, case-insensitively.
type SectionFilter struct {
	ChapterKey *string `json:"chapterKey"`
	Depth      *int    `json:"depth"`
	Query      *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
