package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/municode"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ municode.ChapterService = (*ChapterService)(nil)
	_ municode.ChapterWriter  = (*ChapterService)(nil)
)

// ChapterService implements municode.ChapterService using SQLite.
// It also satisfies municode.ChapterWriter so it can sit directly behind
// the fetch orchestrator.
type ChapterService struct {
	db *DB
}

// NewChapterService creates a new ChapterService.
func NewChapterService(db *DB) *ChapterService {
	return &ChapterService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
// Used for change detection between fetch runs.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateChapter stores a chapter and its sections, replacing any
// previously stored chapter with the same key. Replacement mirrors the
// overwrite semantics of the file writer.
func (s *ChapterService) CreateChapter(ctx context.Context, chapter *municode.Chapter) error {
	if err := chapter.Validate(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM chapters WHERE key = ?`, chapter.Key); err != nil {
		return err
	}

	chapterID := uuid.New().String()
	fetchedAt := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chapters (id, key, node_id, fetched_at)
		VALUES (?, ?, ?, ?)
	`, chapterID, chapter.Key, chapter.NodeID, fetchedAt)
	if err != nil {
		return err
	}

	for _, section := range chapter.Sections {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO sections (id, chapter_id, section_id, title, raw_content, content, content_hash, depth, doc_order_id, is_amended, is_updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), chapterID, section.ID, section.Title, section.RawContent,
			section.Content, hashContent(section.Content), section.Depth, section.DocOrderID,
			section.IsAmended, section.IsUpdated)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteChapter implements municode.ChapterWriter.
func (s *ChapterService) WriteChapter(ctx context.Context, chapter *municode.Chapter) error {
	return s.CreateChapter(ctx, chapter)
}

// WriteListing implements municode.ChapterWriter. Listing snapshots are a
// filesystem concern; the database keeps only fetched chapters.
func (s *ChapterService) WriteListing(ctx context.Context, docs []*municode.Document) error {
	return nil
}

// FindChapterByKey retrieves a chapter with its sections in document order.
func (s *ChapterService) FindChapterByKey(ctx context.Context, key string) (*municode.Chapter, error) {
	var chapterID string
	chapter := &municode.Chapter{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, key, node_id FROM chapters WHERE key = ?
	`, key).Scan(&chapterID, &chapter.Key, &chapter.NodeID)
	if err == sql.ErrNoRows {
		return nil, municode.Errorf(municode.ENOTFOUND, "chapter %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT section_id, title, raw_content, content, depth, doc_order_id, is_amended, is_updated
		FROM sections
		WHERE chapter_id = ?
		ORDER BY doc_order_id ASC
	`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		section := &municode.Section{}
		if err := rows.Scan(&section.ID, &section.Title, &section.RawContent, &section.Content,
			&section.Depth, &section.DocOrderID, &section.IsAmended, &section.IsUpdated); err != nil {
			return nil, err
		}
		chapter.Sections = append(chapter.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chapter, nil
}

// FindSections retrieves sections matching the filter, ordered by chapter
// key and document order.
func (s *ChapterService) FindSections(ctx context.Context, filter municode.SectionFilter) ([]*municode.Section, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT s.section_id, s.title, s.raw_content, s.content, s.depth, s.doc_order_id, s.is_amended, s.is_updated
		FROM sections s
		JOIN chapters c ON s.chapter_id = c.id
		WHERE 1=1`)

	if filter.ChapterKey != nil {
		query.WriteString(" AND c.key = ?")
		args = append(args, *filter.ChapterKey)
	}
	if filter.Depth != nil {
		query.WriteString(" AND s.depth = ?")
		args = append(args, *filter.Depth)
	}
	if filter.Query != nil {
		query.WriteString(" AND (s.title LIKE ? OR s.content LIKE ?)")
		pattern := "%" + *filter.Query + "%"
		args = append(args, pattern, pattern)
	}

	query.WriteString(" ORDER BY c.key ASC, s.doc_order_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*municode.Section
	for rows.Next() {
		section := &municode.Section{}
		if err := rows.Scan(&section.ID, &section.Title, &section.RawContent, &section.Content,
			&section.Depth, &section.DocOrderID, &section.IsAmended, &section.IsUpdated); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// DeleteChapterByKey removes a chapter and its sections.
func (s *ChapterService) DeleteChapterByKey(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM chapters WHERE key = ?`, key)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return municode.Errorf(municode.ENOTFOUND, "chapter %q not found", key)
	}
	return nil
}
