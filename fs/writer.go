// Package fs provides file-based persistence for fetched chapters.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/fwojciec/municode"
)

// ListingFileName is the file holding the raw discovery listing snapshot.
const ListingFileName = "chapter_structure.json"

var unsafeChars = regexp.MustCompile(`[^\w\-]`)

// SafeFileName converts a chapter key into a filesystem-safe JSON file
// name. Characters outside [A-Za-z0-9_-] are replaced with underscores.
func SafeFileName(key string) string {
	return unsafeChars.ReplaceAllString(key, "_") + ".json"
}

// DatedDir returns the conventional output directory for a fetch run:
// base/<YYYY-MM-DD>.
func DatedDir(base string, now time.Time) string {
	return filepath.Join(base, now.Format("2006-01-02"))
}

// Ensure Writer implements municode.ChapterWriter at compile time.
var _ municode.ChapterWriter = (*Writer)(nil)

// Writer writes chapters as JSON files to a directory, one file per
// chapter. Writing a chapter twice overwrites the earlier file.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteChapter writes one chapter with its sections to disk.
func (w *Writer) WriteChapter(ctx context.Context, chapter *municode.Chapter) error {
	if err := chapter.Validate(); err != nil {
		return err
	}
	return w.writeJSON(filepath.Join(w.baseDir, SafeFileName(chapter.Key)), chapter)
}

// WriteListing writes the raw discovery listing snapshot.
func (w *Writer) WriteListing(ctx context.Context, docs []*municode.Document) error {
	payload := struct {
		Chapters []*municode.Document `json:"chapters"`
	}{Chapters: docs}
	return w.writeJSON(filepath.Join(w.baseDir, ListingFileName), payload)
}

func (w *Writer) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
