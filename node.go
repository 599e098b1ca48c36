package municode

import "strings"

// Node ids encode the code hierarchy as underscore-joined segments:
// TITLE_CHAPTER[_SUBCHAPTER][_ARTICLE]. The two-segment title+chapter
// prefix is the unit of deduplication during chapter discovery.

// BuildNodeID constructs the canonical node identifier for a chapter or
// section. The title and chapter are required; subchapter and article are
// appended in order when non-empty.
//
// BuildNodeID("25LADE", "25-2ZO", "", "") returns "TIT25LADE_CH25-2ZO".
func BuildNodeID(title, chapter, subchapter, article string) string {
	var b strings.Builder
	b.WriteString("TIT")
	b.WriteString(title)
	b.WriteString("_CH")
	b.WriteString(chapter)
	if subchapter != "" {
		b.WriteString("_")
		b.WriteString(subchapter)
	}
	if article != "" {
		b.WriteString("_")
		b.WriteString(article)
	}
	return b.String()
}

// Segments splits a node id into its underscore-delimited hierarchy
// segments. An empty id yields nil.
func Segments(id string) []string {
	if id == "" {
		return nil
	}
	return strings.Split(id, "_")
}

// SegmentDepth returns the hierarchy depth implied by an id's segment
// count: a bare title is depth 0, a chapter 1, and so on. An empty id is
// depth 0.
func SegmentDepth(id string) int {
	segs := Segments(id)
	if len(segs) == 0 {
		return 0
	}
	return len(segs) - 1
}

// ChapterKey returns the two-segment title+chapter prefix of a node id.
// Ids with fewer than two segments are returned whole. The bool result is
// false when the id is empty.
func ChapterKey(id string) (string, bool) {
	segs := Segments(id)
	if len(segs) == 0 {
		return "", false
	}
	if len(segs) == 1 {
		return segs[0], true
	}
	return segs[0] + "_" + segs[1], true
}

// DedupeChapters reduces a flattened node listing to the unique set of
// top-level chapter keys, in first-seen order.
//
// The listing is a pre-order traversal that repeats every descendant of a
// chapter as its own entry. Only nodes that are chapter roots themselves
// (at most two id segments) are eligible; without that ceiling each chapter
// would be fetched once per descendant. Nodes with empty ids are skipped,
// as are keys already emitted.
func DedupeChapters(docs []*Document) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, doc := range docs {
		key, ok := ChapterKey(doc.ID)
		if !ok {
			continue
		}
		if len(Segments(doc.ID)) > 2 {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
