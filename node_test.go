package municode_test

import (
	"testing"

	"github.com/fwojciec/municode"
	"github.com/stretchr/testify/assert"
)

func TestBuildNodeID(t *testing.T) {
	t.Parallel()

	t.Run("title and chapter", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "TIT25LADE_CH25-2ZO", municode.BuildNodeID("25LADE", "25-2ZO", "", ""))
	})

	t.Run("with subchapter", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "TIT25LADE_CH25-2ZO_SUBCHAPTER", municode.BuildNodeID("25LADE", "25-2ZO", "SUBCHAPTER", ""))
	})

	t.Run("with subchapter and article", func(t *testing.T) {
		t.Parallel()

		got := municode.BuildNodeID("25LADE", "25-2ZO", "SUBCHAPTER", "ART1GEPR")
		assert.Equal(t, "TIT25LADE_CH25-2ZO_SUBCHAPTER_ART1GEPR", got)
	})
}

func TestSegments(t *testing.T) {
	t.Parallel()

	assert.Nil(t, municode.Segments(""))
	assert.Equal(t, []string{"TIT25LADE"}, municode.Segments("TIT25LADE"))
	assert.Equal(t, []string{"TIT25LADE", "CH25-2ZO", "ART1"}, municode.Segments("TIT25LADE_CH25-2ZO_ART1"))
}

func TestSegmentDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, municode.SegmentDepth(""))
	assert.Equal(t, 0, municode.SegmentDepth("TIT25LADE"))
	assert.Equal(t, 1, municode.SegmentDepth("TIT25LADE_CH25-2ZO"))
	assert.Equal(t, 3, municode.SegmentDepth("TIT25LADE_CH25-2ZO_SUB_ART1"))
}

func TestChapterKey(t *testing.T) {
	t.Parallel()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		key, ok := municode.ChapterKey("")
		assert.False(t, ok)
		assert.Empty(t, key)
	})

	t.Run("single segment returned whole", func(t *testing.T) {
		t.Parallel()

		key, ok := municode.ChapterKey("TIT25LADE")
		assert.True(t, ok)
		assert.Equal(t, "TIT25LADE", key)
	})

	t.Run("deep id truncated to two segments", func(t *testing.T) {
		t.Parallel()

		key, ok := municode.ChapterKey("TIT25LADE_CH25-2ZO_SUB_ART1")
		assert.True(t, ok)
		assert.Equal(t, "TIT25LADE_CH25-2ZO", key)
	})
}

func TestDedupeChapters(t *testing.T) {
	t.Parallel()

	docsFor := func(ids ...string) []*municode.Document {
		docs := make([]*municode.Document, 0, len(ids))
		for _, id := range ids {
			docs = append(docs, &municode.Document{ID: id})
		}
		return docs
	}

	t.Run("excludes descendants and later duplicates", func(t *testing.T) {
		t.Parallel()

		docs := docsFor("TIT1_CH1", "TIT1_CH1_SUBA", "TIT1_CH1_SUBA_ART1", "TIT1_CH2", "TIT1_CH1")

		assert.Equal(t, []string{"TIT1_CH1", "TIT1_CH2"}, municode.DedupeChapters(docs))
	})

	t.Run("skips empty ids without affecting order", func(t *testing.T) {
		t.Parallel()

		docs := docsFor("TIT1_CH1", "", "TIT1_CH2")

		assert.Equal(t, []string{"TIT1_CH1", "TIT1_CH2"}, municode.DedupeChapters(docs))
	})

	t.Run("descendant listed before its chapter root does not mask it", func(t *testing.T) {
		t.Parallel()

		docs := docsFor("TIT1_CH1_SUBA", "TIT1_CH1")

		assert.Equal(t, []string{"TIT1_CH1"}, municode.DedupeChapters(docs))
	})

	t.Run("preserves first-seen order across chapters", func(t *testing.T) {
		t.Parallel()

		docs := docsFor("TIT1_CH3", "TIT1_CH1", "TIT1_CH2", "TIT1_CH1")

		assert.Equal(t, []string{"TIT1_CH3", "TIT1_CH1", "TIT1_CH2"}, municode.DedupeChapters(docs))
	})

	t.Run("empty listing yields no keys", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, municode.DedupeChapters(nil))
	})
}
