package municode_test

import (
	"testing"

	"github.com/fwojciec/municode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &municode.Document{ID: "TIT25LADE_CH25-2ZO"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		doc := &municode.Document{Title: "Zoning"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, municode.EINVALID, municode.ErrorCode(err))
	})
}

func TestDocument_ConsistentDepth(t *testing.T) {
	t.Parallel()

	t.Run("depth matches segment count", func(t *testing.T) {
		t.Parallel()

		doc := &municode.Document{ID: "TIT25LADE_CH25-2ZO_SUB", NodeDepth: 2}
		assert.True(t, doc.ConsistentDepth())
	})

	t.Run("depth disagrees with id", func(t *testing.T) {
		t.Parallel()

		doc := &municode.Document{ID: "TIT25LADE_CH25-2ZO", NodeDepth: 4}
		assert.False(t, doc.ConsistentDepth())
	})
}

func TestFilterByDepth(t *testing.T) {
	t.Parallel()

	docs := []*municode.Document{
		{ID: "TIT1_CH1", NodeDepth: 1},
		{ID: "TIT1_CH1_A", NodeDepth: 2},
		{ID: "TIT1_CH1_B", NodeDepth: 2},
		{ID: "TIT1_CH1_A_1", NodeDepth: 3},
	}

	t.Run("returns exactly the matching subset in order", func(t *testing.T) {
		t.Parallel()

		got := municode.FilterByDepth(docs, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "TIT1_CH1_A", got[0].ID)
		assert.Equal(t, "TIT1_CH1_B", got[1].ID)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, municode.FilterByDepth(docs, 7))
	})
}

func TestSearchDocuments(t *testing.T) {
	t.Parallel()

	docs := []*municode.Document{
		{ID: "a", Title: "Setback Requirements", Content: "front yard"},
		{ID: "b", Title: "Height Limits", Content: "a SETBACK of 25 feet"},
		{ID: "c", Title: "Parking", Content: "spaces"},
	}

	t.Run("matches title and content case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := municode.SearchDocuments(docs, "setback")
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, municode.SearchDocuments(docs, "floodplain"))
	})
}

func TestFindDocumentByID(t *testing.T) {
	t.Parallel()

	docs := []*municode.Document{
		{ID: "TIT1_CH1"},
		{ID: "TIT1_CH2"},
	}

	t.Run("finds matching document", func(t *testing.T) {
		t.Parallel()

		got := municode.FindDocumentByID(docs, "TIT1_CH2")
		require.NotNil(t, got)
		assert.Equal(t, "TIT1_CH2", got.ID)
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, municode.FindDocumentByID(docs, "TIT1_CH3"))
	})
}
