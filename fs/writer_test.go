package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/municode"
	"github.com/fwojciec/municode/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "plain key",
			key:  "TIT25LADE_CH25-2ZO",
			want: "TIT25LADE_CH25-2ZO.json",
		},
		{
			name: "dots and slashes replaced",
			key:  "TIT1_CH1.2/3",
			want: "TIT1_CH1_2_3.json",
		},
		{
			name: "spaces replaced",
			key:  "CH 25",
			want: "CH_25.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.SafeFileName(tt.key))
		})
	}
}

func TestDatedDir(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, filepath.Join("out", "2026-08-30"), fs.DatedDir("out", now))
}

func TestWriter_WriteChapter(t *testing.T) {
	t.Parallel()

	t.Run("writes chapter JSON to disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		chapter := &municode.Chapter{
			Key:    "TIT25LADE_CH25-2ZO",
			NodeID: "TIT25LADE_CH25-2ZO",
			Sections: []*municode.Section{
				{ID: "TIT25LADE_CH25-2ZO", Title: "Zoning", Content: "cleaned", Depth: 1},
			},
		}

		err := w.WriteChapter(context.Background(), chapter)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "TIT25LADE_CH25-2ZO.json"))
		require.NoError(t, err)

		var got municode.Chapter
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, chapter.Key, got.Key)
		require.Len(t, got.Sections, 1)
		assert.Equal(t, "Zoning", got.Sections[0].Title)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "city_code", "2026-08-30")
		w := fs.NewWriter(dir)

		err := w.WriteChapter(context.Background(), &municode.Chapter{Key: "TIT1_CH1"})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "TIT1_CH1.json"))
		require.NoError(t, err)
	})

	t.Run("overwrites an existing chapter file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		first := &municode.Chapter{Key: "TIT1_CH1", Sections: []*municode.Section{{ID: "a"}}}
		require.NoError(t, w.WriteChapter(ctx, first))

		second := &municode.Chapter{Key: "TIT1_CH1", Sections: []*municode.Section{{ID: "b"}, {ID: "c"}}}
		require.NoError(t, w.WriteChapter(ctx, second))

		data, err := os.ReadFile(filepath.Join(dir, "TIT1_CH1.json"))
		require.NoError(t, err)

		var got municode.Chapter
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Len(t, got.Sections, 2)
	})

	t.Run("rejects chapter without key", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteChapter(context.Background(), &municode.Chapter{})
		require.Error(t, err)
		assert.Equal(t, municode.EINVALID, municode.ErrorCode(err))
	})
}

func TestWriter_WriteListing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	docs := []*municode.Document{
		{ID: "TIT1_CH1", Title: "General"},
		{ID: "TIT1_CH2", Title: "Zoning"},
	}

	err := w.WriteListing(context.Background(), docs)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, fs.ListingFileName))
	require.NoError(t, err)

	var got struct {
		Chapters []*municode.Document `json:"chapters"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Chapters, 2)
	assert.Equal(t, "TIT1_CH1", got.Chapters[0].ID)
}
