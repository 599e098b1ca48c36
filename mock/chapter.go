package mock

import (
	"context"

	"github.com/fwojciec/municode"
)

var _ municode.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of municode.ChapterService.
type ChapterService struct {
	CreateChapterFn      func(ctx context.Context, chapter *municode.Chapter) error
	FindChapterByKeyFn   func(ctx context.Context, key string) (*municode.Chapter, error)
	FindSectionsFn       func(ctx context.Context, filter municode.SectionFilter) ([]*municode.Section, error)
	DeleteChapterByKeyFn func(ctx context.Context, key string) error
}

func (s *ChapterService) CreateChapter(ctx context.Context, chapter *municode.Chapter) error {
	return s.CreateChapterFn(ctx, chapter)
}

func (s *ChapterService) FindChapterByKey(ctx context.Context, key string) (*municode.Chapter, error) {
	return s.FindChapterByKeyFn(ctx, key)
}

func (s *ChapterService) FindSections(ctx context.Context, filter municode.SectionFilter) ([]*municode.Section, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *ChapterService) DeleteChapterByKey(ctx context.Context, key string) error {
	return s.DeleteChapterByKeyFn(ctx, key)
}
