package service

import (
	"context"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/cache"
	"github.com/Unikyri/forohub-tui/models"
)

// The catalogue changes rarely, so every course query is cached under the
// single "courses" kind and only the background refresh worker ever marks it
// stale.
type courseService struct {
	adapter adapter.ForumAdapter
	cache   *cache.QueryCache
}

func NewCourseService(forumAdapter adapter.ForumAdapter, queryCache *cache.QueryCache) CourseService {
	return &courseService{adapter: forumAdapter, cache: queryCache}
}

func (s *courseService) ListCursos(ctx context.Context) ([]models.Curso, error) {
	return cache.Fetch(ctx, s.cache, coursesKey(), func(ctx context.Context) ([]models.Curso, error) {
		return s.adapter.ListCursos(ctx)
	})
}

func (s *courseService) CursosPaginado(ctx context.Context, page, size int) (models.Page[models.Curso], error) {
	return cache.Fetch(ctx, s.cache, coursesPageKey(page, size), func(ctx context.Context) (models.Page[models.Curso], error) {
		return s.adapter.CursosPaginado(ctx, page, size)
	})
}

func (s *courseService) CursosPorCategoria(ctx context.Context, categoria string) ([]models.Curso, error) {
	return cache.Fetch(ctx, s.cache, coursesCategoryKey(categoria), func(ctx context.Context) ([]models.Curso, error) {
		return s.adapter.CursosPorCategoria(ctx, categoria)
	})
}

func (s *courseService) BuscarCursos(ctx context.Context, term string) ([]models.Curso, error) {
	return cache.Fetch(ctx, s.cache, coursesSearchKey(term), func(ctx context.Context) ([]models.Curso, error) {
		return s.adapter.BuscarCursos(ctx, term)
	})
}

func (s *courseService) ListCategorias(ctx context.Context) ([]string, error) {
	return cache.Fetch(ctx, s.cache, courseCategoriesKey(), func(ctx context.Context) ([]string, error) {
		return s.adapter.ListCategorias(ctx)
	})
}
