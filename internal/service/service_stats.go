package service

import (
	"context"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/cache"
	"github.com/Unikyri/forohub-tui/models"
)

type statsService struct {
	adapter adapter.ForumAdapter
	cache   *cache.QueryCache
}

func NewStatsService(forumAdapter adapter.ForumAdapter, queryCache *cache.QueryCache) StatsService {
	return &statsService{adapter: forumAdapter, cache: queryCache}
}

func (s *statsService) GetEstadisticas(ctx context.Context) (models.Estadisticas, error) {
	return cache.Fetch(ctx, s.cache, statsKey(), func(ctx context.Context) (models.Estadisticas, error) {
		return s.adapter.GetEstadisticas(ctx)
	})
}

func (s *statsService) Refresh() {
	s.cache.InvalidateKind(kindStats)
}
