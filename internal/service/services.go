package service

import (
	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/cache"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/store"
)

// Services groups the client's business services into a single value that can
// be passed around the UI layer.
type Services struct {
	Auth    AuthService
	Topics  TopicService
	Courses CourseService
	Stats   StatsService
}

func NewServices(storages *store.ClientStorages, forumAdapter adapter.ForumAdapter, queryCache *cache.QueryCache, logger *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(storages.Sessions, forumAdapter, logger),
		Topics:  NewTopicService(forumAdapter, queryCache, logger),
		Courses: NewCourseService(forumAdapter, queryCache),
		Stats:   NewStatsService(forumAdapter, queryCache),
	}
}
