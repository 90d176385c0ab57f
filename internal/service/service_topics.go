package service

import (
	"context"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/cache"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/models"
)

type topicService struct {
	adapter adapter.ForumAdapter
	cache   *cache.QueryCache

	logger *logger.Logger
}

func NewTopicService(forumAdapter adapter.ForumAdapter, queryCache *cache.QueryCache, logger *logger.Logger) TopicService {
	return &topicService{adapter: forumAdapter, cache: queryCache, logger: logger}
}

// ── Reads ───────────────────────────────────────────────────────────────────

func (s *topicService) ListTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error) {
	return cache.Fetch(ctx, s.cache, topicsListKey(page, size), func(ctx context.Context) (models.Page[models.Topico], error) {
		return s.adapter.ListTopicos(ctx, page, size)
	})
}

func (s *topicService) BuscarTopicos(ctx context.Context, term string, page, size int) (models.Page[models.Topico], error) {
	return cache.Fetch(ctx, s.cache, topicsSearchKey(term, page, size), func(ctx context.Context) (models.Page[models.Topico], error) {
		return s.adapter.BuscarTopicos(ctx, term, page, size)
	})
}

func (s *topicService) TopicosPorCurso(ctx context.Context, cursoID int64, page, size int) (models.Page[models.Topico], error) {
	return cache.Fetch(ctx, s.cache, topicsCourseKey(cursoID, page, size), func(ctx context.Context) (models.Page[models.Topico], error) {
		return s.adapter.TopicosPorCurso(ctx, cursoID, page, size)
	})
}

func (s *topicService) MisTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error) {
	return cache.Fetch(ctx, s.cache, topicsMineKey(page, size), func(ctx context.Context) (models.Page[models.Topico], error) {
		return s.adapter.MisTopicos(ctx, page, size)
	})
}

func (s *topicService) GetTopico(ctx context.Context, id int64) (models.DetalleTopico, error) {
	return cache.Fetch(ctx, s.cache, topicDetailKey(id), func(ctx context.Context) (models.DetalleTopico, error) {
		return s.adapter.GetTopico(ctx, id)
	})
}

func (s *topicService) ListRespuestas(ctx context.Context, topicoID int64, page, size int) (models.Page[models.Respuesta], error) {
	return cache.Fetch(ctx, s.cache, repliesTopicKey(topicoID, page, size), func(ctx context.Context) (models.Page[models.Respuesta], error) {
		return s.adapter.ListRespuestas(ctx, topicoID, page, size)
	})
}

func (s *topicService) MisRespuestas(ctx context.Context, page, size int) (models.Page[models.Respuesta], error) {
	return cache.Fetch(ctx, s.cache, repliesMineKey(page, size), func(ctx context.Context) (models.Page[models.Respuesta], error) {
		return s.adapter.MisRespuestas(ctx, page, size)
	})
}

// ── Topic mutations ─────────────────────────────────────────────────────────

func (s *topicService) CrearTopico(ctx context.Context, req models.CrearTopico) (models.DetalleTopico, error) {
	created, err := s.adapter.CrearTopico(ctx, req)
	if err != nil {
		return models.DetalleTopico{}, err
	}

	s.invalidateCollections()
	s.logger.Info().
		Str("func", "topicService.CrearTopico").
		Int64("topico_id", created.ID).
		Msg("topic created")
	return created, nil
}

func (s *topicService) ActualizarTopico(ctx context.Context, id int64, req models.ActualizarTopico) (models.DetalleTopico, error) {
	updated, err := s.adapter.ActualizarTopico(ctx, id, req)
	if err != nil {
		return models.DetalleTopico{}, err
	}

	s.cache.Invalidate(topicDetailKey(id))
	s.invalidateCollections()
	return updated, nil
}

func (s *topicService) EliminarTopico(ctx context.Context, id int64) error {
	if err := s.adapter.EliminarTopico(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(topicDetailKey(id))
	s.invalidateCollections()
	s.logger.Info().
		Str("func", "topicService.EliminarTopico").
		Int64("topico_id", id).
		Msg("topic deleted")
	return nil
}

// ── Reply mutations ─────────────────────────────────────────────────────────
//
// Every reply mutation invalidates the owning topic's cached detail and the
// topic collections: the collections carry reply counts, and a solution mark
// changes the topic status shown in them.

func (s *topicService) CrearRespuesta(ctx context.Context, topicoID int64, req models.CrearRespuesta) (models.Respuesta, error) {
	created, err := s.adapter.CrearRespuesta(ctx, topicoID, req)
	if err != nil {
		return models.Respuesta{}, err
	}

	s.invalidateTopic(topicoID)
	return created, nil
}

func (s *topicService) ActualizarRespuesta(ctx context.Context, topicoID, respuestaID int64, req models.ActualizarRespuesta) (models.Respuesta, error) {
	updated, err := s.adapter.ActualizarRespuesta(ctx, respuestaID, req)
	if err != nil {
		return models.Respuesta{}, err
	}

	s.invalidateTopic(topicoID)
	return updated, nil
}

func (s *topicService) EliminarRespuesta(ctx context.Context, topicoID, respuestaID int64) error {
	if err := s.adapter.EliminarRespuesta(ctx, respuestaID); err != nil {
		return err
	}

	s.invalidateTopic(topicoID)
	return nil
}

func (s *topicService) MarcarSolucion(ctx context.Context, topicoID, respuestaID int64) (models.Respuesta, error) {
	marked, err := s.adapter.MarcarSolucion(ctx, respuestaID)
	if err != nil {
		return models.Respuesta{}, err
	}

	s.invalidateTopic(topicoID)
	return marked, nil
}

func (s *topicService) QuitarSolucion(ctx context.Context, topicoID, respuestaID int64) (models.Respuesta, error) {
	unmarked, err := s.adapter.QuitarSolucion(ctx, respuestaID)
	if err != nil {
		return models.Respuesta{}, err
	}

	s.invalidateTopic(topicoID)
	return unmarked, nil
}

// ── Invalidation ────────────────────────────────────────────────────────────

func (s *topicService) RefreshCollections() {
	s.invalidateCollections()
	s.cache.InvalidateKind(kindTopicDetail)
}

func (s *topicService) invalidateCollections() {
	for _, kind := range topicCollectionKinds {
		s.cache.InvalidateKind(kind)
	}
	s.cache.InvalidateKind(kindRepliesTopic)
	s.cache.InvalidateKind(kindRepliesMine)
}

func (s *topicService) invalidateTopic(topicoID int64) {
	s.cache.Invalidate(topicDetailKey(topicoID))
	s.invalidateCollections()
}
