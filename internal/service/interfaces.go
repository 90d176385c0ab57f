// SPDX-License-Identifier: Apache-2.0

// Package service contains the client's business layer: authentication on top
// of the session store, and forum reads that go through the query cache while
// writes go straight to the adapter and invalidate the affected cache kinds.
//
// Errors from the adapter are passed through unchanged — the adapter
// classifies each failure exactly once and this layer never re-maps them.
package service

import (
	"context"

	"github.com/Unikyri/forohub-tui/models"
)

// AuthService handles account creation, login and session restoration.
type AuthService interface {
	// Login exchanges credentials for a token and atomically installs the
	// authenticated session.
	Login(ctx context.Context, correo, contrasena string) error

	// Register creates the account and then logs in with the same
	// credentials, so the stored identity carries the full server-attested
	// profile.
	Register(ctx context.Context, nombre, correo, contrasena string) error

	// Logout clears the session. Already being logged out is not an error.
	Logout(ctx context.Context) error

	// RestoreSession checks whether a session restored from disk is still
	// accepted by the server. It returns the session and true when it is.
	// A rejected token has already been dropped by the time this returns;
	// a server that cannot be reached keeps the session (the next request
	// will sort it out).
	RestoreSession(ctx context.Context) (models.Session, bool)

	// Current returns the session as it is right now.
	Current() models.Session
}

// TopicService serves topic and reply operations. Reads are cached per query;
// every successful mutation invalidates the collections it may have changed.
type TopicService interface {
	ListTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error)
	BuscarTopicos(ctx context.Context, term string, page, size int) (models.Page[models.Topico], error)
	TopicosPorCurso(ctx context.Context, cursoID int64, page, size int) (models.Page[models.Topico], error)
	MisTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error)
	GetTopico(ctx context.Context, id int64) (models.DetalleTopico, error)

	// CrearTopico returns the created detail so the UI can open it directly.
	CrearTopico(ctx context.Context, req models.CrearTopico) (models.DetalleTopico, error)
	ActualizarTopico(ctx context.Context, id int64, req models.ActualizarTopico) (models.DetalleTopico, error)
	EliminarTopico(ctx context.Context, id int64) error

	// ListRespuestas pages through a topic's replies independently of the
	// embedded detail snapshot, for topics too long to show at once.
	ListRespuestas(ctx context.Context, topicoID int64, page, size int) (models.Page[models.Respuesta], error)

	// Reply mutations take the owning topic's id so its cached detail can be
	// invalidated along with the collections (reply counts change).
	CrearRespuesta(ctx context.Context, topicoID int64, req models.CrearRespuesta) (models.Respuesta, error)
	ActualizarRespuesta(ctx context.Context, topicoID, respuestaID int64, req models.ActualizarRespuesta) (models.Respuesta, error)
	EliminarRespuesta(ctx context.Context, topicoID, respuestaID int64) error
	MarcarSolucion(ctx context.Context, topicoID, respuestaID int64) (models.Respuesta, error)
	QuitarSolucion(ctx context.Context, topicoID, respuestaID int64) (models.Respuesta, error)
	MisRespuestas(ctx context.Context, page, size int) (models.Page[models.Respuesta], error)

	// RefreshCollections marks every cached topic collection stale so the
	// next read refetches. Used by the background refresh worker.
	RefreshCollections()
}

// CourseService serves the course catalogue, cached per query.
type CourseService interface {
	ListCursos(ctx context.Context) ([]models.Curso, error)
	CursosPaginado(ctx context.Context, page, size int) (models.Page[models.Curso], error)
	CursosPorCategoria(ctx context.Context, categoria string) ([]models.Curso, error)
	BuscarCursos(ctx context.Context, term string) ([]models.Curso, error)
	ListCategorias(ctx context.Context) ([]string, error)
}

// StatsService serves the forum-wide counters, cached under a single key.
type StatsService interface {
	GetEstadisticas(ctx context.Context) (models.Estadisticas, error)

	// Refresh marks the cached counters stale.
	Refresh()
}
