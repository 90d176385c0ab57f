// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the ForoHub server.
//
// The primary abstraction is [ForumAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPForumAdapter]) built on resty.
//
// Every response is classified exactly once into the sentinel values defined
// in errors.go, so callers can use [errors.Is] and [errors.As] for
// transport-agnostic error handling (e.g. [ErrSessionExpired] for 401,
// [*ApplicationError] for a domain rejection carried in the response body).
package adapter

import (
	"context"

	"github.com/Unikyri/forohub-tui/models"
)

// CredentialSource supplies the bearer token for outgoing requests and is
// told when the server rejects it. The session store implements it.
type CredentialSource interface {
	// Credential returns the current bearer token, or "" when no session is
	// active. It must not block on I/O; it is called on every request.
	Credential() string

	// Invalidate drops the current session after the server answered 401.
	Invalidate()
}

// ForumAdapter defines transport-agnostic communication with the ForoHub
// server. Implementations are responsible for serialisation, authorization
// header management, and mapping transport-level failures to the sentinel
// values defined in this package.
type ForumAdapter interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Register creates a new account and returns the created user record.
	Register(ctx context.Context, req models.RegistroRequest) (models.Usuario, error)

	// ValidateToken asks the server whether the current bearer token is still
	// accepted. Returns nil when it is; [ErrSessionExpired] when it is not.
	ValidateToken(ctx context.Context) error

	// ListTopicos fetches one page of the open topic feed.
	ListTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error)

	// BuscarTopicos fetches one page of topics matching the search term.
	BuscarTopicos(ctx context.Context, term string, page, size int) (models.Page[models.Topico], error)

	// TopicosPorCurso fetches one page of topics belonging to a course.
	TopicosPorCurso(ctx context.Context, cursoID int64, page, size int) (models.Page[models.Topico], error)

	// MisTopicos fetches one page of topics authored by the current user.
	MisTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error)

	// GetTopico fetches the full detail of one topic, replies included.
	GetTopico(ctx context.Context, id int64) (models.DetalleTopico, error)

	// CrearTopico publishes a new topic and returns its detail.
	CrearTopico(ctx context.Context, req models.CrearTopico) (models.DetalleTopico, error)

	// ActualizarTopico edits a topic owned by the current user.
	ActualizarTopico(ctx context.Context, id int64, req models.ActualizarTopico) (models.DetalleTopico, error)

	// EliminarTopico deletes a topic owned by the current user.
	EliminarTopico(ctx context.Context, id int64) error

	// CrearRespuesta posts a reply under the given topic.
	CrearRespuesta(ctx context.Context, topicoID int64, req models.CrearRespuesta) (models.Respuesta, error)

	// ListRespuestas fetches one page of the replies under a topic.
	ListRespuestas(ctx context.Context, topicoID int64, page, size int) (models.Page[models.Respuesta], error)

	// ActualizarRespuesta edits a reply owned by the current user.
	ActualizarRespuesta(ctx context.Context, id int64, req models.ActualizarRespuesta) (models.Respuesta, error)

	// EliminarRespuesta deletes a reply owned by the current user.
	EliminarRespuesta(ctx context.Context, id int64) error

	// MarcarSolucion marks a reply as the accepted solution of its topic.
	MarcarSolucion(ctx context.Context, id int64) (models.Respuesta, error)

	// QuitarSolucion removes the solution mark from a reply.
	QuitarSolucion(ctx context.Context, id int64) (models.Respuesta, error)

	// MisRespuestas fetches one page of replies authored by the current user.
	MisRespuestas(ctx context.Context, page, size int) (models.Page[models.Respuesta], error)

	// ListCursos fetches the full course catalogue.
	ListCursos(ctx context.Context) ([]models.Curso, error)

	// CursosPaginado fetches one page of the course catalogue.
	CursosPaginado(ctx context.Context, page, size int) (models.Page[models.Curso], error)

	// CursosPorCategoria fetches the courses of one category.
	CursosPorCategoria(ctx context.Context, categoria string) ([]models.Curso, error)

	// BuscarCursos fetches the courses matching the search term.
	BuscarCursos(ctx context.Context, term string) ([]models.Curso, error)

	// ListCategorias fetches the distinct course categories.
	ListCategorias(ctx context.Context) ([]string, error)

	// GetEstadisticas fetches the forum-wide counters.
	GetEstadisticas(ctx context.Context) (models.Estadisticas, error)
}
