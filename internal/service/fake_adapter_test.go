package service

import (
	"context"

	"github.com/Unikyri/forohub-tui/models"
)

// fakeForumAdapter is an in-memory ForumAdapter that counts calls per
// endpoint and returns canned values, so the tests can observe how often the
// services actually hit the network.
type fakeForumAdapter struct {
	calls map[string]int

	loginErr    error
	registerErr error
	validateErr error
	mutationErr error

	token    models.TokenResponse
	usuario  models.Usuario
	topicos  models.Page[models.Topico]
	detalle  models.DetalleTopico
	reply    models.Respuesta
	replies  models.Page[models.Respuesta]
	cursos   []models.Curso
	cursoPag models.Page[models.Curso]
	stats    models.Estadisticas
}

func newFakeForumAdapter() *fakeForumAdapter {
	return &fakeForumAdapter{
		calls: make(map[string]int),
		token: models.TokenResponse{Token: "jwt-token", Tipo: "Bearer"},
	}
}

func (f *fakeForumAdapter) count(name string) { f.calls[name]++ }

func (f *fakeForumAdapter) Login(context.Context, models.LoginRequest) (models.TokenResponse, error) {
	f.count("Login")
	if f.loginErr != nil {
		return models.TokenResponse{}, f.loginErr
	}
	return f.token, nil
}

func (f *fakeForumAdapter) Register(context.Context, models.RegistroRequest) (models.Usuario, error) {
	f.count("Register")
	if f.registerErr != nil {
		return models.Usuario{}, f.registerErr
	}
	return f.usuario, nil
}

func (f *fakeForumAdapter) ValidateToken(context.Context) error {
	f.count("ValidateToken")
	return f.validateErr
}

func (f *fakeForumAdapter) ListTopicos(context.Context, int, int) (models.Page[models.Topico], error) {
	f.count("ListTopicos")
	return f.topicos, nil
}

func (f *fakeForumAdapter) BuscarTopicos(context.Context, string, int, int) (models.Page[models.Topico], error) {
	f.count("BuscarTopicos")
	return f.topicos, nil
}

func (f *fakeForumAdapter) TopicosPorCurso(context.Context, int64, int, int) (models.Page[models.Topico], error) {
	f.count("TopicosPorCurso")
	return f.topicos, nil
}

func (f *fakeForumAdapter) MisTopicos(context.Context, int, int) (models.Page[models.Topico], error) {
	f.count("MisTopicos")
	return f.topicos, nil
}

func (f *fakeForumAdapter) GetTopico(context.Context, int64) (models.DetalleTopico, error) {
	f.count("GetTopico")
	return f.detalle, nil
}

func (f *fakeForumAdapter) CrearTopico(context.Context, models.CrearTopico) (models.DetalleTopico, error) {
	f.count("CrearTopico")
	if f.mutationErr != nil {
		return models.DetalleTopico{}, f.mutationErr
	}
	return f.detalle, nil
}

func (f *fakeForumAdapter) ActualizarTopico(context.Context, int64, models.ActualizarTopico) (models.DetalleTopico, error) {
	f.count("ActualizarTopico")
	if f.mutationErr != nil {
		return models.DetalleTopico{}, f.mutationErr
	}
	return f.detalle, nil
}

func (f *fakeForumAdapter) EliminarTopico(context.Context, int64) error {
	f.count("EliminarTopico")
	return f.mutationErr
}

func (f *fakeForumAdapter) CrearRespuesta(context.Context, int64, models.CrearRespuesta) (models.Respuesta, error) {
	f.count("CrearRespuesta")
	if f.mutationErr != nil {
		return models.Respuesta{}, f.mutationErr
	}
	return f.reply, nil
}

func (f *fakeForumAdapter) ListRespuestas(context.Context, int64, int, int) (models.Page[models.Respuesta], error) {
	f.count("ListRespuestas")
	return f.replies, nil
}

func (f *fakeForumAdapter) ActualizarRespuesta(context.Context, int64, models.ActualizarRespuesta) (models.Respuesta, error) {
	f.count("ActualizarRespuesta")
	if f.mutationErr != nil {
		return models.Respuesta{}, f.mutationErr
	}
	return f.reply, nil
}

func (f *fakeForumAdapter) EliminarRespuesta(context.Context, int64) error {
	f.count("EliminarRespuesta")
	return f.mutationErr
}

func (f *fakeForumAdapter) MarcarSolucion(context.Context, int64) (models.Respuesta, error) {
	f.count("MarcarSolucion")
	if f.mutationErr != nil {
		return models.Respuesta{}, f.mutationErr
	}
	return f.reply, nil
}

func (f *fakeForumAdapter) QuitarSolucion(context.Context, int64) (models.Respuesta, error) {
	f.count("QuitarSolucion")
	if f.mutationErr != nil {
		return models.Respuesta{}, f.mutationErr
	}
	return f.reply, nil
}

func (f *fakeForumAdapter) MisRespuestas(context.Context, int, int) (models.Page[models.Respuesta], error) {
	f.count("MisRespuestas")
	return f.replies, nil
}

func (f *fakeForumAdapter) ListCursos(context.Context) ([]models.Curso, error) {
	f.count("ListCursos")
	return f.cursos, nil
}

func (f *fakeForumAdapter) CursosPaginado(context.Context, int, int) (models.Page[models.Curso], error) {
	f.count("CursosPaginado")
	return f.cursoPag, nil
}

func (f *fakeForumAdapter) CursosPorCategoria(context.Context, string) ([]models.Curso, error) {
	f.count("CursosPorCategoria")
	return f.cursos, nil
}

func (f *fakeForumAdapter) BuscarCursos(context.Context, string) ([]models.Curso, error) {
	f.count("BuscarCursos")
	return f.cursos, nil
}

func (f *fakeForumAdapter) ListCategorias(context.Context) ([]string, error) {
	f.count("ListCategorias")
	return []string{"PROGRAMACION"}, nil
}

func (f *fakeForumAdapter) GetEstadisticas(context.Context) (models.Estadisticas, error) {
	f.count("GetEstadisticas")
	return f.stats, nil
}
