package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Unikyri/forohub-tui/internal/config"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/models"
)

type httpForumAdapter struct {
	client *resty.Client
	source CredentialSource

	logger *logger.Logger
}

// NewHTTPForumAdapter constructs an HTTP/REST implementation of [ForumAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying resty client with the resolved base URL and
// request timeout. The bearer token is read from source on every request, so
// login and logout take effect without rebuilding the adapter.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPForumAdapter(adapterCfg config.ClientAdapter, source CredentialSource, logger *logger.Logger) (ForumAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpForumAdapter{client: client, source: source, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// newRequest prepares a request carrying a fresh X-Request-Id and, when a
// session is active, the Authorization header.
func (h *httpForumAdapter) newRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := h.source.Credential(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapError classifies resp exactly once. A 401 additionally drops the current
// session through the credential source, so no later request carries the
// rejected token.
func (h *httpForumAdapter) mapError(resp *resty.Response) error {
	err := classifyResponse(resp)
	if errors.Is(err, ErrSessionExpired) {
		h.logger.Warn().
			Str("func", "httpForumAdapter.mapError").
			Str("path", resp.Request.URL).
			Msg("server rejected bearer token, dropping session")
		h.source.Invalidate()
	}
	return err
}

func pageParams(page, size int) map[string]string {
	return map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	}
}

// ── Auth ────────────────────────────────────────────────────────────────────

// Login implements [ForumAdapter]. It POSTs the credentials to
// POST /auth/login and decodes the token envelope from the response body.
func (h *httpForumAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if token.Token == "" {
		return models.TokenResponse{}, fmt.Errorf("%w: login response carries no token", ErrUnknown)
	}

	return token, nil
}

// Register implements [ForumAdapter]. It POSTs the registration data to
// POST /auth/register and returns the created user record.
func (h *httpForumAdapter) Register(ctx context.Context, req models.RegistroRequest) (models.Usuario, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.Usuario{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Usuario{}, err
	}

	var user models.Usuario
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.Usuario{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}

// ValidateToken implements [ForumAdapter]. It POSTs to POST /auth/validate
// with the current bearer token and returns nil iff the server still accepts
// it.
func (h *httpForumAdapter) ValidateToken(ctx context.Context) error {
	resp, err := h.newRequest(ctx).Post("/auth/validate")
	if err != nil {
		return classifyTransport(err)
	}
	return h.mapError(resp)
}

// ── Topics ──────────────────────────────────────────────────────────────────

func (h *httpForumAdapter) ListTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error) {
	return h.getTopicoPage(ctx, "/topicos", pageParams(page, size))
}

func (h *httpForumAdapter) BuscarTopicos(ctx context.Context, term string, page, size int) (models.Page[models.Topico], error) {
	params := pageParams(page, size)
	params["q"] = term
	return h.getTopicoPage(ctx, "/topicos/buscar", params)
}

func (h *httpForumAdapter) TopicosPorCurso(ctx context.Context, cursoID int64, page, size int) (models.Page[models.Topico], error) {
	return h.getTopicoPage(ctx, fmt.Sprintf("/topicos/curso/%d", cursoID), pageParams(page, size))
}

func (h *httpForumAdapter) MisTopicos(ctx context.Context, page, size int) (models.Page[models.Topico], error) {
	return h.getTopicoPage(ctx, "/topicos/mis-topicos", pageParams(page, size))
}

func (h *httpForumAdapter) getTopicoPage(ctx context.Context, path string, params map[string]string) (models.Page[models.Topico], error) {
	resp, err := h.newRequest(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return models.Page[models.Topico]{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Page[models.Topico]{}, err
	}

	var page models.Page[models.Topico]
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.Page[models.Topico]{}, fmt.Errorf("decode topic page: %w", err)
	}

	return page, nil
}

// GetTopico implements [ForumAdapter]. It GETs /topicos/{id} and decodes the
// full topic detail, replies included.
func (h *httpForumAdapter) GetTopico(ctx context.Context, id int64) (models.DetalleTopico, error) {
	resp, err := h.newRequest(ctx).Get(fmt.Sprintf("/topicos/%d", id))
	if err != nil {
		return models.DetalleTopico{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.DetalleTopico{}, err
	}

	var detail models.DetalleTopico
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.DetalleTopico{}, fmt.Errorf("decode topic detail: %w", err)
	}

	return detail, nil
}

// CrearTopico implements [ForumAdapter]. It POSTs the new topic to /topicos
// and returns the created detail so the caller can navigate straight to it.
func (h *httpForumAdapter) CrearTopico(ctx context.Context, req models.CrearTopico) (models.DetalleTopico, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/topicos")
	if err != nil {
		return models.DetalleTopico{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.DetalleTopico{}, err
	}

	var detail models.DetalleTopico
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.DetalleTopico{}, fmt.Errorf("decode created topic: %w", err)
	}

	return detail, nil
}

func (h *httpForumAdapter) ActualizarTopico(ctx context.Context, id int64, req models.ActualizarTopico) (models.DetalleTopico, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/topicos/%d", id))
	if err != nil {
		return models.DetalleTopico{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.DetalleTopico{}, err
	}

	var detail models.DetalleTopico
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.DetalleTopico{}, fmt.Errorf("decode updated topic: %w", err)
	}

	return detail, nil
}

func (h *httpForumAdapter) EliminarTopico(ctx context.Context, id int64) error {
	resp, err := h.newRequest(ctx).Delete(fmt.Sprintf("/topicos/%d", id))
	if err != nil {
		return classifyTransport(err)
	}
	return h.mapError(resp)
}

// ── Replies ─────────────────────────────────────────────────────────────────

func (h *httpForumAdapter) CrearRespuesta(ctx context.Context, topicoID int64, req models.CrearRespuesta) (models.Respuesta, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/respuestas/topico/%d", topicoID))
	if err != nil {
		return models.Respuesta{}, classifyTransport(err)
	}
	return decodeRespuesta(resp, h.mapError)
}

func (h *httpForumAdapter) ListRespuestas(ctx context.Context, topicoID int64, page, size int) (models.Page[models.Respuesta], error) {
	return h.getRespuestaPage(ctx, fmt.Sprintf("/respuestas/topico/%d", topicoID), pageParams(page, size))
}

func (h *httpForumAdapter) MisRespuestas(ctx context.Context, page, size int) (models.Page[models.Respuesta], error) {
	return h.getRespuestaPage(ctx, "/respuestas/mis-respuestas", pageParams(page, size))
}

func (h *httpForumAdapter) getRespuestaPage(ctx context.Context, path string, params map[string]string) (models.Page[models.Respuesta], error) {
	resp, err := h.newRequest(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return models.Page[models.Respuesta]{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Page[models.Respuesta]{}, err
	}

	var page models.Page[models.Respuesta]
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.Page[models.Respuesta]{}, fmt.Errorf("decode reply page: %w", err)
	}

	return page, nil
}

func (h *httpForumAdapter) ActualizarRespuesta(ctx context.Context, id int64, req models.ActualizarRespuesta) (models.Respuesta, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/respuestas/%d", id))
	if err != nil {
		return models.Respuesta{}, classifyTransport(err)
	}
	return decodeRespuesta(resp, h.mapError)
}

func (h *httpForumAdapter) EliminarRespuesta(ctx context.Context, id int64) error {
	resp, err := h.newRequest(ctx).Delete(fmt.Sprintf("/respuestas/%d", id))
	if err != nil {
		return classifyTransport(err)
	}
	return h.mapError(resp)
}

// MarcarSolucion implements [ForumAdapter]. Only the topic author or a
// moderator may mark a solution; the server answers 403 otherwise.
func (h *httpForumAdapter) MarcarSolucion(ctx context.Context, id int64) (models.Respuesta, error) {
	resp, err := h.newRequest(ctx).Patch(fmt.Sprintf("/respuestas/%d/solucion", id))
	if err != nil {
		return models.Respuesta{}, classifyTransport(err)
	}
	return decodeRespuesta(resp, h.mapError)
}

func (h *httpForumAdapter) QuitarSolucion(ctx context.Context, id int64) (models.Respuesta, error) {
	resp, err := h.newRequest(ctx).Delete(fmt.Sprintf("/respuestas/%d/solucion", id))
	if err != nil {
		return models.Respuesta{}, classifyTransport(err)
	}
	return decodeRespuesta(resp, h.mapError)
}

func decodeRespuesta(resp *resty.Response, mapError func(*resty.Response) error) (models.Respuesta, error) {
	if err := mapError(resp); err != nil {
		return models.Respuesta{}, err
	}

	var reply models.Respuesta
	if err := json.Unmarshal(resp.Body(), &reply); err != nil {
		return models.Respuesta{}, fmt.Errorf("decode reply: %w", err)
	}

	return reply, nil
}

// ── Courses ─────────────────────────────────────────────────────────────────

func (h *httpForumAdapter) ListCursos(ctx context.Context) ([]models.Curso, error) {
	return h.getCursos(ctx, "/cursos", nil)
}

func (h *httpForumAdapter) CursosPorCategoria(ctx context.Context, categoria string) ([]models.Curso, error) {
	return h.getCursos(ctx, "/cursos/categoria/"+url.PathEscape(categoria), nil)
}

func (h *httpForumAdapter) BuscarCursos(ctx context.Context, term string) ([]models.Curso, error) {
	return h.getCursos(ctx, "/cursos/buscar", map[string]string{"q": term})
}

func (h *httpForumAdapter) getCursos(ctx context.Context, path string, params map[string]string) ([]models.Curso, error) {
	req := h.newRequest(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return nil, err
	}

	var courses []models.Curso
	if err = json.Unmarshal(resp.Body(), &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	return courses, nil
}

func (h *httpForumAdapter) CursosPaginado(ctx context.Context, page, size int) (models.Page[models.Curso], error) {
	resp, err := h.newRequest(ctx).
		SetQueryParams(pageParams(page, size)).
		Get("/cursos/paginado")
	if err != nil {
		return models.Page[models.Curso]{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Page[models.Curso]{}, err
	}

	var coursePage models.Page[models.Curso]
	if err = json.Unmarshal(resp.Body(), &coursePage); err != nil {
		return models.Page[models.Curso]{}, fmt.Errorf("decode course page: %w", err)
	}

	return coursePage, nil
}

func (h *httpForumAdapter) ListCategorias(ctx context.Context) ([]string, error) {
	resp, err := h.newRequest(ctx).Get("/cursos/categorias")
	if err != nil {
		return nil, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return nil, err
	}

	var categories []string
	if err = json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}

// ── Stats ───────────────────────────────────────────────────────────────────

func (h *httpForumAdapter) GetEstadisticas(ctx context.Context) (models.Estadisticas, error) {
	resp, err := h.newRequest(ctx).Get("/estadisticas")
	if err != nil {
		return models.Estadisticas{}, classifyTransport(err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Estadisticas{}, err
	}

	var stats models.Estadisticas
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.Estadisticas{}, fmt.Errorf("decode statistics: %w", err)
	}

	return stats, nil
}
