// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Unikyri/forohub-tui/internal/config"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentialSource struct {
	token         string
	invalidations int
}

func (f *fakeCredentialSource) Credential() string { return f.token }
func (f *fakeCredentialSource) Invalidate()        { f.invalidations++; f.token = "" }

func newTestAdapter(t *testing.T, serverURL string, source *fakeCredentialSource) ForumAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPForumAdapter(adapterCfg, source, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.TokenResponse{Token: "jwt-token", Tipo: "Bearer", Expiracion: 1756400000}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@forohub.test", req.CorreoElectronico)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{})
	got, err := a.Login(context.Background(), models.LoginRequest{
		CorreoElectronico: "ana@forohub.test",
		Contrasena:        "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("credenciales invalidas"))
	}))
	defer srv.Close()

	source := &fakeCredentialSource{}
	a := newTestAdapter(t, srv.URL, source)
	_, err := a.Login(context.Background(), models.LoginRequest{CorreoElectronico: "ana@forohub.test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tipo":"Bearer"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{})
	_, err := a.Login(context.Background(), models.LoginRequest{CorreoElectronico: "ana@forohub.test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"nombre":"Ana Torres","correoElectronico":"ana@forohub.test","perfil":{"id":1,"nombre":"Usuario","tipo":"USUARIO"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{})
	got, err := a.Register(context.Background(), models.RegistroRequest{
		Nombre:            "Ana Torres",
		CorreoElectronico: "ana@forohub.test",
		Contrasena:        "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, models.PerfilUsuario, got.Perfil.Tipo)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"codigo":"VALIDACION","mensaje":"El correo electrónico ya está registrado","detalles":{"correoElectronico":"duplicado"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{})
	_, err := a.Register(context.Background(), models.RegistroRequest{CorreoElectronico: "ana@forohub.test"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrApplication)

	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "El correo electrónico ya está registrado", appErr.Mensaje)
	assert.Equal(t, "duplicado", appErr.Detalles["correoElectronico"])
}

// ── Authorization injection ─────────────────────────────────────────────────

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Page[models.Topico]{})
	}))
	defer srv.Close()

	source := &fakeCredentialSource{token: "jwt-token"}
	a := newTestAdapter(t, srv.URL, source)

	_, err := a.ListTopicos(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)

	// logged out: header absent
	source.token = ""
	_, err = a.ListTopicos(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// ── Classification ──────────────────────────────────────────────────────────

func TestClassification_StatusBeforeBody(t *testing.T) {
	// a 401 carrying a mensaje body must still classify as session expiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"mensaje":"token vencido"}`))
	}))
	defer srv.Close()

	source := &fakeCredentialSource{token: "stale"}
	a := newTestAdapter(t, srv.URL, source)
	_, err := a.ListTopicos(context.Background(), 0, 10)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.NotErrorIs(t, err, ErrApplication)
	assert.Equal(t, 1, source.invalidations)
}

func TestClassification_Table(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"forbidden", http.StatusForbidden, "no eres el autor", ErrForbidden},
		{"not found", http.StatusNotFound, "", ErrNotFound},
		{"internal error", http.StatusInternalServerError, "boom", ErrServer},
		{"bad gateway", http.StatusBadGateway, "", ErrServer},
		{"validation with mensaje", http.StatusUnprocessableEntity, `{"mensaje":"El título es obligatorio"}`, ErrApplication},
		{"teapot without mensaje", http.StatusTeapot, "short and stout", ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			source := &fakeCredentialSource{token: "jwt-token"}
			a := newTestAdapter(t, srv.URL, source)
			_, err := a.GetTopico(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, source.invalidations)
		})
	}
}

func TestClassification_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	adapterCfg := config.ClientAdapter{ServerURL: srv.URL, RequestTimeout: 20 * time.Millisecond}
	a, err := NewHTTPForumAdapter(adapterCfg, &fakeCredentialSource{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListTopicos(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrTimeout)
}

// ── Topics ──────────────────────────────────────────────────────────────────

func TestListTopicos_PageDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topicos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"id":1,"titulo":"Error con slices","mensaje":"...","status":"ABIERTO",
				"fechaCreacion":"2026-08-27T10:15:30","autorNombre":"Ana","cursoNombre":"Go","totalRespuestas":3}],
			"totalElements": 21, "totalPages": 3, "size": 10, "number": 2, "first": false, "last": true
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	page, err := a.ListTopicos(context.Background(), 2, 10)

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Error con slices", page.Content[0].Titulo)
	assert.Equal(t, models.StatusAbierto, page.Content[0].Status)
	assert.Equal(t, 2026, page.Content[0].FechaCreacion.Year())
	assert.Equal(t, int64(21), page.TotalElements)
	assert.True(t, page.Last)
}

func TestBuscarTopicos_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topicos/buscar", r.URL.Path)
		assert.Equal(t, "generics", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Page[models.Topico]{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{})
	_, err := a.BuscarTopicos(context.Background(), "generics", 0, 10)
	require.NoError(t, err)
}

func TestCrearTopico_ReturnsDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/topicos", r.URL.Path)

		var req models.CrearTopico
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(4), req.CursoID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":88,"titulo":"Nuevo tópico","status":"ABIERTO"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.CrearTopico(context.Background(), models.CrearTopico{
		Titulo:  "Nuevo tópico",
		Mensaje: "cuerpo",
		CursoID: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(88), got.ID)
}

func TestEliminarTopico_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/topicos/5", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	err := a.EliminarTopico(context.Background(), 5)

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Replies ─────────────────────────────────────────────────────────────────

func TestCrearRespuesta_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/respuestas/topico/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":31,"mensaje":"prueba con httptest","solucion":false}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.CrearRespuesta(context.Background(), 7, models.CrearRespuesta{Mensaje: "prueba con httptest"})

	require.NoError(t, err)
	assert.Equal(t, int64(31), got.ID)
	assert.False(t, got.Solucion)
}

func TestMarcarSolucion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/respuestas/31/solucion", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":31,"mensaje":"prueba","solucion":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.MarcarSolucion(context.Background(), 31)

	require.NoError(t, err)
	assert.True(t, got.Solucion)
}

func TestQuitarSolucion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/respuestas/31/solucion", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":31,"mensaje":"prueba","solucion":false}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.QuitarSolucion(context.Background(), 31)

	require.NoError(t, err)
	assert.False(t, got.Solucion)
}

// ── Courses and stats ───────────────────────────────────────────────────────

func TestListCursos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cursos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":4,"nombre":"Go desde cero","categoria":"PROGRAMACION"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.ListCursos(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go desde cero", got[0].Nombre)
}

func TestCursosPorCategoria_EscapesPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cursos/categoria/DISE%C3%91O", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	_, err := a.CursosPorCategoria(context.Background(), "DISEÑO")
	require.NoError(t, err)
}

func TestListCategorias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cursos/categorias", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["PROGRAMACION","DEVOPS"]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.ListCategorias(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"PROGRAMACION", "DEVOPS"}, got)
}

func TestGetEstadisticas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/estadisticas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalTopicos":120,"totalRespuestas":540,"totalUsuarios":60,"totalCursos":12,"topicosResueltos":80,"topicosAbiertos":30}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
	got, err := a.GetEstadisticas(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), got.TotalTopicos)
	assert.Equal(t, int64(80), got.TopicosResueltos)
}

// ── ValidateToken ───────────────────────────────────────────────────────────

func TestValidateToken(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/validate", r.URL.Path)
			assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL, &fakeCredentialSource{token: "jwt-token"})
		require.NoError(t, a.ValidateToken(context.Background()))
	})

	t.Run("rejected drops session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		source := &fakeCredentialSource{token: "stale"}
		a := newTestAdapter(t, srv.URL, source)
		err := a.ValidateToken(context.Background())

		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, 1, source.invalidations)
	})
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080/api", "http://localhost:8080/api", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/api/", "http://localhost:8080/api", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
