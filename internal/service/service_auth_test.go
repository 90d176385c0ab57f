package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/store"
	"github.com/Unikyri/forohub-tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionRepository keeps the persisted session in memory.
type memSessionRepository struct {
	persisted *models.Session
}

func (m *memSessionRepository) Save(_ context.Context, session models.Session) error {
	m.persisted = &session
	return nil
}

func (m *memSessionRepository) Load(_ context.Context) (models.Session, error) {
	if m.persisted == nil {
		return models.EmptySession(), store.ErrSessionNotFound
	}
	return *m.persisted, nil
}

func (m *memSessionRepository) Clear(_ context.Context) error {
	m.persisted = nil
	return nil
}

func newTestSessions(t *testing.T) *store.SessionStore {
	t.Helper()
	return store.NewSessionStore(&memSessionRepository{}, logger.Nop())
}

func TestAuthService_Login(t *testing.T) {
	fake := newFakeForumAdapter()
	sessions := newTestSessions(t)
	auth := NewAuthService(sessions, fake, logger.Nop())

	require.NoError(t, auth.Login(context.Background(), "ana@forohub.test", "secret"))

	current := auth.Current()
	assert.True(t, current.IsAuthenticated)
	assert.Equal(t, "jwt-token", current.Token)
	assert.Equal(t, "ana@forohub.test", current.User.CorreoElectronico)
	// only server-attested identity: no invented display name
	assert.Empty(t, current.User.Nombre)
}

func TestAuthService_LoginFailureLeavesLoggedOut(t *testing.T) {
	fake := newFakeForumAdapter()
	fake.loginErr = adapter.ErrSessionExpired
	sessions := newTestSessions(t)
	auth := NewAuthService(sessions, fake, logger.Nop())

	err := auth.Login(context.Background(), "ana@forohub.test", "wrong")

	// the adapter's classification passes through untouched
	assert.ErrorIs(t, err, adapter.ErrSessionExpired)
	assert.False(t, auth.Current().IsAuthenticated)
}

func TestAuthService_RegisterStoresFullProfile(t *testing.T) {
	fake := newFakeForumAdapter()
	fake.usuario = models.Usuario{
		ID:                7,
		Nombre:            "Ana Torres",
		CorreoElectronico: "ana@forohub.test",
		Perfil:            models.Perfil{Tipo: models.PerfilUsuario},
	}
	sessions := newTestSessions(t)
	auth := NewAuthService(sessions, fake, logger.Nop())

	require.NoError(t, auth.Register(context.Background(), "Ana Torres", "ana@forohub.test", "secret"))

	current := auth.Current()
	assert.True(t, current.IsAuthenticated)
	assert.Equal(t, int64(7), current.User.ID)
	assert.Equal(t, "Ana Torres", current.User.Nombre)
	assert.Equal(t, 1, fake.calls["Register"])
	assert.Equal(t, 1, fake.calls["Login"])
}

func TestAuthService_RegisterThenLoginFailure(t *testing.T) {
	fake := newFakeForumAdapter()
	fake.loginErr = errors.New("login after register failed")
	sessions := newTestSessions(t)
	auth := NewAuthService(sessions, fake, logger.Nop())

	err := auth.Register(context.Background(), "Ana", "ana@forohub.test", "secret")

	require.Error(t, err)
	assert.False(t, auth.Current().IsAuthenticated)
}

func TestAuthService_RestoreSession(t *testing.T) {
	t.Run("no persisted session", func(t *testing.T) {
		fake := newFakeForumAdapter()
		auth := NewAuthService(newTestSessions(t), fake, logger.Nop())

		_, ok := auth.RestoreSession(context.Background())
		assert.False(t, ok)
		assert.Zero(t, fake.calls["ValidateToken"])
	})

	t.Run("valid session", func(t *testing.T) {
		fake := newFakeForumAdapter()
		sessions := newTestSessions(t)
		auth := NewAuthService(sessions, fake, logger.Nop())
		require.NoError(t, auth.Login(context.Background(), "ana@forohub.test", "secret"))

		restored, ok := auth.RestoreSession(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "jwt-token", restored.Token)
		assert.Equal(t, 1, fake.calls["ValidateToken"])
	})

	t.Run("rejected token", func(t *testing.T) {
		fake := newFakeForumAdapter()
		fake.validateErr = adapter.ErrSessionExpired
		sessions := newTestSessions(t)
		auth := NewAuthService(sessions, fake, logger.Nop())
		require.NoError(t, auth.Login(context.Background(), "ana@forohub.test", "secret"))

		restored, ok := auth.RestoreSession(context.Background())
		assert.False(t, ok)
		assert.False(t, restored.IsAuthenticated)
	})

	t.Run("server unreachable keeps session", func(t *testing.T) {
		fake := newFakeForumAdapter()
		fake.validateErr = adapter.ErrTimeout
		sessions := newTestSessions(t)
		auth := NewAuthService(sessions, fake, logger.Nop())
		require.NoError(t, auth.Login(context.Background(), "ana@forohub.test", "secret"))

		restored, ok := auth.RestoreSession(context.Background())
		assert.True(t, ok)
		assert.True(t, restored.IsAuthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	fake := newFakeForumAdapter()
	sessions := newTestSessions(t)
	auth := NewAuthService(sessions, fake, logger.Nop())
	require.NoError(t, auth.Login(context.Background(), "ana@forohub.test", "secret"))

	require.NoError(t, auth.Logout(context.Background()))
	assert.False(t, auth.Current().IsAuthenticated)

	// logout twice is fine
	require.NoError(t, auth.Logout(context.Background()))
}
