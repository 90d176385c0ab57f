package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/models"
)

// SessionStore holds the authenticated session for the running client and
// mirrors every change into the local database so the session survives
// restarts.
//
// All reads and writes go through a single RWMutex: a transition either fully
// replaces the previous session or leaves it untouched, and no caller can
// observe a token paired with the wrong identity.
type SessionStore struct {
	mu      sync.RWMutex
	current models.Session

	repository SessionRepository
	logger     *logger.Logger
}

// NewSessionStore constructs a SessionStore and attempts to restore the
// previously persisted session. A missing, malformed or incompatible persisted
// session leaves the store unauthenticated; restore never fails construction.
func NewSessionStore(repository SessionRepository, logger *logger.Logger) *SessionStore {
	s := &SessionStore{
		current:    models.EmptySession(),
		repository: repository,
		logger:     logger,
	}

	restored, err := repository.Load(context.Background())
	switch {
	case err == nil:
		s.current = restored
		logger.Info().
			Str("func", "NewSessionStore").
			Str("user", restored.User.CorreoElectronico).
			Msg("restored persisted session")
	case errors.Is(err, ErrSessionNotFound):
		logger.Debug().
			Str("func", "NewSessionStore").
			Msg("no persisted session found")
	default:
		logger.Err(err).
			Str("func", "NewSessionStore").
			Msg("failed to load persisted session, starting unauthenticated")
	}

	return s
}

// Login atomically replaces the current session with an authenticated one and
// persists it. The previous session, if any, is discarded whole.
func (s *SessionStore) Login(ctx context.Context, token string, user models.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.Session{
		User:            &user,
		Token:           token,
		IsAuthenticated: true,
	}

	if err := s.repository.Save(ctx, session); err != nil {
		s.logger.Err(err).
			Str("func", "SessionStore.Login").
			Msg("failed to persist session")
		return err
	}

	s.current = session
	return nil
}

// Logout clears the session in memory and in the database. Calling it while
// already unauthenticated is a no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsAuthenticated {
		return nil
	}

	if err := s.repository.Clear(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "SessionStore.Logout").
			Msg("failed to clear persisted session")
		return err
	}

	s.current = models.EmptySession()
	return nil
}

// UpdateIdentity replaces the stored user profile while keeping the current
// token. It is a no-op when the store is unauthenticated, so a late profile
// update can never resurrect a session that was logged out in the meantime.
func (s *SessionStore) UpdateIdentity(ctx context.Context, user models.Usuario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsAuthenticated {
		return nil
	}

	session := models.Session{
		User:            &user,
		Token:           s.current.Token,
		IsAuthenticated: true,
	}

	if err := s.repository.Save(ctx, session); err != nil {
		s.logger.Err(err).
			Str("func", "SessionStore.UpdateIdentity").
			Msg("failed to persist updated identity")
		return err
	}

	s.current = session
	return nil
}

// Current returns a copy of the session as it is right now.
func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.current
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}

// Credential returns the bearer token of the authenticated session, or an
// empty string when unauthenticated. It never blocks on I/O so the transport
// layer can call it on every request.
func (s *SessionStore) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.current.IsAuthenticated {
		return ""
	}
	return s.current.Token
}

// Invalidate drops the session after the server rejected its token. The
// persisted copy is cleared on a best-effort basis: even if the database write
// fails the in-memory session is gone and no further request carries the
// stale token.
func (s *SessionStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.IsAuthenticated {
		return
	}

	if err := s.repository.Clear(context.Background()); err != nil {
		s.logger.Err(err).
			Str("func", "SessionStore.Invalidate").
			Msg("failed to clear persisted session after rejection")
	}

	s.current = models.EmptySession()
}
