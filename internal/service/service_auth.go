package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Unikyri/forohub-tui/internal/adapter"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/store"
	"github.com/Unikyri/forohub-tui/models"
)

type authService struct {
	sessions *store.SessionStore
	adapter  adapter.ForumAdapter

	logger *logger.Logger
}

func NewAuthService(sessions *store.SessionStore, forumAdapter adapter.ForumAdapter, logger *logger.Logger) AuthService {
	return &authService{sessions: sessions, adapter: forumAdapter, logger: logger}
}

// Login implements [AuthService]. The identity stored with the token carries
// only what the server attested: the email the token was issued for. Register
// enriches it with the full profile.
func (a *authService) Login(ctx context.Context, correo, contrasena string) error {
	token, err := a.adapter.Login(ctx, models.LoginRequest{
		CorreoElectronico: correo,
		Contrasena:        contrasena,
	})
	if err != nil {
		return err
	}

	user := models.Usuario{CorreoElectronico: correo}
	if err := a.sessions.Login(ctx, token.Token, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().
		Str("func", "authService.Login").
		Str("user", correo).
		Msg("logged in")
	return nil
}

// Register implements [AuthService]. It creates the account and then performs
// a regular login, so a registration that succeeds but a login that fails
// leaves the client logged out rather than half-authenticated.
func (a *authService) Register(ctx context.Context, nombre, correo, contrasena string) error {
	created, err := a.adapter.Register(ctx, models.RegistroRequest{
		Nombre:            nombre,
		CorreoElectronico: correo,
		Contrasena:        contrasena,
	})
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.LoginRequest{
		CorreoElectronico: correo,
		Contrasena:        contrasena,
	})
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, token.Token, created); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	a.logger.Info().
		Str("func", "authService.Register").
		Str("user", correo).
		Msg("registered and logged in")
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

// RestoreSession implements [AuthService]. A 401 during validation has already
// invalidated the session through the credential source, so the false branch
// needs no cleanup here. Transport failures keep the session: the forum may
// simply be unreachable right now.
func (a *authService) RestoreSession(ctx context.Context) (models.Session, bool) {
	session := a.sessions.Current()
	if !session.IsAuthenticated {
		return models.EmptySession(), false
	}

	err := a.adapter.ValidateToken(ctx)
	switch {
	case err == nil:
		a.logger.Info().
			Str("func", "authService.RestoreSession").
			Str("user", session.User.CorreoElectronico).
			Msg("persisted session is still valid")
		return session, true
	case errors.Is(err, adapter.ErrSessionExpired):
		a.logger.Info().
			Str("func", "authService.RestoreSession").
			Msg("persisted session was rejected by the server")
		return models.EmptySession(), false
	default:
		a.logger.Warn().
			Err(err).
			Str("func", "authService.RestoreSession").
			Msg("could not validate persisted session, keeping it")
		return session, true
	}
}

func (a *authService) Current() models.Session {
	return a.sessions.Current()
}
