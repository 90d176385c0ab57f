package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to marshal session user")
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	_, err = r.DB.ExecContext(ctx, saveSession,
		sessionSchemaVersion,
		session.Token,
		string(userJSON),
		session.IsAuthenticated,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		schemaVersion int
		token         string
		userJSON      string
		authenticated bool
	)

	row := r.DB.QueryRowContext(ctx, getSession)
	scanErr := row.Scan(&schemaVersion, &token, &userJSON, &authenticated)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.EmptySession(), ErrSessionNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "sessionRepository.Load").
			Msg("failed to scan session row")
		return models.EmptySession(), fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	// rows written by an incompatible schema are treated as absent
	if schemaVersion != sessionSchemaVersion {
		log.Warn().
			Str("func", "sessionRepository.Load").
			Int("schema_version", schemaVersion).
			Msg("persisted session has unsupported schema version")
		return models.EmptySession(), ErrSessionNotFound
	}

	var user *models.Usuario
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		log.Warn().
			Str("func", "sessionRepository.Load").
			Err(err).
			Msg("persisted session user is malformed")
		return models.EmptySession(), ErrSessionNotFound
	}

	session := models.Session{
		User:            user,
		Token:           token,
		IsAuthenticated: authenticated,
	}
	if !session.Valid() || !session.IsAuthenticated {
		log.Warn().
			Str("func", "sessionRepository.Load").
			Msg("persisted session is inconsistent")
		return models.EmptySession(), ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to execute delete for session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
