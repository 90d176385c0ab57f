package store

import (
	"context"
	"fmt"

	"github.com/Unikyri/forohub-tui/internal/config"
	"github.com/Unikyri/forohub-tui/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed around the service layer. Currently it holds only the
// session store; additional repositories can be added here as the feature set
// grows.
type ClientStorages struct {
	// Sessions keeps the authenticated session in memory and mirrors it
	// into the local SQLite database.
	Sessions *SessionStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [SessionStore], which restores any persisted session.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions: NewSessionStore(NewSessionRepository(db, logger), logger),
	}, nil
}
