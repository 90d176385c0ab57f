// SPDX-License-Identifier: Apache-2.0

// Package store holds the client-side persistence layer: the authoritative
// in-memory session record and its SQLite-backed repository.
package store

import (
	"context"

	"github.com/Unikyri/forohub-tui/models"
)

// SessionRepository is the low-level durable storage for the session record.
// Implementations persist the full record atomically; partial writes are
// never observable.
type SessionRepository interface {
	// Save replaces the persisted session record with session.
	Save(ctx context.Context, session models.Session) error

	// Load returns the persisted session record. A missing or malformed
	// record yields [ErrSessionNotFound]; the caller treats that as the
	// empty session.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the persisted session record. Clearing an absent
	// record is not an error.
	Clear(ctx context.Context) error
}
