package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned for HTTP 401: the bearer token was
	// rejected. The adapter drops the session before returning it.
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden is returned for HTTP 403: the action is not allowed for
	// the current user.
	ErrForbidden = errors.New("action not allowed")

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("resource not found")

	// ErrServer is returned for any HTTP 5xx.
	ErrServer = errors.New("server error")

	// ErrTimeout is returned when the request deadline elapses before the
	// server answers.
	ErrTimeout = errors.New("request timed out")

	// ErrUnknown is returned for every failure the other sentinels do not
	// cover.
	ErrUnknown = errors.New("unknown error")

	// ErrApplication matches any *ApplicationError via errors.Is.
	ErrApplication = errors.New("application error")
)

// ApplicationError carries a domain rejection the server expressed in its
// error body: a human-readable message plus optional per-field details.
type ApplicationError struct {
	Codigo   string
	Mensaje  string
	Detalles map[string]string
}

func (e *ApplicationError) Error() string {
	if e.Codigo != "" {
		return fmt.Sprintf("%s: %s", e.Codigo, e.Mensaje)
	}
	return e.Mensaje
}

// Is reports a match against [ErrApplication] so callers can branch with
// errors.Is without losing the message carried in the value.
func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}
