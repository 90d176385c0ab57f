// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForoHub contributors

package tui

import (
	"errors"

	"github.com/Unikyri/forohub-tui/internal/adapter"
)

// humanizeError turns an adapter error into a message fit for the
// terminal. Classification happened once at the adapter; here we only
// translate, never re-map.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var appErr *adapter.ApplicationError
	if errors.As(err, &appErr) && appErr.Mensaje != "" {
		return appErr.Mensaje
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return "La sesión ha expirado. Inicia sesión de nuevo."
	case errors.Is(err, adapter.ErrForbidden):
		return "No tienes permiso para realizar esta acción."
	case errors.Is(err, adapter.ErrNotFound):
		return "El recurso solicitado ya no existe."
	case errors.Is(err, adapter.ErrTimeout):
		return "Sin conexión o el servidor no responde."
	case errors.Is(err, adapter.ErrServer):
		return "El servidor ha fallado. Inténtalo más tarde."
	}

	return err.Error()
}
