package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Unikyri/forohub-tui/models"
)

// classifyResponse maps a completed HTTP response to exactly one sentinel.
// The status code is checked first and in a fixed order; only when no status
// rule applies is the body consulted for a domain error message.
func classifyResponse(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrSessionExpired, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, code, body)
	}

	var er models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Mensaje != "" {
		return &ApplicationError{
			Codigo:   er.Codigo,
			Mensaje:  er.Mensaje,
			Detalles: er.Detalles,
		}
	}

	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnknown, code, body)
}

// classifyTransport maps an error the round trip itself produced (no response
// arrived). Deadline and timeout failures become [ErrTimeout]; everything
// else is [ErrUnknown].
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %s", ErrUnknown, err)
}
