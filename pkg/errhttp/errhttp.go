// Package errhttp maps domain error kinds to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/pkg/telemetry"
	"github.com/ghuser/giftregistry/services/registry/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, whose
// details never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, clientMessage(err, status))
}

// WriteErrorLog is WriteError that also logs server-side failures with the
// request's trace context.
func WriteErrorLog(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		telemetry.CaptureRequestError(r, err)
	}
	httpx.JSONError(w, status, clientMessage(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized // 401
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden // 403
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrBadInput):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

// clientMessage prefers the domain error's own message over the wrapped
// chain, which carries internal operation names.
func clientMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
