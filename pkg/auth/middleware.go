package auth

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
)

// SessionName is the cookie that carries the session ID.
const SessionName = "giftregistry_session"

const sessionUserIDKey = "user_id"

// RequireUser is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the user ID, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid user_id.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireUser(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			raw, ok := session.Values[sessionUserIDKey].(string)
			if !ok || raw == "" {
				log.DebugContext(r.Context(), "session missing user_id")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", raw, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			ctx := logger.WithAttrs(WithUserID(r.Context(), userID), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StartSession binds userID to the caller's session and writes the cookie.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, userID uuid.UUID) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	session.Values[sessionUserIDKey] = userID.String()
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// EndSession deletes the caller's session and expires the cookie.
func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
