package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// LoginRequest is the request body for POST /session.
type LoginRequest struct {
	Email       string `json:"email"       validate:"required,email,max=255" example:"ada@example.com"`
	DisplayName string `json:"displayName" validate:"omitempty,max=255"      example:"Ada Lovelace"`
} // @name LoginRequest

// SessionHandler signs users in and out. The registry has no password
// store: a user is identified by email and registered on first sign-in.
type SessionHandler struct {
	base
	store sessions.Store
}

// NewSessionHandler returns a SessionHandler issuing cookies from store.
func NewSessionHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *SessionHandler {
	return &SessionHandler{base: base{svc: svc, log: log}, store: store}
}

// Login resolves the user by email and starts a session.
//
//	@Summary		Sign in
//	@Description	Finds or registers the user by email and sets the session cookie
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Sign-in request"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/session [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.Users.Resolve(r.Context(), req.Email, req.DisplayName)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := auth.StartSession(w, r, h.store, u.ID); err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "session started", "user_id", u.ID)
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// Me returns the signed-in user.
//
//	@Summary	Current user
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/me [get]
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.svc.Users.Get(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// Logout ends the caller's session.
//
//	@Summary	Sign out
//	@Tags		session
//	@Success	204
//	@Router		/session [delete]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.EndSession(w, r, h.store); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}
