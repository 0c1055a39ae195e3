package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// CreateInvitationRequest is the request body for POST /invitations.
// Role defaults to VIEWER.
type CreateInvitationRequest struct {
	Email string      `json:"email"          validate:"required,email,max=255"                 example:"ada@example.com"`
	Role  models.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN CLAIMANT VIEWER" example:"CLAIMANT"`
} // @name CreateInvitationRequest

// InvitationHandler serves /inventories/{inventoryID}/invitations and the
// token routes under /invitations.
type InvitationHandler struct {
	base
}

// NewInvitationHandler returns an InvitationHandler backed by the given services.
func NewInvitationHandler(svc *appsvcs.Services, log logger.Logger) *InvitationHandler {
	return &InvitationHandler{base{svc: svc, log: log}}
}

// Create issues an invitation. The response carries the token the invitee
// redeems.
//
//	@Summary	Create invitation
//	@Tags		invitations
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string					true	"Inventory ID"
//	@Param		request		body		CreateInvitationRequest	true	"Invitation"
//	@Success	201			{object}	InvitationResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/invitations [post]
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateInvitationRequest](w, r)
	if !ok {
		return
	}

	iv, err := h.svc.Invitations.Create(r.Context(), t.user, t.inventory, req.Email, req.Role)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := toInvitationResponse(iv, time.Now())
	out.Token = iv.Token
	httpx.JSON(w, http.StatusCreated, out)
}

// List returns the invitations that can still be accepted.
//
//	@Summary	List pending invitations
//	@Tags		invitations
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Success	200			{array}		InvitationResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/invitations [get]
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pending, err := h.svc.Invitations.ListPending(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	now := time.Now()
	out := make([]InvitationResponse, 0, len(pending))
	for i := range pending {
		out = append(out, toInvitationResponse(&pending[i], now))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Cancel withdraws an invitation.
//
//	@Summary	Cancel invitation
//	@Tags		invitations
//	@Param		inventoryID		path	string	true	"Inventory ID"
//	@Param		invitationID	path	string	true	"Invitation ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/invitations/{invitationID} [delete]
func (h *InvitationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Invitations.Cancel(r.Context(), t.user, t.inventory, t.invitation); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Get describes the invitation behind a token.
//
//	@Summary	Get invitation by token
//	@Tags		invitations
//	@Produce	json
//	@Param		token	path		string	true	"Invitation token"
//	@Success	200		{object}	InvitationResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/invitations/{token} [get]
func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	iv, err := h.svc.Invitations.GetByToken(r.Context(), chi.URLParam(r, ParamToken))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := toInvitationResponse(iv, time.Now())
	out.Email = ""
	httpx.JSON(w, http.StatusOK, out)
}

// Accept redeems a token for the caller, who joins as a pending member.
//
//	@Summary	Accept invitation
//	@Tags		invitations
//	@Produce	json
//	@Param		token	path		string	true	"Invitation token"
//	@Success	201		{object}	MemberResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/invitations/{token}/accept [post]
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Invitations.Accept(r.Context(), userID, chi.URLParam(r, ParamToken))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toMemberResponse(m))
}
