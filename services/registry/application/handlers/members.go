package handlers

import (
	"net/http"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// AddMemberRequest is the request body for POST /members.
type AddMemberRequest struct {
	Email       string      `json:"email"       validate:"required,email,max=255"              example:"ada@example.com"`
	DisplayName string      `json:"displayName" validate:"omitempty,max=255"                   example:"Ada Lovelace"`
	Role        models.Role `json:"role"        validate:"required,oneof=ADMIN CLAIMANT VIEWER" example:"CLAIMANT"`
} // @name AddMemberRequest

// UpdateMemberRequest is the request body for PUT /members/{memberID}.
// Either field may be omitted; at least one is required.
type UpdateMemberRequest struct {
	Role   models.Role         `json:"role,omitempty"   validate:"required_without=Status,omitempty,oneof=ADMIN CLAIMANT VIEWER" example:"ADMIN"`
	Status models.MemberStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING ACTIVE"                                example:"ACTIVE"`
} // @name UpdateMemberRequest

// SetFinishedRequest is the request body for PUT /members/{memberID}/finished.
type SetFinishedRequest struct {
	Finished *bool `json:"finished" validate:"required" example:"false"`
} // @name SetFinishedRequest

// MemberHandler serves /inventories/{inventoryID}/members and the
// finished flag.
type MemberHandler struct {
	base
}

// NewMemberHandler returns a MemberHandler backed by the given services.
func NewMemberHandler(svc *appsvcs.Services, log logger.Logger) *MemberHandler {
	return &MemberHandler{base{svc: svc, log: log}}
}

// Add invites a user by email. The membership starts PENDING.
//
//	@Summary	Add member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string				true	"Inventory ID"
//	@Param		request		body		AddMemberRequest	true	"Member"
//	@Success	201			{object}	MemberResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/members [post]
func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddMemberRequest](w, r)
	if !ok {
		return
	}

	mv, err := h.svc.Members.Add(r.Context(), t.user, t.inventory, req.Email, req.DisplayName, req.Role)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toMemberViewResponse(mv))
}

// List returns every membership of the inventory.
//
//	@Summary	List members
//	@Tags		members
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Success	200			{array}		MemberResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	members, err := h.svc.Members.List(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, toMemberViewResponse(&members[i]))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Update changes a member's role, status, or both.
//
//	@Summary	Update member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string				true	"Inventory ID"
//	@Param		memberID	path		string				true	"Member ID"
//	@Param		request		body		UpdateMemberRequest	true	"Changes"
//	@Success	200			{object}	MemberResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/members/{memberID} [put]
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateMemberRequest](w, r)
	if !ok {
		return
	}

	var m *models.Member
	if req.Role != "" {
		if m, err = h.svc.Members.UpdateRole(r.Context(), t.user, t.inventory, t.member, req.Role); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	if req.Status != "" {
		if m, err = h.svc.Members.UpdateStatus(r.Context(), t.user, t.inventory, t.member, req.Status); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, toMemberResponse(m))
}

// Remove deletes a membership.
//
//	@Summary	Remove member
//	@Tags		members
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		memberID	path	string	true	"Member ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/members/{memberID} [delete]
func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Members.Remove(r.Context(), t.user, t.inventory, t.member); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// MarkFinished locks in the caller's claims.
//
//	@Summary		Mark finished
//	@Description	A finished claimant can no longer add or withdraw claims
//	@Tags			members
//	@Produce		json
//	@Param			inventoryID	path		string	true	"Inventory ID"
//	@Success		200			{object}	MemberResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Router			/inventories/{inventoryID}/finished [post]
func (h *MemberHandler) MarkFinished(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	m, err := h.svc.Members.MarkFinished(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toMemberResponse(m))
}

// SetFinished sets or clears another member's finished flag.
//
//	@Summary	Set finished
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string				true	"Inventory ID"
//	@Param		memberID	path		string				true	"Member ID"
//	@Param		request		body		SetFinishedRequest	true	"Flag"
//	@Success	200			{object}	MemberResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/members/{memberID}/finished [put]
func (h *MemberHandler) SetFinished(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SetFinishedRequest](w, r)
	if !ok {
		return
	}

	m, err := h.svc.Members.SetFinished(r.Context(), t.user, t.inventory, t.member, *req.Finished)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toMemberResponse(m))
}
