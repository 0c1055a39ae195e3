package handlers

import (
	"net/http"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// ClaimHandler serves /inventories/{inventoryID}/items/{itemID}/claims.
type ClaimHandler struct {
	base
}

// NewClaimHandler returns a ClaimHandler backed by the given services.
func NewClaimHandler(svc *appsvcs.Services, log logger.Logger) *ClaimHandler {
	return &ClaimHandler{base{svc: svc, log: log}}
}

// Create registers the caller's interest in an item.
//
//	@Summary	Claim item
//	@Tags		claims
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		itemID		path		string	true	"Item ID"
//	@Success	201			{object}	ClaimResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims [post]
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Claims.Create(r.Context(), t.user, t.inventory, t.item)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toClaimResponse(c))
}

// Withdraw removes the caller's own interested claim.
//
//	@Summary	Withdraw claim
//	@Tags		claims
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims/mine [delete]
func (h *ClaimHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Claims.Withdraw(r.Context(), t.user, t.inventory, t.item); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// List returns every claim on an item.
//
//	@Summary	List claims
//	@Tags		claims
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		itemID		path		string	true	"Item ID"
//	@Success	200			{array}		ClaimResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims [get]
func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	claims, err := h.svc.Claims.List(r.Context(), t.user, t.inventory, t.item)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		resp := toClaimResponse(&c.Claim)
		resp.UserName = c.UserDisplayName
		out = append(out, resp)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Assign gives the item to one interested claimant.
//
//	@Summary	Assign item
//	@Tags		claims
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		itemID		path		string	true	"Item ID"
//	@Param		claimID		path		string	true	"Claim ID"
//	@Success	200			{object}	ClaimResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims/{claimID}/assign [put]
func (h *ClaimHandler) Assign(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Claims.Assign(r.Context(), t.user, t.inventory, t.item, t.claim)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toClaimResponse(c))
}

// Unassign returns the assigned claim to INTERESTED.
//
//	@Summary	Unassign item
//	@Tags		claims
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims/assignment [delete]
func (h *ClaimHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Claims.Unassign(r.Context(), t.user, t.inventory, t.item); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// Remove deletes any claim on the item, assigned or not.
//
//	@Summary	Remove claim
//	@Tags		claims
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Param		claimID		path	string	true	"Claim ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/claims/{claimID} [delete]
func (h *ClaimHandler) Remove(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Claims.Remove(r.Context(), t.user, t.inventory, t.item, t.claim); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}
