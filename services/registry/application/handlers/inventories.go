package handlers

import (
	"net/http"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// CreateInventoryRequest is the request body for POST /inventories.
type CreateInventoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255" example:"Grandma's house"`
} // @name CreateInventoryRequest

// UpdateInventoryRequest is the request body for PUT /inventories/{inventoryID}.
type UpdateInventoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255" example:"Grandpa's house"`
} // @name UpdateInventoryRequest

// InventoryHandler serves /inventories and the all-claims view.
type InventoryHandler struct {
	base
}

// NewInventoryHandler returns an InventoryHandler backed by the given services.
func NewInventoryHandler(svc *appsvcs.Services, log logger.Logger) *InventoryHandler {
	return &InventoryHandler{base{svc: svc, log: log}}
}

// Create makes an inventory owned by the caller.
//
//	@Summary	Create inventory
//	@Tags		inventories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateInventoryRequest	true	"Inventory"
//	@Success	201		{object}	InventoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/inventories [post]
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateInventoryRequest](w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Inventories.Create(r.Context(), t.user, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toInventoryResponse(inv))
}

// List returns the inventories the caller owns or belongs to.
//
//	@Summary	List inventories
//	@Tags		inventories
//	@Produce	json
//	@Success	200	{array}		InventoryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/inventories [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	invs, err := h.svc.Inventories.List(r.Context(), t.user)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]InventoryResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInventoryResponse(inv))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get opens an inventory, activating a pending membership.
//
//	@Summary	Get inventory
//	@Tags		inventories
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Success	200			{object}	InventoryDetailResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID} [get]
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.Inventories.Get(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInventoryDetail(view))
}

// Update renames an inventory. Owner only.
//
//	@Summary	Update inventory
//	@Tags		inventories
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string					true	"Inventory ID"
//	@Param		request		body		UpdateInventoryRequest	true	"Inventory"
//	@Success	200			{object}	InventoryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID} [put]
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateInventoryRequest](w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Inventories.Rename(r.Context(), t.user, t.inventory, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInventoryResponse(inv))
}

// Delete removes an inventory and everything in it. Owner only.
//
//	@Summary	Delete inventory
//	@Tags		inventories
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Inventories.Delete(r.Context(), t.user, t.inventory); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// AllClaims returns every participant's claims.
//
//	@Summary		All claims
//	@Description	Owner first, then active members by name, each with their claimed items
//	@Tags			claims
//	@Produce		json
//	@Param			inventoryID	path		string	true	"Inventory ID"
//	@Success		200			{array}		models.MemberClaims
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/inventories/{inventoryID}/claims/all [get]
func (h *InventoryHandler) AllClaims(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.Aggregator.GetAllClaims(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
