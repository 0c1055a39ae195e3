package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Description string     `json:"description"          validate:"required,notblank,max=2000" example:"Blue teapot"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /items/{itemID}.
type UpdateItemRequest struct {
	Description string `json:"description" validate:"required,notblank,max=2000" example:"Blue teapot, chipped lid"`
} // @name UpdateItemRequest

// ItemHandler serves /inventories/{inventoryID}/items.
type ItemHandler struct {
	base
}

// NewItemHandler returns an ItemHandler backed by the given services.
func NewItemHandler(svc *appsvcs.Services, log logger.Logger) *ItemHandler {
	return &ItemHandler{base{svc: svc, log: log}}
}

// Create adds an item and allocates its reference number.
//
//	@Summary		Create item
//	@Description	Reference numbers count up per category, or per inventory for uncategorised items
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			inventoryID	path		string				true	"Inventory ID"
//	@Param			request		body		CreateItemRequest	true	"Item"
//	@Success		201			{object}	ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/inventories/{inventoryID}/items [post]
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Create(r.Context(), t.user, t.inventory, req.Description, req.CategoryID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// List returns the visible items of the inventory.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		categoryId	query		string	false	"Only items in this category"
//	@Success	200			{array}		ItemResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items [get]
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.fail(w, r, domain.BadInput("categoryId is not a valid UUID"))
			return
		}
		categoryID = &id
	}

	views, err := h.svc.Items.List(r.Context(), t.user, t.inventory, categoryID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]ItemResponse, 0, len(views))
	for i := range views {
		out = append(out, toItemViewResponse(&views[i]))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// MyClaims returns the caller's claims with their items' claim counts and
// holders.
//
//	@Summary	My claims
//	@Tags		items
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Success	200			{array}		models.MyClaim
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/my-claims [get]
func (h *ItemHandler) MyClaims(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	claims, err := h.svc.Items.MyClaims(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if claims == nil {
		claims = []models.MyClaim{}
	}
	httpx.JSON(w, http.StatusOK, claims)
}

// Get returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		itemID		path		string	true	"Item ID"
//	@Success	200			{object}	ItemResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID} [get]
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.Items.Get(r.Context(), t.user, t.inventory, t.item)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemViewResponse(view))
}

// Update replaces an item's description.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string				true	"Inventory ID"
//	@Param		itemID		path		string				true	"Item ID"
//	@Param		request		body		UpdateItemRequest	true	"Item"
//	@Success	200			{object}	ItemResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID} [put]
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Update(r.Context(), t.user, t.inventory, t.item, req.Description)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// Delete soft-deletes an item. Its reference number stays taken.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID} [delete]
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Items.Delete)
}

// Undelete restores a soft-deleted item.
//
//	@Summary	Restore item
//	@Tags		items
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/undelete [patch]
func (h *ItemHandler) Undelete(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Items.Undelete)
}

// Collect marks an assigned item as picked up.
//
//	@Summary	Collect item
//	@Tags		items
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/collect [patch]
func (h *ItemHandler) Collect(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Items.Collect)
}

// Uncollect clears an item's collected flag.
//
//	@Summary	Uncollect item
//	@Tags		items
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		itemID		path	string	true	"Item ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/items/{itemID}/uncollect [patch]
func (h *ItemHandler) Uncollect(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Items.Uncollect)
}

func (h *ItemHandler) change(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error,
) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := apply(r.Context(), t.user, t.inventory, t.item); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}
