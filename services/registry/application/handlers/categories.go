package handlers

import (
	"net/http"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// CreateCategoryRequest is the request body for POST /categories and
// PUT /categories/{categoryID}.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255" example:"Kitchen"`
} // @name CreateCategoryRequest

// CategoryHandler serves /inventories/{inventoryID}/categories.
type CategoryHandler struct {
	base
}

// NewCategoryHandler returns a CategoryHandler backed by the given services.
func NewCategoryHandler(svc *appsvcs.Services, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{base{svc: svc, log: log}}
}

// Create adds a category.
//
//	@Summary	Create category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string					true	"Inventory ID"
//	@Param		request		body		CreateCategoryRequest	true	"Category"
//	@Success	201			{object}	CategoryResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	cat, err := h.svc.Categories.Create(r.Context(), t.user, t.inventory, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toCategoryResponse(cat))
}

// List returns the inventory's categories.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Success	200			{array}		CategoryResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	cats, err := h.svc.Categories.List(r.Context(), t.user, t.inventory)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get returns one category.
//
//	@Summary	Get category
//	@Tags		categories
//	@Produce	json
//	@Param		inventoryID	path		string	true	"Inventory ID"
//	@Param		categoryID	path		string	true	"Category ID"
//	@Success	200			{object}	CategoryResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/categories/{categoryID} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	cat, err := h.svc.Categories.Get(r.Context(), t.user, t.inventory, t.category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCategoryResponse(cat))
}

// Update renames a category.
//
//	@Summary	Update category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		inventoryID	path		string					true	"Inventory ID"
//	@Param		categoryID	path		string					true	"Category ID"
//	@Param		request		body		CreateCategoryRequest	true	"Category"
//	@Success	200			{object}	CategoryResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/categories/{categoryID} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	cat, err := h.svc.Categories.Rename(r.Context(), t.user, t.inventory, t.category, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCategoryResponse(cat))
}

// Delete removes a category no item is filed under.
//
//	@Summary	Delete category
//	@Tags		categories
//	@Param		inventoryID	path	string	true	"Inventory ID"
//	@Param		categoryID	path	string	true	"Category ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventories/{inventoryID}/categories/{categoryID} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Categories.Delete(r.Context(), t.user, t.inventory, t.category); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}
