// Package handlers exposes the registry services over HTTP. Handlers decode
// and validate the request, resolve the caller from the session context and
// delegate to the application services; error kinds map to status codes in
// pkg/errhttp.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/errhttp"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	"github.com/ghuser/giftregistry/services/registry/domain"
)

// Path parameter names shared with the route table.
const (
	ParamInventory  = "inventoryID"
	ParamItem       = "itemID"
	ParamClaim      = "claimID"
	ParamMember     = "memberID"
	ParamCategory   = "categoryID"
	ParamInvitation = "invitationID"
	ParamToken      = "token"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

type base struct {
	svc *appsvcs.Services
	log logger.Logger
}

func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	errhttp.WriteErrorLog(w, r, b.log, err)
}

// target is the caller plus whichever entity IDs the matched route carries.
type target struct {
	user       uuid.UUID
	inventory  uuid.UUID
	item       uuid.UUID
	claim      uuid.UUID
	member     uuid.UUID
	category   uuid.UUID
	invitation uuid.UUID
}

func parseTarget(r *http.Request) (target, error) {
	var t target
	var err error
	if t.user, err = auth.UserIDFromCtx(r.Context()); err != nil {
		return t, err
	}

	params := []struct {
		name string
		dst  *uuid.UUID
	}{
		{ParamInventory, &t.inventory},
		{ParamItem, &t.item},
		{ParamClaim, &t.claim},
		{ParamMember, &t.member},
		{ParamCategory, &t.category},
		{ParamInvitation, &t.invitation},
	}
	for _, p := range params {
		if chi.URLParam(r, p.name) == "" {
			continue
		}
		if *p.dst, err = httpx.URLParamUUID(r, p.name); err != nil {
			return t, domain.BadInput("%s", err.Error())
		}
	}
	return t, nil
}
