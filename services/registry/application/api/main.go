package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/giftregistry/pkg/app"
	"github.com/ghuser/giftregistry/pkg/auth"
	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/application/handlers"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// RegistryRoutes registers the registry endpoints under /api/v1. hub feeds
// the live event streams, which are the only routes without a handler
// deadline.
func RegistryRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services, hub handlers.Subscriber) {
	session := handlers.NewSessionHandler(svcs, a.SessionStore, a.Logger)
	inventories := handlers.NewInventoryHandler(svcs, a.Logger)
	categories := handlers.NewCategoryHandler(svcs, a.Logger)
	items := handlers.NewItemHandler(svcs, a.Logger)
	claims := handlers.NewClaimHandler(svcs, a.Logger)
	members := handlers.NewMemberHandler(svcs, a.Logger)
	invitations := handlers.NewInvitationHandler(svcs, a.Logger)
	stream := handlers.NewEventStreamHandler(svcs, hub, a.Logger)

	timeout := httpx.Timeout()

	r.Route("/api/v1", func(r chi.Router) {
		r.With(timeout).Post("/session", session.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser(a.SessionStore, a.Logger))

			r.With(timeout).Delete("/session", session.Logout)
			r.With(timeout).Get("/me", session.Me)

			r.Route("/invitations/{token}", func(r chi.Router) {
				r.Use(timeout)
				r.Get("/", invitations.Get)
				r.Post("/accept", invitations.Accept)
			})

			r.Route("/inventories", func(r chi.Router) {
				r.With(timeout).Get("/", inventories.List)
				r.With(timeout).Post("/", inventories.Create)

				r.Route("/{inventoryID}", func(r chi.Router) {
					r.Use(bindInventoryLog)
					r.Get("/events", stream.Execute)

					r.Group(func(r chi.Router) {
						r.Use(timeout)

						r.Get("/", inventories.Get)
						r.Put("/", inventories.Update)
						r.Delete("/", inventories.Delete)
						r.Get("/claims/all", inventories.AllClaims)
						r.Post("/finished", members.MarkFinished)

						r.Route("/categories", func(r chi.Router) {
							r.Get("/", categories.List)
							r.Post("/", categories.Create)
							r.Get("/{categoryID}", categories.Get)
							r.Put("/{categoryID}", categories.Update)
							r.Delete("/{categoryID}", categories.Delete)
						})

						r.Route("/invitations", func(r chi.Router) {
							r.Get("/", invitations.List)
							r.Post("/", invitations.Create)
							r.Delete("/{invitationID}", invitations.Cancel)
						})

						r.Route("/members", func(r chi.Router) {
							r.Get("/", members.List)
							r.Post("/", members.Add)
							r.Put("/{memberID}", members.Update)
							r.Delete("/{memberID}", members.Remove)
							r.Put("/{memberID}/finished", members.SetFinished)
						})

						r.Route("/items", func(r chi.Router) {
							r.Get("/", items.List)
							r.Post("/", items.Create)
							r.Get("/my-claims", items.MyClaims)

							r.Route("/{itemID}", func(r chi.Router) {
								r.Get("/", items.Get)
								r.Put("/", items.Update)
								r.Delete("/", items.Delete)
								r.Patch("/undelete", items.Undelete)
								r.Patch("/collect", items.Collect)
								r.Patch("/uncollect", items.Uncollect)

								r.Route("/claims", func(r chi.Router) {
									r.Get("/", claims.List)
									r.Post("/", claims.Create)
									r.Delete("/mine", claims.Withdraw)
									r.Delete("/assignment", claims.Unassign)
									r.Put("/{claimID}/assign", claims.Assign)
									r.Delete("/{claimID}", claims.Remove)
								})
							})
						})
					})
				})
			})
		})
	})
}

// bindInventoryLog tags every log record of an inventory route with the raw
// inventory ID from the path.
func bindInventoryLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithAttrs(r.Context(), "inventory_id", chi.URLParam(r, handlers.ParamInventory))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
