// Package services holds the registry's application services. Each service
// resolves the caller's access, applies the domain rules, persists through
// the repositories and publishes a DomainEvent for every state change.
package services

import (
	"time"

	"github.com/ghuser/giftregistry/pkg/app"
	"github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
	"github.com/ghuser/giftregistry/services/registry/infrastructure/persistence/sqlstore"
)

// Repositories is the persistence surface the services depend on.
type Repositories struct {
	Users       repositories.UserRepository
	Inventories repositories.InventoryRepository
	Members     repositories.MemberRepository
	Categories  repositories.CategoryRepository
	Items       repositories.ItemRepository
	Claims      repositories.ClaimRepository
	Invitations repositories.InvitationRepository
}

// RepositoriesFromStore adapts a sqlstore.Store.
func RepositoriesFromStore(s *sqlstore.Store) Repositories {
	return Repositories{
		Users:       s.Users,
		Inventories: s.Inventories,
		Members:     s.Members,
		Categories:  s.Categories,
		Items:       s.Items,
		Claims:      s.Claims,
		Invitations: s.Invitations,
	}
}

// Services is the application-layer service container for the registry.
type Services struct {
	Users       *UserService
	Inventories *InventoryService
	Members     *MemberService
	Categories  *CategoryService
	Items       *ItemService
	Claims      *ClaimService
	Invitations *InvitationService
	Aggregator  *ClaimAggregator
}

// New wires the registry services with infrastructure from the Application
// container. publisher receives every DomainEvent after the claims view
// cache has been invalidated for it.
func New(a *app.Application, publisher events.Publisher) *Services {
	var viewCache ClaimsViewStore
	if a.Redis != nil {
		ttl := cache.DefaultClaimsViewTTL
		if a.Config != nil && a.Config.ClaimsViewTTL > 0 {
			ttl = a.Config.ClaimsViewTTL
		}
		viewCache = cache.NewClaimsViewCache(a.Redis, ttl)
	}
	return NewWithRepositories(RepositoriesFromStore(sqlstore.New(a.Db)), viewCache, publisher, a.Logger)
}

// NewWithRepositories wires the services over repos. viewCache may be nil.
func NewWithRepositories(repos Repositories, viewCache ClaimsViewStore, publisher events.Publisher, log logger.Logger) *Services {
	aggregator := NewClaimAggregator(repos, viewCache, log)
	pub := events.Multi(aggregator, publisher)
	access := newAccessResolver(repos)
	users := NewUserService(repos.Users, log)

	return &Services{
		Users:       users,
		Inventories: &InventoryService{access: access, inventories: repos.Inventories, members: repos.Members, views: aggregator, log: log},
		Members:     &MemberService{access: access, users: users, members: repos.Members, userRepo: repos.Users, views: aggregator, log: log},
		Categories:  &CategoryService{access: access, categories: repos.Categories, views: aggregator, log: log},
		Items:       &ItemService{access: access, items: repos.Items, claims: repos.Claims, publisher: pub, log: log},
		Claims:      &ClaimService{access: access, claims: repos.Claims, publisher: pub, log: log},
		Invitations: &InvitationService{
			access:      access,
			invitations: repos.Invitations,
			inventories: repos.Inventories,
			members:     repos.Members,
			users:       repos.Users,
			views:       aggregator,
			log:         log,
			now:         func() time.Time { return time.Now().UTC() },
		},
		Aggregator: aggregator,
	}
}
