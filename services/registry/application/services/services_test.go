package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/infrastructure/persistence/sqlstore"
)

type recorder struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (r *recorder) Publish(_ context.Context, evt events.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recorder) last(t *testing.T) events.DomainEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatal("no events published")
	}
	return r.events[len(r.events)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fixture struct {
	ctx   context.Context
	svc   *Services
	store *sqlstore.Store
	pub   *recorder
	owner *models.User
	inv   *models.Inventory
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, nil, nil)
}

// newFixtureWith builds a fixture on a fresh SQLite store. extra, when set,
// receives every event after the recorder.
func newFixtureWith(t *testing.T, viewCache ClaimsViewStore, extra events.Publisher) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "registry.db"), logger.Discard())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlstore.Migrate(ctx, db, logger.Discard()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := sqlstore.New(db)
	pub := &recorder{}
	svc := NewWithRepositories(RepositoriesFromStore(store), viewCache, events.Multi(pub, extra), logger.Discard())

	owner, err := svc.Users.Resolve(ctx, "olive@example.com", "Olive Owner")
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	inv, err := svc.Inventories.Create(ctx, owner.ID, "Estate")
	if err != nil {
		t.Fatalf("create inventory: %v", err)
	}
	return &fixture{ctx: ctx, svc: svc, store: store, pub: pub, owner: owner, inv: inv}
}

// member invites email with role and activates the membership by opening
// the inventory as the invitee.
func (f *fixture) member(t *testing.T, email, name string, role models.Role) (*models.User, *models.Member) {
	t.Helper()
	mv, err := f.svc.Members.Add(f.ctx, f.owner.ID, f.inv.ID, email, name, role)
	if err != nil {
		t.Fatalf("add member %s: %v", email, err)
	}
	if _, err := f.svc.Inventories.Get(f.ctx, mv.UserID, f.inv.ID); err != nil {
		t.Fatalf("activate member %s: %v", email, err)
	}
	u, err := f.svc.Users.Get(f.ctx, mv.UserID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	m, err := f.store.Members.GetByID(f.ctx, mv.ID)
	if err != nil {
		t.Fatalf("get member: %v", err)
	}
	return u, m
}

func (f *fixture) item(t *testing.T, desc string) *models.Item {
	t.Helper()
	item, err := f.svc.Items.Create(f.ctx, f.owner.ID, f.inv.ID, desc, nil)
	if err != nil {
		t.Fatalf("create item %q: %v", desc, err)
	}
	return item
}

func (f *fixture) claim(t *testing.T, u *models.User, item *models.Item) *models.Claim {
	t.Helper()
	c, err := f.svc.Claims.Create(f.ctx, u.ID, f.inv.ID, item.ID)
	if err != nil {
		t.Fatalf("claim %q as %s: %v", item.Description, u.DisplayName, err)
	}
	return c
}

func wantKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}
