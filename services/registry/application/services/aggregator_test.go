package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

type memoryViewCache struct {
	mu    sync.Mutex
	views map[uuid.UUID]*pkgcache.CachedClaimsView
	gens  map[uuid.UUID]int64
	hits  int

	// beforeSet, when set, runs once at the start of the next Set.
	beforeSet func()
}

func newMemoryViewCache() *memoryViewCache {
	return &memoryViewCache{
		views: make(map[uuid.UUID]*pkgcache.CachedClaimsView),
		gens:  make(map[uuid.UUID]int64),
	}
}

func (c *memoryViewCache) Get(_ context.Context, id uuid.UUID) (*pkgcache.CachedClaimsView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.views[id]
	if !ok {
		return nil, redis.Nil
	}
	c.hits++
	return v, nil
}

func (c *memoryViewCache) Generation(_ context.Context, id uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[id], nil
}

func (c *memoryViewCache) Set(_ context.Context, v *pkgcache.CachedClaimsView) error {
	c.mu.Lock()
	hook := c.beforeSet
	c.beforeSet = nil
	c.mu.Unlock()
	if hook != nil {
		hook()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[v.InventoryID] != v.Generation {
		return pkgcache.ErrViewSuperseded
	}
	c.views[v.InventoryID] = v
	return nil
}

func (c *memoryViewCache) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[id]++
	delete(c.views, id)
	return nil
}

func (c *memoryViewCache) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.views[id]
	return ok
}

func TestGetAllClaims_OrderingAndCounts(t *testing.T) {
	f := newFixture(t)
	zed, _ := f.member(t, "zed@example.com", "zed", models.RoleClaimant)
	amy, _ := f.member(t, "amy@example.com", "Amy", models.RoleAdmin)
	bob, _ := f.member(t, "bob@example.com", "bob", models.RoleClaimant)
	f.member(t, "vic@example.com", "Vic", models.RoleViewer)
	if _, err := f.svc.Members.Add(f.ctx, f.owner.ID, f.inv.ID, "pat@example.com", "Pat", models.RoleClaimant); err != nil {
		t.Fatalf("invite pat: %v", err)
	}

	teapot := f.item(t, "Teapot")
	kettle := f.item(t, "Kettle")
	gone := f.item(t, "Lamp")
	f.claim(t, zed, teapot)
	f.claim(t, bob, teapot)
	f.claim(t, f.owner, kettle)
	f.claim(t, zed, gone)
	if err := f.svc.Items.Delete(f.ctx, f.owner.ID, f.inv.ID, gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.Members.MarkFinished(f.ctx, bob.ID, f.inv.ID); err != nil {
		t.Fatalf("mark finished: %v", err)
	}

	view, err := f.svc.Aggregator.GetAllClaims(f.ctx, amy.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("get all claims: %v", err)
	}

	var names []string
	for _, row := range view {
		names = append(names, row.UserName)
	}
	want := []string{"Olive Owner", "Amy", "bob", "zed"}
	if len(names) != len(want) {
		t.Fatalf("rows: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("rows: got %v, want %v", names, want)
		}
	}

	owner := view[0]
	if !owner.IsOwner || owner.MemberID != nil || owner.Role != "" || owner.IsFinished {
		t.Fatalf("unexpected owner row %+v", owner)
	}
	if len(owner.ClaimedItems) != 1 || owner.ClaimedItems[0].ClaimCount != 1 {
		t.Fatalf("unexpected owner claims %+v", owner.ClaimedItems)
	}
	if !view[2].IsFinished || view[2].Role != models.RoleClaimant {
		t.Fatalf("bob should be a finished claimant: %+v", view[2])
	}
	zedRow := view[3]
	if len(zedRow.ClaimedItems) != 1 || zedRow.ClaimedItems[0].ItemID != teapot.ID || zedRow.ClaimedItems[0].ClaimCount != 2 {
		t.Fatalf("zed should have only the teapot with 2 claims: %+v", zedRow.ClaimedItems)
	}
	if view[1].ClaimedItems == nil {
		t.Fatal("rows without claims should carry an empty list")
	}
}

func TestGetAllClaims_RequiresManage(t *testing.T) {
	f := newFixture(t)
	u, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	_, err := f.svc.Aggregator.GetAllClaims(f.ctx, u.ID, f.inv.ID)
	wantKind(t, err, domain.ErrNotAuthorized)
}

func TestGetAllClaims_ReadThroughAndInvalidation(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)
	u, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	item := f.item(t, "Teapot")

	if _, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if !vc.has(f.inv.ID) {
		t.Fatal("view should be cached after a miss")
	}
	if _, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("second read: %v", err)
	}
	if vc.hits != 1 {
		t.Fatalf("expected a cache hit, got %d", vc.hits)
	}

	f.claim(t, u, item)
	if vc.has(f.inv.ID) {
		t.Fatal("claim_created should invalidate the cached view")
	}

	view, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("third read: %v", err)
	}
	if len(view) != 2 || len(view[1].ClaimedItems) != 1 {
		t.Fatalf("rebuilt view should include the new claim: %+v", view)
	}

	if _, err := f.svc.Members.MarkFinished(f.ctx, u.ID, f.inv.ID); err != nil {
		t.Fatalf("mark finished: %v", err)
	}
	if vc.has(f.inv.ID) {
		t.Fatal("membership changes should invalidate the cached view")
	}
}

func TestGetAllClaims_ClaimDuringBuildIsNotMasked(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)
	u, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	item := f.item(t, "Teapot")

	// The claim commits after the view was read from storage but before
	// it reaches the cache.
	vc.beforeSet = func() { f.claim(t, u, item) }
	if _, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if vc.has(f.inv.ID) {
		t.Fatal("a view built before the claim must not be cached")
	}

	view, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(view) != 2 || len(view[1].ClaimedItems) != 1 {
		t.Fatalf("claims for Cleo after committed claim: %+v", view)
	}
}

func TestRefresh_ClaimDuringBuildIsNotMasked(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)
	u, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	item := f.item(t, "Teapot")

	vc.beforeSet = func() { f.claim(t, u, item) }
	if err := f.svc.Aggregator.Refresh(f.ctx, f.inv.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if vc.has(f.inv.ID) {
		t.Fatal("refresh must not cache a view older than the latest claim")
	}
}

func TestRefresh_WarmsCache(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)

	if err := f.svc.Aggregator.Refresh(f.ctx, f.inv.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !vc.has(f.inv.ID) {
		t.Fatal("refresh should populate the cache")
	}

	if err := f.svc.Aggregator.Refresh(f.ctx, uuid.New()); err != nil {
		t.Fatalf("refresh of a missing inventory: %v", err)
	}
}
