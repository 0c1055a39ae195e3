package services

import (
	"testing"

	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

func TestInventoryRename_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.member(t, "ada@example.com", "Ada", models.RoleAdmin)

	_, err := f.svc.Inventories.Rename(f.ctx, admin.ID, f.inv.ID, "Cabin")
	wantKind(t, err, domain.ErrNotAuthorized)
	_, err = f.svc.Inventories.Rename(f.ctx, f.owner.ID, f.inv.ID, "  ")
	wantKind(t, err, domain.ErrBadInput)

	inv, err := f.svc.Inventories.Rename(f.ctx, f.owner.ID, f.inv.ID, "Cabin")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	view, err := f.svc.Inventories.Get(f.ctx, admin.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if inv.Name != "Cabin" || view.Name != "Cabin" {
		t.Fatalf("name not updated: %q, %q", inv.Name, view.Name)
	}
}

func TestInventoryDelete(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)
	admin, _ := f.member(t, "ada@example.com", "Ada", models.RoleAdmin)
	f.claim(t, admin, f.item(t, "Teapot"))
	if _, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("warm view: %v", err)
	}

	err := f.svc.Inventories.Delete(f.ctx, admin.ID, f.inv.ID)
	wantKind(t, err, domain.ErrNotFound)

	if err := f.svc.Inventories.Delete(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if vc.has(f.inv.ID) {
		t.Fatal("deleting should drop the cached view")
	}
	_, err = f.svc.Inventories.Get(f.ctx, f.owner.ID, f.inv.ID)
	wantKind(t, err, domain.ErrNotFound)

	listed, err := f.svc.Inventories.List(f.ctx, admin.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("member still sees deleted inventory: %+v", listed)
	}

	err = f.svc.Inventories.Delete(f.ctx, f.owner.ID, f.inv.ID)
	wantKind(t, err, domain.ErrNotFound)
}
