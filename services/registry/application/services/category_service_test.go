package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

func TestCategoryGet_ScopedToInventory(t *testing.T) {
	f := newFixture(t)
	viewer, _ := f.member(t, "vic@example.com", "Vic", models.RoleViewer)
	cat, err := f.svc.Categories.Create(f.ctx, f.owner.ID, f.inv.ID, "Kitchen")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.svc.Categories.Get(f.ctx, viewer.ID, f.inv.ID, cat.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Kitchen" {
		t.Fatalf("unexpected category %+v", got)
	}

	other, err := f.svc.Inventories.Create(f.ctx, f.owner.ID, "Cabin")
	if err != nil {
		t.Fatalf("create inventory: %v", err)
	}
	_, err = f.svc.Categories.Get(f.ctx, f.owner.ID, other.ID, cat.ID)
	wantKind(t, err, domain.ErrNotFound)
	_, err = f.svc.Categories.Get(f.ctx, f.owner.ID, f.inv.ID, uuid.New())
	wantKind(t, err, domain.ErrNotFound)
}

func TestCategoryRename(t *testing.T) {
	vc := newMemoryViewCache()
	f := newFixtureWith(t, vc, nil)
	claimant, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	kitchen, err := f.svc.Categories.Create(f.ctx, f.owner.ID, f.inv.ID, "Kitchen")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.Categories.Create(f.ctx, f.owner.ID, f.inv.ID, "Garden"); err != nil {
		t.Fatalf("create: %v", err)
	}
	item, err := f.svc.Items.Create(f.ctx, f.owner.ID, f.inv.ID, "Whisk", &kitchen.ID)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	f.claim(t, claimant, item)

	_, err = f.svc.Categories.Rename(f.ctx, claimant.ID, f.inv.ID, kitchen.ID, "Pantry")
	wantKind(t, err, domain.ErrNotAuthorized)
	_, err = f.svc.Categories.Rename(f.ctx, f.owner.ID, f.inv.ID, kitchen.ID, "Garden")
	wantKind(t, err, domain.ErrConflict)

	if _, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID); err != nil {
		t.Fatalf("warm view: %v", err)
	}
	if _, err := f.svc.Categories.Rename(f.ctx, f.owner.ID, f.inv.ID, kitchen.ID, "Pantry"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	view, err := f.svc.Aggregator.GetAllClaims(f.ctx, f.owner.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("read view: %v", err)
	}
	if len(view) != 2 || len(view[1].ClaimedItems) != 1 || view[1].ClaimedItems[0].CategoryName != "Pantry" {
		t.Fatalf("view should carry the new name: %+v", view)
	}
}

func TestCategoryDelete(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.member(t, "ada@example.com", "Ada", models.RoleAdmin)
	claimant, _ := f.member(t, "cleo@example.com", "Cleo", models.RoleClaimant)
	full, err := f.svc.Categories.Create(f.ctx, f.owner.ID, f.inv.ID, "Kitchen")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	empty, err := f.svc.Categories.Create(f.ctx, f.owner.ID, f.inv.ID, "Garden")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	item, err := f.svc.Items.Create(f.ctx, f.owner.ID, f.inv.ID, "Whisk", &full.ID)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if err := f.svc.Items.Delete(f.ctx, f.owner.ID, f.inv.ID, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	err = f.svc.Categories.Delete(f.ctx, admin.ID, f.inv.ID, full.ID)
	wantKind(t, err, domain.ErrBadInput)
	err = f.svc.Categories.Delete(f.ctx, claimant.ID, f.inv.ID, empty.ID)
	wantKind(t, err, domain.ErrNotAuthorized)

	if err := f.svc.Categories.Delete(f.ctx, admin.ID, f.inv.ID, empty.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = f.svc.Categories.Delete(f.ctx, admin.ID, f.inv.ID, empty.ID)
	wantKind(t, err, domain.ErrNotFound)

	cats, err := f.svc.Categories.List(f.ctx, f.owner.ID, f.inv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != full.ID {
		t.Fatalf("unexpected categories %+v", cats)
	}
}
