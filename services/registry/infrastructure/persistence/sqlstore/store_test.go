package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "registry.db"), logger.Discard())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(ctx, db, logger.Discard()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func seedUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	u := models.NewUser(name, fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]))
	if err := s.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func seedInventory(t *testing.T, s *Store, owner *models.User) *models.Inventory {
	t.Helper()
	inv := models.NewInventory(owner.ID, "Wedding")
	if err := s.Inventories.Create(context.Background(), inv); err != nil {
		t.Fatalf("create inventory: %v", err)
	}
	return inv
}

func seedItem(t *testing.T, s *Store, inv *models.Inventory, cat *uuid.UUID, desc string) *models.Item {
	t.Helper()
	item := models.NewItem(inv.ID, cat, desc)
	if err := s.Items.CreateNumbered(context.Background(), item); err != nil {
		t.Fatalf("create item %q: %v", desc, err)
	}
	return item
}

func seedMember(t *testing.T, s *Store, inv *models.Inventory, u *models.User, role models.Role, status models.MemberStatus) *models.Member {
	t.Helper()
	m := models.NewMember(inv.ID, u.ID, role)
	m.Status = status
	if err := s.Members.Create(context.Background(), m); err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m
}

func TestUsers_EmailIsUnique(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()

	u := models.NewUser("Ada", "ada@example.com")
	if err := s.Users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := models.NewUser("Other Ada", "ADA@example.com")
	if err := s.Users.Create(ctx, dup); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := s.Users.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != u.ID || got.DisplayName != "Ada" {
		t.Fatalf("unexpected user %+v", got)
	}
	if !got.CreatedAt.Equal(u.CreatedAt.Truncate(time.Millisecond)) {
		t.Errorf("created_at: got %v want %v", got.CreatedAt, u.CreatedAt)
	}

	if _, err := s.Users.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestItems_ReferenceNumbersPerScope(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)

	cat := models.NewCategory(inv.ID, "Kitchen")
	if err := s.Categories.Create(ctx, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}

	a := seedItem(t, s, inv, nil, "Teapot")
	b := seedItem(t, s, inv, nil, "Kettle")
	k := seedItem(t, s, inv, &cat.ID, "Whisk")

	if a.ReferenceNumber != 1 || b.ReferenceNumber != 2 {
		t.Fatalf("inventory scope: got %d, %d", a.ReferenceNumber, b.ReferenceNumber)
	}
	if k.ReferenceNumber != 1 {
		t.Fatalf("category scope starts at 1, got %d", k.ReferenceNumber)
	}

	t.Run("deleted numbers are not reused", func(t *testing.T) {
		if err := s.Items.SetDeleted(ctx, b.ID, true); err != nil {
			t.Fatalf("delete item: %v", err)
		}
		c := seedItem(t, s, inv, nil, "Toaster")
		if c.ReferenceNumber != 3 {
			t.Fatalf("expected 3, got %d", c.ReferenceNumber)
		}
	})

	t.Run("list hides deleted items", func(t *testing.T) {
		items, err := s.Items.ListByInventory(ctx, inv.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, it := range items {
			if it.ID == b.ID {
				t.Fatal("deleted item listed")
			}
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
	})

	t.Run("deleted items stay readable by id", func(t *testing.T) {
		got, err := s.Items.GetByID(ctx, b.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.IsDeleted || got.ReferenceNumber != 2 {
			t.Fatalf("unexpected item %+v", got)
		}
	})
}

func TestItems_FlagWritesCompose(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	inv := seedInventory(t, s, owner)
	item := seedItem(t, s, inv, nil, "Teapot")
	loose := seedItem(t, s, inv, nil, "Kettle")

	ok, err := s.Items.MarkCollected(ctx, loose.ID)
	if err != nil {
		t.Fatalf("mark collected: %v", err)
	}
	if ok {
		t.Fatal("collected an item without an assigned claim")
	}

	c := models.NewClaim(item.ID, alice.ID)
	if err := s.Claims.Create(ctx, c); err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if _, err := s.Claims.Assign(ctx, item.ID, c.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Both writers start from the same snapshot; neither may undo the other.
	if err := s.Items.UpdateDescription(ctx, item.ID, "Blue teapot"); err != nil {
		t.Fatalf("update description: %v", err)
	}
	if ok, err := s.Items.MarkCollected(ctx, item.ID); err != nil || !ok {
		t.Fatalf("mark collected: %v, %v", ok, err)
	}
	if err := s.Items.SetDeleted(ctx, item.ID, true); err != nil {
		t.Fatalf("set deleted: %v", err)
	}

	got, err := s.Items.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsDeleted || !got.IsCollected || got.Description != "Blue teapot" {
		t.Fatalf("unexpected item %+v", got)
	}

	t.Run("deleted item is neither collected nor edited", func(t *testing.T) {
		if err := s.Items.ClearCollected(ctx, item.ID); err != nil {
			t.Fatalf("clear collected: %v", err)
		}
		if ok, err := s.Items.MarkCollected(ctx, item.ID); err != nil || ok {
			t.Fatalf("expected no write on a deleted item, got %v, %v", ok, err)
		}
		if err := s.Items.UpdateDescription(ctx, item.ID, "Red teapot"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestItems_CategoryFromAnotherInventory(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)
	other := seedInventory(t, s, owner)

	cat := models.NewCategory(other.ID, "Garden")
	if err := s.Categories.Create(ctx, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}

	err := s.Items.CreateNumbered(ctx, models.NewItem(inv.ID, &cat.ID, "Rake"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestItems_ConcurrentAllocationIsGapFree(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)

	const n = 20
	refs := make([]int, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			item := models.NewItem(inv.ID, nil, fmt.Sprintf("item %d", i))
			if err := s.Items.CreateNumbered(ctx, item); err != nil {
				return err
			}
			refs[i] = item.ReferenceNumber
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent create: %v", err)
	}

	sort.Ints(refs)
	for i, r := range refs {
		if r != i+1 {
			t.Fatalf("expected a permutation of 1..%d, got %v", n, refs)
		}
	}
}

func TestClaims_Lifecycle(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	inv := seedInventory(t, s, owner)
	item := seedItem(t, s, inv, nil, "Teapot")

	ca := models.NewClaim(item.ID, alice.ID)
	cb := models.NewClaim(item.ID, bob.ID)
	for _, c := range []*models.Claim{ca, cb} {
		if err := s.Claims.Create(ctx, c); err != nil {
			t.Fatalf("create claim: %v", err)
		}
	}

	t.Run("duplicate claim conflicts", func(t *testing.T) {
		err := s.Claims.Create(ctx, models.NewClaim(item.ID, alice.ID))
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("assign", func(t *testing.T) {
		got, err := s.Claims.Assign(ctx, item.ID, ca.ID)
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		if got.Status != models.ClaimAssigned || got.UserID != alice.ID {
			t.Fatalf("unexpected claim %+v", got)
		}
	})

	t.Run("second assignment conflicts", func(t *testing.T) {
		if _, err := s.Claims.Assign(ctx, item.ID, cb.ID); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("holder is reported", func(t *testing.T) {
		held, err := s.Claims.FindAssigned(ctx, item.ID)
		if err != nil {
			t.Fatalf("find assigned: %v", err)
		}
		if held.ID != ca.ID || held.UserDisplayName != "alice" {
			t.Fatalf("unexpected holder %+v", held)
		}
	})

	t.Run("assigned claim cannot be withdrawn", func(t *testing.T) {
		deleted, err := s.Claims.DeleteInterested(ctx, item.ID, alice.ID)
		if err != nil {
			t.Fatalf("delete interested: %v", err)
		}
		if deleted {
			t.Fatal("assigned claim was deleted")
		}
	})

	t.Run("unassign", func(t *testing.T) {
		got, err := s.Claims.Unassign(ctx, item.ID)
		if err != nil {
			t.Fatalf("unassign: %v", err)
		}
		if got.ID != ca.ID || got.Status != models.ClaimInterested {
			t.Fatalf("unexpected claim %+v", got)
		}
		if _, err := s.Claims.Unassign(ctx, item.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found on second unassign, got %v", err)
		}
	})

	t.Run("withdraw interested", func(t *testing.T) {
		deleted, err := s.Claims.DeleteInterested(ctx, item.ID, bob.ID)
		if err != nil || !deleted {
			t.Fatalf("expected deletion, got %v, %v", deleted, err)
		}
		claims, err := s.Claims.ListByItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(claims) != 1 || claims[0].UserID != alice.ID {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})
}

func TestClaims_ConcurrentAssignHasOneWinner(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)
	item := seedItem(t, s, inv, nil, "Teapot")

	const n = 8
	claims := make([]*models.Claim, n)
	for i := range claims {
		u := seedUser(t, s, fmt.Sprintf("user%d", i))
		claims[i] = models.NewClaim(item.ID, u.ID)
		if err := s.Claims.Create(context.Background(), claims[i]); err != nil {
			t.Fatalf("create claim: %v", err)
		}
	}

	var wins, conflicts atomic.Int32
	var g errgroup.Group
	for _, c := range claims {
		g.Go(func() error {
			_, err := s.Claims.Assign(context.Background(), item.ID, c.ID)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if wins.Load() != 1 || conflicts.Load() != n-1 {
		t.Fatalf("expected 1 winner and %d conflicts, got %d and %d", n-1, wins.Load(), conflicts.Load())
	}
}

func TestClaims_ListForInventorySkipsDeletedItems(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	inv := seedInventory(t, s, owner)
	kept := seedItem(t, s, inv, nil, "Teapot")
	gone := seedItem(t, s, inv, nil, "Kettle")

	for _, it := range []*models.Item{kept, gone} {
		if err := s.Claims.Create(ctx, models.NewClaim(it.ID, alice.ID)); err != nil {
			t.Fatalf("create claim: %v", err)
		}
	}
	if err := s.Items.SetDeleted(ctx, gone.ID, true); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	rows, err := s.Claims.ListForInventory(ctx, inv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].ItemID != kept.ID {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[0].Description != "Teapot" || rows[0].ReferenceNumber != 1 || rows[0].Status != models.ClaimInterested {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}

func TestClaims_ListParticipants(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)

	admin := seedMember(t, s, inv, seedUser(t, s, "admin"), models.RoleAdmin, models.MemberActive)
	claimant := seedMember(t, s, inv, seedUser(t, s, "claimant"), models.RoleClaimant, models.MemberActive)
	seedMember(t, s, inv, seedUser(t, s, "viewer"), models.RoleViewer, models.MemberActive)
	seedMember(t, s, inv, seedUser(t, s, "pending"), models.RoleClaimant, models.MemberPending)

	finished := time.Now()
	claimant.FinishedAt = &finished
	if err := s.Members.Update(ctx, claimant); err != nil {
		t.Fatalf("update member: %v", err)
	}

	ps, err := s.Claims.ListParticipants(ctx, inv.ID)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	byMember := map[uuid.UUID]bool{}
	for _, p := range ps {
		if p.MemberID == nil {
			t.Fatalf("participant without member id: %+v", p)
		}
		byMember[*p.MemberID] = p.IsFinished
	}
	if len(byMember) != 2 {
		t.Fatalf("expected admin and claimant only, got %+v", ps)
	}
	if fin, ok := byMember[admin.ID]; !ok || fin {
		t.Errorf("admin: present=%v finished=%v", ok, fin)
	}
	if fin, ok := byMember[claimant.ID]; !ok || !fin {
		t.Errorf("claimant: present=%v finished=%v", ok, fin)
	}
}

func TestMembers_FindUpdateDelete(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	inv := seedInventory(t, s, owner)
	m := seedMember(t, s, inv, alice, models.RoleViewer, models.MemberPending)

	if err := s.Members.Create(ctx, models.NewMember(inv.ID, alice.ID, models.RoleAdmin)); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on second membership, got %v", err)
	}

	m.Role = models.RoleClaimant
	m.Status = models.MemberActive
	if err := s.Members.Update(ctx, m); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.Members.Find(ctx, inv.ID, alice.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Role != models.RoleClaimant || !got.IsActive() || got.IsFinished() {
		t.Fatalf("unexpected member %+v", got)
	}

	if err := s.Members.Delete(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Members.Delete(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInventories_ListForUser(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")

	own := seedInventory(t, s, alice)
	shared := seedInventory(t, s, owner)
	seedInventory(t, s, owner)
	seedMember(t, s, shared, alice, models.RoleClaimant, models.MemberActive)

	invs, err := s.Inventories.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := map[uuid.UUID]bool{}
	for _, inv := range invs {
		got[inv.ID] = true
	}
	if len(got) != 2 || !got[own.ID] || !got[shared.ID] {
		t.Fatalf("unexpected inventories %+v", invs)
	}
}

func TestInventories_RenameAndDeleteCascades(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	inv := seedInventory(t, s, owner)

	if err := s.Inventories.Rename(ctx, inv.ID, "Moving house"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, err := s.Inventories.GetByID(ctx, inv.ID)
	if err != nil || got.Name != "Moving house" {
		t.Fatalf("after rename: %+v, %v", got, err)
	}

	cat := models.NewCategory(inv.ID, "Kitchen")
	if err := s.Categories.Create(ctx, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}
	item := seedItem(t, s, inv, &cat.ID, "Whisk")
	claim := models.NewClaim(item.ID, alice.ID)
	if err := s.Claims.Create(ctx, claim); err != nil {
		t.Fatalf("create claim: %v", err)
	}
	m := seedMember(t, s, inv, alice, models.RoleClaimant, models.MemberActive)
	invitation := models.NewInvitation(inv.ID, owner.ID, "bob@example.com", models.RoleViewer)
	if err := s.Invitations.Create(ctx, invitation); err != nil {
		t.Fatalf("create invitation: %v", err)
	}

	if err := s.Inventories.Delete(ctx, inv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Inventories.Delete(ctx, inv.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	lookups := map[string]error{}
	_, lookups["category"] = s.Categories.GetByID(ctx, cat.ID)
	_, lookups["item"] = s.Items.GetByID(ctx, item.ID)
	_, lookups["claim"] = s.Claims.GetByID(ctx, claim.ID)
	_, lookups["member"] = s.Members.GetByID(ctx, m.ID)
	_, lookups["invitation"] = s.Invitations.GetByID(ctx, invitation.ID)
	for what, err := range lookups {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s survived the inventory: %v", what, err)
		}
	}
}

func TestCategories_RenameAndDelete(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)

	kitchen := models.NewCategory(inv.ID, "Kitchen")
	garden := models.NewCategory(inv.ID, "Garden")
	for _, c := range []*models.Category{kitchen, garden} {
		if err := s.Categories.Create(ctx, c); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	t.Run("rename keeps names unique", func(t *testing.T) {
		if err := s.Categories.Rename(ctx, garden.ID, "Kitchen"); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if err := s.Categories.Rename(ctx, garden.ID, "Shed"); err != nil {
			t.Fatalf("rename: %v", err)
		}
	})

	t.Run("category with a deleted item is kept", func(t *testing.T) {
		item := seedItem(t, s, inv, &kitchen.ID, "Whisk")
		if err := s.Items.SetDeleted(ctx, item.ID, true); err != nil {
			t.Fatalf("delete item: %v", err)
		}
		if err := s.Categories.Delete(ctx, kitchen.ID); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("empty category is deleted", func(t *testing.T) {
		if err := s.Categories.Delete(ctx, garden.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := s.Categories.Delete(ctx, garden.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestInvitations_Lifecycle(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	inv := seedInventory(t, s, owner)
	now := time.Now().UTC()

	open := models.NewInvitation(inv.ID, owner.ID, "ada@example.com", models.RoleClaimant)
	stale := models.NewInvitation(inv.ID, owner.ID, "bob@example.com", models.RoleViewer)
	stale.ExpiresAt = now.Add(-time.Minute)
	for _, i := range []*models.Invitation{open, stale} {
		if err := s.Invitations.Create(ctx, i); err != nil {
			t.Fatalf("create invitation: %v", err)
		}
	}

	got, err := s.Invitations.GetByToken(ctx, open.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got.ID != open.ID || got.Role != models.RoleClaimant || got.IsAccepted() {
		t.Fatalf("unexpected invitation %+v", got)
	}
	if _, err := s.Invitations.GetByToken(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	pending, err := s.Invitations.ListPending(ctx, inv.ID, now)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != open.ID {
		t.Fatalf("expected only the open invitation, got %+v", pending)
	}
	if _, err := s.Invitations.FindPending(ctx, inv.ID, "bob@example.com", now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expired invitation reported pending: %v", err)
	}

	var wins atomic.Int32
	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			ok, err := s.Invitations.MarkAccepted(ctx, open.ID, now)
			if ok {
				wins.Add(1)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("mark accepted: %v", err)
	}
	if wins.Load() != 1 {
		t.Fatalf("expected one acceptance, got %d", wins.Load())
	}
	if _, err := s.Invitations.FindPending(ctx, inv.ID, "ada@example.com", now); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("accepted invitation reported pending: %v", err)
	}

	if err := s.Invitations.Delete(ctx, stale.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Invitations.Delete(ctx, stale.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClaims_ListForUser(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner")
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	inv := seedInventory(t, s, owner)
	other := seedInventory(t, s, owner)

	teapot := seedItem(t, s, inv, nil, "Teapot")
	kettle := seedItem(t, s, inv, nil, "Kettle")
	gone := seedItem(t, s, inv, nil, "Toaster")
	elsewhere := seedItem(t, s, other, nil, "Lamp")

	claim := func(item *models.Item, u *models.User) *models.Claim {
		c := models.NewClaim(item.ID, u.ID)
		if err := s.Claims.Create(ctx, c); err != nil {
			t.Fatalf("create claim: %v", err)
		}
		return c
	}
	claim(teapot, alice)
	bobs := claim(teapot, bob)
	claim(kettle, alice)
	claim(gone, alice)
	claim(elsewhere, alice)
	if _, err := s.Claims.Assign(ctx, teapot.ID, bobs.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := s.Items.SetDeleted(ctx, gone.ID, true); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	got, err := s.Claims.ListForUser(ctx, inv.ID, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 claims, got %+v", got)
	}
	if got[0].ItemID != teapot.ID || got[0].ClaimCount != 2 || !got[0].IsAssigned || got[0].AssignedToName != "bob" {
		t.Errorf("teapot: %+v", got[0])
	}
	if got[0].ClaimStatus != models.ClaimInterested {
		t.Errorf("teapot status: %s", got[0].ClaimStatus)
	}
	if got[1].ItemID != kettle.ID || got[1].ClaimCount != 1 || got[1].IsAssigned || got[1].AssignedToName != "" {
		t.Errorf("kettle: %+v", got[1])
	}
}
