package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/giftregistry/pkg/cache"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
)

// ClaimsViewStore caches built all-claims views. Get returns redis.Nil on a
// miss. Delete bumps the inventory's generation, and Set refuses with
// pkgcache.ErrViewSuperseded a view built against an older generation.
// *pkgcache.ClaimsViewCache implements it.
type ClaimsViewStore interface {
	Get(ctx context.Context, inventoryID uuid.UUID) (*pkgcache.CachedClaimsView, error)
	Generation(ctx context.Context, inventoryID uuid.UUID) (int64, error)
	Set(ctx context.Context, view *pkgcache.CachedClaimsView) error
	Delete(ctx context.Context, inventoryID uuid.UUID) error
}

// ClaimAggregator builds the all-claims view of an inventory: one row per
// participant, owner first, each listing the items they claimed.
//
// Views are served read-through from the ClaimsViewStore when one is set.
// The aggregator is also an events.Publisher that drops the cached view of
// any inventory whose claims may have changed.
type ClaimAggregator struct {
	access *accessResolver
	users  repositories.UserRepository
	claims repositories.ClaimRepository
	cache  ClaimsViewStore
	log    logger.Logger
}

// NewClaimAggregator returns a ClaimAggregator. viewCache may be nil.
func NewClaimAggregator(repos Repositories, viewCache ClaimsViewStore, log logger.Logger) *ClaimAggregator {
	return &ClaimAggregator{
		access: newAccessResolver(repos),
		users:  repos.Users,
		claims: repos.Claims,
		cache:  viewCache,
		log:    log,
	}
}

// GetAllClaims returns the all-claims view for a manager of the inventory.
func (a *ClaimAggregator) GetAllClaims(ctx context.Context, userID, inventoryID uuid.UUID) ([]models.MemberClaims, error) {
	inv, _, err := a.access.manageable(ctx, userID, inventoryID, "view all claims in this inventory")
	if err != nil {
		return nil, err
	}

	if view, ok := a.cached(ctx, inv.ID); ok {
		return view, nil
	}

	gen, cacheable := a.generation(ctx, inv.ID)
	view, err := a.Build(ctx, inv)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := a.put(ctx, inv.ID, gen, view); err != nil && !errors.Is(err, pkgcache.ErrViewSuperseded) {
			a.log.WarnContext(ctx, "claims view cache write failed", "inventory_id", inv.ID, "error", err)
		}
	}
	return view, nil
}

// Refresh rebuilds and caches the view of inventoryID without an access
// check. The worker uses it to keep views warm.
func (a *ClaimAggregator) Refresh(ctx context.Context, inventoryID uuid.UUID) error {
	if a.cache == nil {
		return nil
	}
	inv, err := a.access.inventories.GetByID(ctx, inventoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return a.cache.Delete(ctx, inventoryID)
	}
	if err != nil {
		return fmt.Errorf("get inventory: %w", err)
	}
	gen, err := a.cache.Generation(ctx, inv.ID)
	if err != nil {
		return err
	}
	view, err := a.Build(ctx, inv)
	if err != nil {
		return err
	}
	// A newer change already dropped the view; its own event triggers the
	// next refresh.
	if err := a.put(ctx, inv.ID, gen, view); err != nil && !errors.Is(err, pkgcache.ErrViewSuperseded) {
		return err
	}
	return nil
}

// Build computes the view from storage. Claims on deleted items are not
// counted.
func (a *ClaimAggregator) Build(ctx context.Context, inv *models.Inventory) ([]models.MemberClaims, error) {
	owner, err := a.users.GetByID(ctx, inv.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	participants, err := a.claims.ListParticipants(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	rows, err := a.claims.ListForInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	counts := make(map[uuid.UUID]int)
	for _, r := range rows {
		counts[r.ItemID]++
	}
	byUser := make(map[uuid.UUID][]models.ClaimedItem)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], models.ClaimedItem{
			ItemID:          r.ItemID,
			ClaimID:         r.ClaimID,
			ReferenceNumber: r.ReferenceNumber,
			CategoryName:    r.CategoryName,
			Description:     r.Description,
			ClaimStatus:     r.Status,
			IsCollected:     r.IsCollected,
			ClaimCount:      counts[r.ItemID],
		})
	}

	members := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.UserID != inv.OwnerID {
			members = append(members, p)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		ni, nj := strings.ToLower(members[i].DisplayName), strings.ToLower(members[j].DisplayName)
		if ni != nj {
			return ni < nj
		}
		return members[i].UserID.String() < members[j].UserID.String()
	})

	view := make([]models.MemberClaims, 0, len(members)+1)
	view = append(view, models.MemberClaims{
		UserID:       owner.ID,
		UserName:     owner.DisplayName,
		IsOwner:      true,
		ClaimedItems: claimedOrEmpty(byUser[owner.ID]),
	})
	for _, p := range members {
		view = append(view, models.MemberClaims{
			UserID:       p.UserID,
			MemberID:     p.MemberID,
			UserName:     p.DisplayName,
			Role:         p.Role,
			IsFinished:   p.IsFinished,
			ClaimedItems: claimedOrEmpty(byUser[p.UserID]),
		})
	}
	return view, nil
}

func claimedOrEmpty(items []models.ClaimedItem) []models.ClaimedItem {
	if items == nil {
		return []models.ClaimedItem{}
	}
	return items
}

// Publish invalidates the cached view of the event's inventory.
func (a *ClaimAggregator) Publish(ctx context.Context, evt events.DomainEvent) {
	if evt.AffectsClaims() {
		a.Invalidate(ctx, evt.InventoryID)
	}
}

// Invalidate drops the cached view of inventoryID. Membership changes call
// it directly since they carry no DomainEvent.
func (a *ClaimAggregator) Invalidate(ctx context.Context, inventoryID uuid.UUID) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Delete(ctx, inventoryID); err != nil {
		a.log.WarnContext(ctx, "claims view invalidation failed", "inventory_id", inventoryID, "error", err)
	}
}

func (a *ClaimAggregator) cached(ctx context.Context, inventoryID uuid.UUID) ([]models.MemberClaims, bool) {
	if a.cache == nil {
		return nil, false
	}
	cached, err := a.cache.Get(ctx, inventoryID)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.log.WarnContext(ctx, "claims view cache read failed", "inventory_id", inventoryID, "error", err)
		}
		return nil, false
	}
	var view []models.MemberClaims
	if err := json.Unmarshal(cached.Payload, &view); err != nil {
		a.log.WarnContext(ctx, "claims view cache payload unreadable", "inventory_id", inventoryID, "error", err)
		return nil, false
	}
	return view, true
}

// generation reads the inventory's generation before a build. The view is
// not cached when the read fails, since a later Set could not be checked.
func (a *ClaimAggregator) generation(ctx context.Context, inventoryID uuid.UUID) (int64, bool) {
	if a.cache == nil {
		return 0, false
	}
	gen, err := a.cache.Generation(ctx, inventoryID)
	if err != nil {
		a.log.WarnContext(ctx, "claims view generation read failed", "inventory_id", inventoryID, "error", err)
		return 0, false
	}
	return gen, true
}

func (a *ClaimAggregator) put(ctx context.Context, inventoryID uuid.UUID, gen int64, view []models.MemberClaims) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal claims view: %w", err)
	}
	return a.cache.Set(ctx, &pkgcache.CachedClaimsView{
		InventoryID: inventoryID,
		Payload:     payload,
		BuiltAt:     time.Now().UTC(),
		Generation:  gen,
	})
}
