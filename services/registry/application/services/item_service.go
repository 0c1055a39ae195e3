package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/giftregistry/services/registry/domain/services"
)

// ItemView is an item as seen by one caller.
type ItemView struct {
	*models.Item
	ClaimCount int
	// MyClaim is the caller's own claim on the item, if any.
	MyClaim *models.Claim
}

// ItemService manages the items of an inventory.
type ItemService struct {
	access     *accessResolver
	items     repositories.ItemRepository
	claims    repositories.ClaimRepository
	publisher events.Publisher
	log       logger.Logger
}

// Create adds an item, allocating the next reference number in its scope.
func (s *ItemService) Create(ctx context.Context, userID, inventoryID uuid.UUID, description string, categoryID *uuid.UUID) (*models.Item, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "add items to this inventory")
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateDescription(description); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	if categoryID != nil {
		if _, err := s.access.category(ctx, inv, *categoryID); err != nil {
			return nil, err
		}
	}

	item := models.NewItem(inv.ID, categoryID, description)
	if err := s.items.CreateNumbered(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		"inventory_id", inv.ID, "item_id", item.ID, "reference_number", item.ReferenceNumber)
	s.publisher.Publish(ctx, events.NewItemEvent(events.ItemCreated, inv.ID, item.ID))
	return item, nil
}

// Get returns one item. A collected item is hidden from non-managers unless
// it was assigned to them.
func (s *ItemService) Get(ctx context.Context, userID, inventoryID, itemID uuid.UUID) (*ItemView, error) {
	inv, a, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return nil, err
	}
	claims, err := s.claims.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	view := &ItemView{Item: item, ClaimCount: len(claims)}
	for _, c := range claims {
		if c.UserID == userID {
			view.MyClaim = &c.Claim
		}
	}
	if !visible(view, a.CanManage()) {
		return nil, domain.NotFound("Item not found")
	}
	return view, nil
}

// List returns the inventory's items, optionally limited to one category,
// with the same visibility rule as Get.
func (s *ItemService) List(ctx context.Context, userID, inventoryID uuid.UUID, categoryID *uuid.UUID) ([]ItemView, error) {
	inv, a, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		if _, err := s.access.category(ctx, inv, *categoryID); err != nil {
			return nil, err
		}
	}

	items, err := s.items.ListByInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	rows, err := s.claims.ListForInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	counts := make(map[uuid.UUID]int)
	mine := make(map[uuid.UUID]*models.Claim)
	for _, r := range rows {
		counts[r.ItemID]++
		if r.UserID == userID {
			mine[r.ItemID] = &models.Claim{ID: r.ClaimID, ItemID: r.ItemID, UserID: r.UserID, Status: r.Status}
		}
	}

	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		if categoryID != nil && (item.CategoryID == nil || *item.CategoryID != *categoryID) {
			continue
		}
		v := ItemView{Item: item, ClaimCount: counts[item.ID], MyClaim: mine[item.ID]}
		if visible(&v, a.CanManage()) {
			out = append(out, v)
		}
	}
	return out, nil
}

// MyClaims returns the caller's claims in the inventory, each with its
// item's claim count and current holder.
func (s *ItemService) MyClaims(ctx context.Context, userID, inventoryID uuid.UUID) ([]models.MyClaim, error) {
	inv, _, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	claims, err := s.claims.ListForUser(ctx, inv.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("list my claims: %w", err)
	}
	return claims, nil
}

func visible(v *ItemView, canManage bool) bool {
	if !v.IsCollected || canManage {
		return true
	}
	return v.MyClaim != nil && v.MyClaim.IsAssigned()
}

// Update replaces an item's description.
func (s *ItemService) Update(ctx context.Context, userID, inventoryID, itemID uuid.UUID, description string) (*models.Item, error) {
	if err := domainsvcs.ValidateDescription(description); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	item, err := s.change(ctx, userID, inventoryID, itemID, "edit items in this inventory", false, events.ItemUpdated,
		func(item *models.Item) error {
			item.Description = description
			return s.items.UpdateDescription(ctx, item.ID, description)
		})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete soft-deletes an item. Its reference number stays taken.
func (s *ItemService) Delete(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	_, err := s.change(ctx, userID, inventoryID, itemID, "delete items from this inventory", false, events.ItemDeleted,
		func(item *models.Item) error {
			item.IsDeleted = true
			return s.items.SetDeleted(ctx, item.ID, true)
		})
	return err
}

// Undelete restores a soft-deleted item.
func (s *ItemService) Undelete(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	_, err := s.change(ctx, userID, inventoryID, itemID, "undelete items in this inventory", true, events.ItemUndeleted,
		func(item *models.Item) error {
			item.IsDeleted = false
			return s.items.SetDeleted(ctx, item.ID, false)
		})
	return err
}

// Collect marks an assigned item as handed over. An item without an
// ASSIGNED claim is rejected as bad input.
func (s *ItemService) Collect(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	_, err := s.change(ctx, userID, inventoryID, itemID, "collect items in this inventory", false, events.ItemCollected,
		func(item *models.Item) error {
			ok, err := s.items.MarkCollected(ctx, item.ID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.BadInput("Item must be assigned before it can be collected")
			}
			item.IsCollected = true
			return nil
		})
	return err
}

// Uncollect reverses Collect.
func (s *ItemService) Uncollect(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	_, err := s.change(ctx, userID, inventoryID, itemID, "uncollect items in this inventory", true, events.ItemUncollected,
		func(item *models.Item) error {
			item.IsCollected = false
			return s.items.ClearCollected(ctx, item.ID)
		})
	return err
}

// change runs a manager-only mutation on one item and publishes t. write
// persists the change and mirrors it onto item.
func (s *ItemService) change(ctx context.Context, userID, inventoryID, itemID uuid.UUID,
	action string, includeDeleted bool, t events.Type, write func(*models.Item) error,
) (*models.Item, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, action)
	if err != nil {
		return nil, err
	}
	item, err := s.access.item(ctx, inv, itemID, includeDeleted)
	if err != nil {
		return nil, err
	}
	if err := write(item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Item not found")
		}
		if errors.Is(err, domain.ErrBadInput) {
			return nil, err
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	item.UpdatedAt = time.Now().UTC()

	s.log.InfoContext(ctx, "item changed",
		"inventory_id", item.InventoryID, "item_id", item.ID, "event", t)
	s.publisher.Publish(ctx, events.NewItemEvent(t, item.InventoryID, item.ID))
	return item, nil
}
