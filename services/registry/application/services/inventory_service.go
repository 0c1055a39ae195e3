package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/giftregistry/services/registry/domain/services"
)

// InventoryView is an inventory with the caller's access to it.
type InventoryView struct {
	*models.Inventory
	Access domainsvcs.Access
}

// InventoryService creates, opens, renames and deletes inventories.
type InventoryService struct {
	access      *accessResolver
	inventories repositories.InventoryRepository
	members     repositories.MemberRepository
	views       *ClaimAggregator
	log         logger.Logger
}

// Create makes a new inventory owned by the caller.
func (s *InventoryService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Inventory, error) {
	if err := domainsvcs.ValidateName("inventory name", name); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	inv := models.NewInventory(userID, name)
	if err := s.inventories.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create inventory: %w", err)
	}
	s.log.InfoContext(ctx, "inventory created", "inventory_id", inv.ID, "owner_id", userID)
	return inv, nil
}

// Get opens an inventory. A PENDING member who opens it becomes ACTIVE.
func (s *InventoryService) Get(ctx context.Context, userID, inventoryID uuid.UUID) (*InventoryView, error) {
	inv, a, err := s.access.resolve(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	if a.Member != nil && a.Member.Status == models.MemberPending {
		a.Member.Status = models.MemberActive
		if err := s.members.Update(ctx, a.Member); err != nil {
			return nil, fmt.Errorf("activate member: %w", err)
		}
		s.views.Invalidate(ctx, inv.ID)
		s.log.InfoContext(ctx, "member activated on first access",
			"inventory_id", inv.ID, "member_id", a.Member.ID, "user_id", userID)
		a = domainsvcs.EvaluateAccess(inv, userID, a.Member)
	}
	if !a.CanView() {
		return nil, domain.NotAuthorized(msgNoAccess)
	}
	return &InventoryView{Inventory: inv, Access: a}, nil
}

// List returns the inventories the caller owns or was invited to.
func (s *InventoryService) List(ctx context.Context, userID uuid.UUID) ([]*models.Inventory, error) {
	invs, err := s.inventories.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	return invs, nil
}

// Rename changes the inventory's name. Only the owner may rename it.
func (s *InventoryService) Rename(ctx context.Context, userID, inventoryID uuid.UUID, name string) (*models.Inventory, error) {
	inv, _, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	if !inv.IsOwner(userID) {
		return nil, domain.NotAuthorized("Only the inventory owner can update it")
	}
	if err := domainsvcs.ValidateName("inventory name", name); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}

	if err := s.inventories.Rename(ctx, inv.ID, name); err != nil {
		return nil, fmt.Errorf("rename inventory: %w", err)
	}
	inv.Name = name
	s.log.InfoContext(ctx, "inventory renamed", "inventory_id", inv.ID)
	return inv, nil
}

// Delete removes an inventory with everything in it. Anyone but the owner
// is told the inventory does not exist.
func (s *InventoryService) Delete(ctx context.Context, userID, inventoryID uuid.UUID) error {
	const msg = "Inventory not found or you are not the owner"
	inv, err := s.inventories.GetByID(ctx, inventoryID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !inv.IsOwner(userID)) {
		return domain.NotFound(msg)
	}
	if err != nil {
		return fmt.Errorf("get inventory: %w", err)
	}

	if err := s.inventories.Delete(ctx, inv.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msg)
		}
		return fmt.Errorf("delete inventory: %w", err)
	}
	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "inventory deleted", "inventory_id", inv.ID, "owner_id", userID)
	return nil
}
