package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/giftregistry/services/registry/domain/services"
)

const msgNoAccess = "You do not have access to this inventory"

// accessResolver loads an inventory together with the caller's Access and
// turns missing rows into client-facing errors.
type accessResolver struct {
	inventories repositories.InventoryRepository
	members     repositories.MemberRepository
	items       repositories.ItemRepository
	categories  repositories.CategoryRepository
}

func newAccessResolver(repos Repositories) *accessResolver {
	return &accessResolver{
		inventories: repos.Inventories,
		members:     repos.Members,
		items:       repos.Items,
		categories:  repos.Categories,
	}
}

func (r *accessResolver) resolve(ctx context.Context, userID, inventoryID uuid.UUID) (*models.Inventory, domainsvcs.Access, error) {
	inv, err := r.inventories.GetByID(ctx, inventoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domainsvcs.Access{}, domain.NotFound("Inventory not found")
	}
	if err != nil {
		return nil, domainsvcs.Access{}, fmt.Errorf("get inventory: %w", err)
	}

	var member *models.Member
	if !inv.IsOwner(userID) {
		m, err := r.members.Find(ctx, inventoryID, userID)
		switch {
		case err == nil:
			member = m
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, domainsvcs.Access{}, fmt.Errorf("find member: %w", err)
		}
	}
	return inv, domainsvcs.EvaluateAccess(inv, userID, member), nil
}

// viewable resolves the inventory and requires CanView.
func (r *accessResolver) viewable(ctx context.Context, userID, inventoryID uuid.UUID) (*models.Inventory, domainsvcs.Access, error) {
	inv, a, err := r.resolve(ctx, userID, inventoryID)
	if err != nil {
		return nil, a, err
	}
	if !a.CanView() {
		return nil, a, domain.NotAuthorized(msgNoAccess)
	}
	return inv, a, nil
}

// manageable resolves the inventory and requires CanManage. action completes
// the sentence "You do not have permission to ...".
func (r *accessResolver) manageable(ctx context.Context, userID, inventoryID uuid.UUID, action string) (*models.Inventory, domainsvcs.Access, error) {
	inv, a, err := r.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, a, err
	}
	if !a.CanManage() {
		return nil, a, domain.NotAuthorized("You do not have permission to %s", action)
	}
	return inv, a, nil
}

// item loads itemID and checks it belongs to inv. Deleted items are only
// returned when includeDeleted is set.
func (r *accessResolver) item(ctx context.Context, inv *models.Inventory, itemID uuid.UUID, includeDeleted bool) (*models.Item, error) {
	item, err := r.items.GetByID(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.InventoryID != inv.ID || (item.IsDeleted && !includeDeleted) {
		return nil, domain.NotFound("Item not found")
	}
	return item, nil
}

// category loads categoryID and checks it belongs to inv.
func (r *accessResolver) category(ctx context.Context, inv *models.Inventory, categoryID uuid.UUID) (*models.Category, error) {
	cat, err := r.categories.GetByID(ctx, categoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat.InventoryID != inv.ID {
		return nil, domain.NotFound("Category not found")
	}
	return cat, nil
}
