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

const manageCategories = "manage categories in this inventory"

// CategoryService manages categories. Each category owns its own reference
// number sequence.
type CategoryService struct {
	access     *accessResolver
	categories repositories.CategoryRepository
	views      *ClaimAggregator
	log        logger.Logger
}

// Create adds a category. Names are unique within an inventory.
func (s *CategoryService) Create(ctx context.Context, userID, inventoryID uuid.UUID, name string) (*models.Category, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageCategories)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateName("category name", name); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}

	c := models.NewCategory(inv.ID, name)
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("A category named %q already exists", name)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.log.InfoContext(ctx, "category created", "inventory_id", inv.ID, "category_id", c.ID)
	return c, nil
}

// List returns the inventory's categories by name.
func (s *CategoryService) List(ctx context.Context, userID, inventoryID uuid.UUID) ([]*models.Category, error) {
	inv, _, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	cats, err := s.categories.ListByInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Get returns one category of the inventory.
func (s *CategoryService) Get(ctx context.Context, userID, inventoryID, categoryID uuid.UUID) (*models.Category, error) {
	inv, _, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	return s.access.category(ctx, inv, categoryID)
}

// Rename changes a category's name. Claim views carry category names, so
// the inventory's cached view is dropped.
func (s *CategoryService) Rename(ctx context.Context, userID, inventoryID, categoryID uuid.UUID, name string) (*models.Category, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageCategories)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateName("category name", name); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	c, err := s.access.category(ctx, inv, categoryID)
	if err != nil {
		return nil, err
	}
	if c.Name == name {
		return c, nil
	}

	if err := s.categories.Rename(ctx, c.ID, name); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, domain.Conflict("A category named %q already exists", name)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NotFound("Category not found")
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	c.Name = name
	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "category renamed", "inventory_id", inv.ID, "category_id", c.ID)
	return c, nil
}

// Delete removes a category that no item, deleted or not, is filed under.
func (s *CategoryService) Delete(ctx context.Context, userID, inventoryID, categoryID uuid.UUID) error {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageCategories)
	if err != nil {
		return err
	}
	c, err := s.access.category(ctx, inv, categoryID)
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, c.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return domain.BadInput("Cannot delete a category that contains items. Remove or move all items first.")
		case errors.Is(err, domain.ErrNotFound):
			return domain.NotFound("Category not found")
		}
		return fmt.Errorf("delete category: %w", err)
	}
	s.log.InfoContext(ctx, "category deleted", "inventory_id", inv.ID, "category_id", c.ID)
	return nil
}
