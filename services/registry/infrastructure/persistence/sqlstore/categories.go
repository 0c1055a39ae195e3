package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// CategoryRepository implements repositories.CategoryRepository.
type CategoryRepository struct {
	db *database.Database
}

// Create inserts a category. Names are unique per inventory.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`INSERT INTO categories (id, inventory_id, name, created_at) VALUES (?, ?, ?, ?)`),
		c.ID, c.InventoryID, c.Name, toMillis(c.CreatedAt),
	)
	return mapError(err, "insert category", "category")
}

// GetByID returns the category with the given ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT id, inventory_id, name, created_at FROM categories WHERE id = ?`), id)
	c, err := scanCategory(row)
	if err != nil {
		return nil, mapError(err, "get category", "category")
	}
	return c, nil
}

// ListByInventory returns the inventory's categories ordered by name.
func (r *CategoryRepository) ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Category, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(
		`SELECT id, inventory_id, name, created_at FROM categories WHERE inventory_id = ? ORDER BY name`),
		inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Rename replaces the category's name, keeping names unique per inventory.
func (r *CategoryRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`UPDATE categories SET name = ? WHERE id = ?`), name, id)
	if err != nil {
		return mapError(err, "rename category", "category")
	}
	return expectOne(res, "rename category", "category")
}

// Delete removes an empty category. Soft-deleted items still hold their
// numbers in the category's sequence and keep it alive. The items foreign
// key backs the check up against a concurrent insert.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		DELETE FROM categories
		WHERE id = ? AND NOT EXISTS (SELECT 1 FROM items WHERE category_id = ?)`), id, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("delete category: %w", domain.Conflict("category still has items"))
}

func scanCategory(s scanner) (*models.Category, error) {
	var (
		c       models.Category
		created int64
	)
	if err := s.Scan(&c.ID, &c.InventoryID, &c.Name, &created); err != nil {
		return nil, err
	}
	c.CreatedAt = fromMillis(created)
	return &c, nil
}
