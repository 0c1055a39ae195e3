package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// InventoryRepository implements repositories.InventoryRepository.
type InventoryRepository struct {
	db *database.Database
}

// Create inserts an inventory.
func (r *InventoryRepository) Create(ctx context.Context, inv *models.Inventory) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`INSERT INTO inventories (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)`),
		inv.ID, inv.OwnerID, inv.Name, toMillis(inv.CreatedAt),
	)
	return mapError(err, "insert inventory", "inventory")
}

// GetByID returns the inventory with the given ID.
func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT id, owner_id, name, created_at FROM inventories WHERE id = ?`), id)
	inv, err := scanInventory(row)
	if err != nil {
		return nil, mapError(err, "get inventory", "inventory")
	}
	return inv, nil
}

// ListForUser returns the inventories userID owns or has been invited to,
// oldest first. Pending invitations are included so the invitee can open
// the inventory and take the membership up.
func (r *InventoryRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inventory, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT id, owner_id, name, created_at FROM inventories WHERE owner_id = ?
		UNION
		SELECT inv.id, inv.owner_id, inv.name, inv.created_at
		FROM inventories inv
		JOIN members m ON m.inventory_id = inv.id
		WHERE m.user_id = ?
		ORDER BY created_at, id`), userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var out []*models.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Rename replaces the inventory's name.
func (r *InventoryRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`UPDATE inventories SET name = ? WHERE id = ?`), name, id)
	if err != nil {
		return mapError(err, "rename inventory", "inventory")
	}
	return expectOne(res, "rename inventory", "inventory")
}

// Delete removes the inventory. Members, invitations, categories and items
// go with it through ON DELETE CASCADE, and claims with their items.
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`DELETE FROM inventories WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return expectOne(res, "delete inventory", "inventory")
}

func scanInventory(s scanner) (*models.Inventory, error) {
	var (
		inv     models.Inventory
		created int64
	)
	if err := s.Scan(&inv.ID, &inv.OwnerID, &inv.Name, &created); err != nil {
		return nil, err
	}
	inv.CreatedAt = fromMillis(created)
	return &inv, nil
}
