package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

const itemColumns = `i.id, i.inventory_id, i.category_id, i.reference_number, i.description,
	i.is_deleted, i.is_collected, i.created_at, i.updated_at`

// ItemRepository implements repositories.ItemRepository.
type ItemRepository struct {
	db *database.Database
}

// CreateNumbered allocates the next reference number in the item's scope and
// inserts the item in one transaction.
//
// On PostgreSQL the scope row (the category, or the inventory for
// uncategorised items) is locked FOR NO KEY UPDATE before reading the current
// maximum, so allocations in one scope queue behind each other while item
// inserts elsewhere, which only take KEY SHARE locks through their foreign
// keys, proceed. SQLite runs on a single connection and needs no row lock.
// Numbers are never reused: deleted items keep theirs and still count
// towards the maximum.
func (r *ItemRepository) CreateNumbered(ctx context.Context, item *models.Item) error {
	scope := item.Scope()
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockScope(ctx, tx, scope); err != nil {
			return err
		}

		next, err := r.nextReference(ctx, tx, scope)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, r.db.Rebind(`
			INSERT INTO items (id, inventory_id, category_id, reference_number, description,
				is_deleted, is_collected, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			item.ID, item.InventoryID, nullUUID(item.CategoryID), next, item.Description,
			item.IsDeleted, item.IsCollected, toMillis(item.CreatedAt), toMillis(item.UpdatedAt),
		)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("insert item: %w", domain.Conflict("reference number %d is already taken", next))
			}
			return fmt.Errorf("insert item: %w", err)
		}
		item.ReferenceNumber = next
		return nil
	})
}

func (r *ItemRepository) lockScope(ctx context.Context, q querier, scope models.ReferenceScope) error {
	lock := ""
	if r.db.Dialect() == database.Postgres {
		lock = " FOR NO KEY UPDATE"
	}

	var (
		row  *sql.Row
		what string
	)
	if scope.CategoryID != nil {
		what = "category"
		row = q.QueryRowContext(ctx, r.db.Rebind(
			`SELECT id FROM categories WHERE id = ? AND inventory_id = ?`+lock),
			*scope.CategoryID, scope.InventoryID)
	} else {
		what = "inventory"
		row = q.QueryRowContext(ctx, r.db.Rebind(
			`SELECT id FROM inventories WHERE id = ?`+lock), scope.InventoryID)
	}

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock %s: %w", what, domain.NotFound("%s not found", what))
		}
		return fmt.Errorf("lock %s: %w", what, err)
	}
	return nil
}

func (r *ItemRepository) nextReference(ctx context.Context, q querier, scope models.ReferenceScope) (int, error) {
	var row *sql.Row
	if scope.CategoryID != nil {
		row = q.QueryRowContext(ctx, r.db.Rebind(
			`SELECT COALESCE(MAX(reference_number), 0) FROM items WHERE category_id = ?`),
			*scope.CategoryID)
	} else {
		row = q.QueryRowContext(ctx, r.db.Rebind(
			`SELECT COALESCE(MAX(reference_number), 0) FROM items WHERE inventory_id = ? AND category_id IS NULL`),
			scope.InventoryID)
	}
	var current int
	if err := row.Scan(&current); err != nil {
		return 0, fmt.Errorf("read max reference number: %w", err)
	}
	return current + 1, nil
}

// GetByID returns the item with the given ID, deleted or not.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+itemColumns+` FROM items i WHERE i.id = ?`), id)
	item, err := scanItem(row)
	if err != nil {
		return nil, mapError(err, "get item", "item")
	}
	return item, nil
}

// ListByInventory returns the inventory's non-deleted items, uncategorised
// first, then grouped by category name, each group in reference order.
func (r *ItemRepository) ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT `+itemColumns+`
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.inventory_id = ? AND NOT i.is_deleted
		ORDER BY COALESCE(c.name, ''), i.reference_number`), inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// UpdateDescription replaces the description of a non-deleted item.
func (r *ItemRepository) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		UPDATE items SET description = ?, updated_at = ?
		WHERE id = ? AND NOT is_deleted`),
		description, toMillis(now()), id,
	)
	if err != nil {
		return mapError(err, "update item description", "item")
	}
	return expectOne(res, "update item description", "item")
}

// SetDeleted sets the soft-delete flag. It touches no other column, so a
// concurrent collect or edit is never rolled back.
func (r *ItemRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		UPDATE items SET is_deleted = ?, updated_at = ? WHERE id = ?`),
		deleted, toMillis(now()), id,
	)
	if err != nil {
		return mapError(err, "set item deleted", "item")
	}
	return expectOne(res, "set item deleted", "item")
}

// MarkCollected flags a non-deleted item as collected while it has an
// ASSIGNED claim. The check and the write are one statement; it reports
// whether the item was updated.
func (r *ItemRepository) MarkCollected(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		UPDATE items SET is_collected = ?, updated_at = ?
		WHERE id = ? AND NOT is_deleted
			AND EXISTS (SELECT 1 FROM claims c WHERE c.item_id = items.id AND c.status = ?)`),
		true, toMillis(now()), id, string(models.ClaimAssigned),
	)
	if err != nil {
		return false, mapError(err, "mark item collected", "item")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark item collected: rows affected: %w", err)
	}
	return n == 1, nil
}

// ClearCollected clears the collected flag.
func (r *ItemRepository) ClearCollected(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		UPDATE items SET is_collected = ?, updated_at = ? WHERE id = ?`),
		false, toMillis(now()), id,
	)
	if err != nil {
		return mapError(err, "clear item collected", "item")
	}
	return expectOne(res, "clear item collected", "item")
}

func scanItem(s scanner) (*models.Item, error) {
	var (
		item     models.Item
		category uuid.NullUUID
		created  int64
		updated  int64
	)
	if err := s.Scan(&item.ID, &item.InventoryID, &category, &item.ReferenceNumber, &item.Description,
		&item.IsDeleted, &item.IsCollected, &created, &updated); err != nil {
		return nil, err
	}
	item.CategoryID = fromNullUUID(category)
	item.CreatedAt = fromMillis(created)
	item.UpdatedAt = fromMillis(updated)
	return &item, nil
}
