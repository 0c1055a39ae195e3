package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is something that can be claimed. ReferenceNumber is assigned once at
// creation, is unique within the item's scope, and is never reused: deletion
// only sets IsDeleted.
type Item struct {
	ID              uuid.UUID
	InventoryID     uuid.UUID
	CategoryID      *uuid.UUID
	ReferenceNumber int
	Description     string
	IsDeleted       bool
	IsCollected     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewItem constructs an Item with no reference number yet; the repository
// allocates one when the item is saved.
func NewItem(inventoryID uuid.UUID, categoryID *uuid.UUID, description string) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		InventoryID: inventoryID,
		CategoryID:  categoryID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Scope returns the reference number allocation scope of the item.
func (i *Item) Scope() ReferenceScope {
	if i.CategoryID != nil {
		return ReferenceScope{InventoryID: i.InventoryID, CategoryID: i.CategoryID}
	}
	return ReferenceScope{InventoryID: i.InventoryID}
}

// ReferenceScope identifies one reference number sequence: a category when
// CategoryID is set, otherwise the uncategorised items of an inventory.
type ReferenceScope struct {
	InventoryID uuid.UUID
	CategoryID  *uuid.UUID
}
