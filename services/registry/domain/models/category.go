package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups items inside an inventory. Items filed under a category
// draw reference numbers from the category's own sequence.
type Category struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	Name        string
	CreatedAt   time.Time
}

// NewCategory constructs a Category in inventoryID.
func NewCategory(inventoryID uuid.UUID, name string) *Category {
	return &Category{
		ID:          uuid.New(),
		InventoryID: inventoryID,
		Name:        name,
		CreatedAt:   time.Now().UTC(),
	}
}
