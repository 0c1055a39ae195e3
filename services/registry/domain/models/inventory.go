package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is a shared registry of items. The owner is implicitly an admin
// and never has a Member row.
type Inventory struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewInventory constructs an Inventory owned by ownerID.
func NewInventory(ownerID uuid.UUID, name string) *Inventory {
	return &Inventory{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// IsOwner reports whether userID owns the inventory.
func (i *Inventory) IsOwner(userID uuid.UUID) bool {
	return i.OwnerID == userID
}
