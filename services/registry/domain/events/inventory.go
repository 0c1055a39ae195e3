package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TopicInventoryEvents is the Watermill topic carrying every DomainEvent.
// API instances relay it into their live hubs; the worker uses it to keep
// the claims view cache warm.
const TopicInventoryEvents = "inventory.events"

// Type names a state change within an inventory.
type Type string

const (
	ItemCreated     Type = "ITEM_CREATED"
	ItemUpdated     Type = "ITEM_UPDATED"
	ItemDeleted     Type = "ITEM_DELETED"
	ItemUndeleted   Type = "ITEM_UNDELETED"
	ItemCollected   Type = "ITEM_COLLECTED"
	ItemUncollected Type = "ITEM_UNCOLLECTED"
	ClaimCreated    Type = "CLAIM_CREATED"
	ClaimDeleted    Type = "CLAIM_DELETED"
	ItemAssigned    Type = "ITEM_ASSIGNED"
	ItemUnassigned  Type = "ITEM_UNASSIGNED"
)

// DomainEvent is an immutable notification that something in an inventory
// changed. The JSON form is the payload sent to live subscribers.
type DomainEvent struct {
	Type        Type       `json:"type"`
	InventoryID uuid.UUID  `json:"inventoryId"`
	ItemID      uuid.UUID  `json:"itemId"`
	ClaimID     *uuid.UUID `json:"claimId,omitempty"`
	Timestamp   int64      `json:"timestamp"` // milliseconds since epoch
}

// Name is the stream event name: the type in lower case.
func (e DomainEvent) Name() string {
	return strings.ToLower(string(e.Type))
}

// AffectsClaims reports whether the event can change the all-claims view.
func (e DomainEvent) AffectsClaims() bool {
	switch e.Type {
	case ItemCreated:
		return false
	default:
		return true
	}
}

// NewItemEvent builds an item-level event.
func NewItemEvent(t Type, inventoryID, itemID uuid.UUID) DomainEvent {
	return DomainEvent{
		Type:        t,
		InventoryID: inventoryID,
		ItemID:      itemID,
		Timestamp:   time.Now().UnixMilli(),
	}
}

// NewClaimEvent builds an event that references a specific claim.
func NewClaimEvent(t Type, inventoryID, itemID, claimID uuid.UUID) DomainEvent {
	e := NewItemEvent(t, inventoryID, itemID)
	e.ClaimID = &claimID
	return e
}
