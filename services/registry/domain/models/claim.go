package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus is the lifecycle state of a claim. A missing claim row means
// "no interest"; there is no withdrawn state.
type ClaimStatus string

const (
	ClaimInterested ClaimStatus = "INTERESTED"
	ClaimAssigned   ClaimStatus = "ASSIGNED"
)

// Claim records one user's interest in one item.
type Claim struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Status    ClaimStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClaim constructs an INTERESTED claim.
func NewClaim(itemID, userID uuid.UUID) *Claim {
	now := time.Now().UTC()
	return &Claim{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Status:    ClaimInterested,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAssigned reports whether the claim holds the item.
func (c *Claim) IsAssigned() bool {
	return c.Status == ClaimAssigned
}

// ClaimWithUser is a claim joined with its claimant's display name.
type ClaimWithUser struct {
	Claim
	UserDisplayName string
}
