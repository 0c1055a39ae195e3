package models

import (
	"github.com/google/uuid"
)

// ClaimRow is one claim in an inventory as read for aggregation.
type ClaimRow struct {
	ClaimID         uuid.UUID
	UserID          uuid.UUID
	ItemID          uuid.UUID
	ReferenceNumber int
	Description     string
	CategoryName    string
	Status          ClaimStatus
	IsCollected     bool
}

// Participant is an owner or ACTIVE member who can hold claims.
type Participant struct {
	UserID      uuid.UUID
	MemberID    *uuid.UUID
	DisplayName string
	Role        Role
	IsFinished  bool
}

// ClaimedItem is a claim enriched with the total number of claims on its item.
type ClaimedItem struct {
	ItemID          uuid.UUID   `json:"itemId"`
	ClaimID         uuid.UUID   `json:"claimId"`
	ReferenceNumber int         `json:"referenceNumber"`
	CategoryName    string      `json:"categoryName,omitempty"`
	Description     string      `json:"description"`
	ClaimStatus     ClaimStatus `json:"claimStatus"`
	IsCollected     bool        `json:"isCollected"`
	ClaimCount      int         `json:"claimCount"`
}

// MemberClaims is one participant's row in the all-claims view.
type MemberClaims struct {
	UserID       uuid.UUID     `json:"userId"`
	MemberID     *uuid.UUID    `json:"memberId,omitempty"`
	UserName     string        `json:"userName"`
	Role         Role          `json:"role,omitempty"`
	IsOwner      bool          `json:"isOwner"`
	IsFinished   bool          `json:"isFinished"`
	ClaimedItems []ClaimedItem `json:"claimedItems"`
}

// MyClaim is one of the caller's claims with the state of its item.
// AssignedToName names whoever holds the item, the caller included.
type MyClaim struct {
	ClaimedItem
	CategoryID     *uuid.UUID `json:"categoryId,omitempty"`
	IsAssigned     bool       `json:"isAssigned"`
	AssignedToName string     `json:"assignedToName,omitempty"`
}
