package models

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvitationTTL is how long an invitation link stays valid.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is an emailed offer of membership, redeemed by token. Accepting
// it creates a PENDING member for the invitee.
type Invitation struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	Email       string
	Role        Role
	Token       string
	InvitedBy   uuid.UUID
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
}

// NewInvitation constructs an invitation with a fresh token that expires
// after InvitationTTL. The email is normalised like User emails.
func NewInvitation(inventoryID, invitedBy uuid.UUID, email string, role Role) *Invitation {
	now := time.Now().UTC()
	return &Invitation{
		ID:          uuid.New(),
		InventoryID: inventoryID,
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Role:        role,
		Token:       newInvitationToken(),
		InvitedBy:   invitedBy,
		ExpiresAt:   now.Add(InvitationTTL),
		CreatedAt:   now,
	}
}

// 32 random bytes, URL-safe without padding.
func newInvitationToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b) // crypto/rand.Read does not fail since Go 1.24
	return base64.RawURLEncoding.EncodeToString(b)
}

// IsExpired reports whether the invitation can no longer be accepted at now.
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsAccepted reports whether the invitation has been redeemed.
func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsPending reports whether the invitation can still be accepted at now.
func (i *Invitation) IsPending(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}
