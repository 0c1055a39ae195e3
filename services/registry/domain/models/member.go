package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is a member's permission level within one inventory.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleClaimant Role = "CLAIMANT"
	RoleViewer   Role = "VIEWER"
)

// ParseRole validates s as a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleClaimant, RoleViewer:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// MemberStatus tracks whether an invited member has taken up membership.
type MemberStatus string

const (
	MemberPending MemberStatus = "PENDING"
	MemberActive  MemberStatus = "ACTIVE"
)

// Member links a user to an inventory with a role.
type Member struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	UserID      uuid.UUID
	Role        Role
	Status      MemberStatus
	// FinishedAt is set once a claimant has locked in their choices.
	FinishedAt *time.Time
	CreatedAt  time.Time
}

// NewMember constructs a PENDING member.
func NewMember(inventoryID, userID uuid.UUID, role Role) *Member {
	return &Member{
		ID:          uuid.New(),
		InventoryID: inventoryID,
		UserID:      userID,
		Role:        role,
		Status:      MemberPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsActive reports whether the membership has been taken up.
func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}

// IsFinished reports whether the member has been marked finished.
func (m *Member) IsFinished() bool {
	return m.FinishedAt != nil
}
