// Package services contains stateless domain services for the registry
// bounded context. They operate purely on domain types.
package services

import (
	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// Access is what one user may do in one inventory.
type Access struct {
	UserID      uuid.UUID
	InventoryID uuid.UUID
	IsOwner     bool
	// Member is nil for the owner and for strangers.
	Member *models.Member
}

// EvaluateAccess derives a user's Access from the inventory and their
// membership row (nil when they have none).
func EvaluateAccess(inv *models.Inventory, userID uuid.UUID, member *models.Member) Access {
	a := Access{UserID: userID, InventoryID: inv.ID, IsOwner: inv.IsOwner(userID)}
	if !a.IsOwner && member != nil && member.InventoryID == inv.ID && member.UserID == userID {
		a.Member = member
	}
	return a
}

func (a Access) activeRole() (models.Role, bool) {
	if a.Member == nil || !a.Member.IsActive() {
		return "", false
	}
	return a.Member.Role, true
}

// CanView: the owner or any ACTIVE member.
func (a Access) CanView() bool {
	if a.IsOwner {
		return true
	}
	_, ok := a.activeRole()
	return ok
}

// CanClaim: the owner or an ACTIVE ADMIN or CLAIMANT.
func (a Access) CanClaim() bool {
	if a.IsOwner {
		return true
	}
	role, ok := a.activeRole()
	return ok && (role == models.RoleAdmin || role == models.RoleClaimant)
}

// CanManage: the owner or an ACTIVE ADMIN.
func (a Access) CanManage() bool {
	if a.IsOwner {
		return true
	}
	role, ok := a.activeRole()
	return ok && role == models.RoleAdmin
}

// IsFinished reports whether the user's membership is marked finished.
// Owners are never finished.
func (a Access) IsFinished() bool {
	return !a.IsOwner && a.Member != nil && a.Member.IsFinished()
}

// ClaimsLocked reports whether the user may no longer change their own
// claims: a finished CLAIMANT. Admins are exempt and owners are never
// restricted.
func (a Access) ClaimsLocked() bool {
	return a.IsFinished() && a.Member.Role == models.RoleClaimant
}
