package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

func member(inv *models.Inventory, userID uuid.UUID, role models.Role, status models.MemberStatus, finished bool) *models.Member {
	m := models.NewMember(inv.ID, userID, role)
	m.Status = status
	if finished {
		now := time.Now().UTC()
		m.FinishedAt = &now
	}
	return m
}

func TestEvaluateAccess(t *testing.T) {
	owner := uuid.New()
	inv := models.NewInventory(owner, "Estate")
	user := uuid.New()

	tests := []struct {
		name                                        string
		userID                                      uuid.UUID
		member                                      *models.Member
		view, claim, manage, finished, claimsLocked bool
	}{
		{"owner", owner, nil, true, true, true, false, false},
		{"stranger", user, nil, false, false, false, false, false},
		{"active admin", user, member(inv, user, models.RoleAdmin, models.MemberActive, false), true, true, true, false, false},
		{"active claimant", user, member(inv, user, models.RoleClaimant, models.MemberActive, false), true, true, false, false, false},
		{"active viewer", user, member(inv, user, models.RoleViewer, models.MemberActive, false), true, false, false, false, false},
		{"pending admin", user, member(inv, user, models.RoleAdmin, models.MemberPending, false), false, false, false, false, false},
		{"finished claimant", user, member(inv, user, models.RoleClaimant, models.MemberActive, true), true, true, false, true, true},
		{"finished admin is exempt", user, member(inv, user, models.RoleAdmin, models.MemberActive, true), true, true, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := EvaluateAccess(inv, tt.userID, tt.member)
			if got := a.CanView(); got != tt.view {
				t.Errorf("CanView = %v, want %v", got, tt.view)
			}
			if got := a.CanClaim(); got != tt.claim {
				t.Errorf("CanClaim = %v, want %v", got, tt.claim)
			}
			if got := a.CanManage(); got != tt.manage {
				t.Errorf("CanManage = %v, want %v", got, tt.manage)
			}
			if got := a.IsFinished(); got != tt.finished {
				t.Errorf("IsFinished = %v, want %v", got, tt.finished)
			}
			if got := a.ClaimsLocked(); got != tt.claimsLocked {
				t.Errorf("ClaimsLocked = %v, want %v", got, tt.claimsLocked)
			}
		})
	}
}

func TestEvaluateAccess_IgnoresForeignMembership(t *testing.T) {
	inv := models.NewInventory(uuid.New(), "Estate")
	other := models.NewInventory(uuid.New(), "Other")
	user := uuid.New()

	a := EvaluateAccess(inv, user, member(other, user, models.RoleAdmin, models.MemberActive, false))
	if a.CanView() {
		t.Fatal("membership of another inventory must not grant access")
	}
}

func TestEvaluateAccess_OwnerWithMemberRowIsStillOwner(t *testing.T) {
	owner := uuid.New()
	inv := models.NewInventory(owner, "Estate")

	a := EvaluateAccess(inv, owner, member(inv, owner, models.RoleClaimant, models.MemberActive, true))
	if !a.CanManage() || a.IsFinished() || a.ClaimsLocked() {
		t.Fatalf("owner must never be restricted: %+v", a)
	}
}
