package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
)

const manageMembers = "manage members for this inventory"

// MemberView is a membership with the member's identity.
type MemberView struct {
	*models.Member
	DisplayName string
	Email       string
}

// MemberService manages inventory memberships. The owner never has a
// membership row.
type MemberService struct {
	access   *accessResolver
	users    *UserService
	userRepo repositories.UserRepository
	members  repositories.MemberRepository
	views    *ClaimAggregator
	log      logger.Logger
}

// Add invites the user registered under email, registering them first when
// needed. The membership starts PENDING and becomes ACTIVE the first time
// the invitee opens the inventory.
func (s *MemberService) Add(ctx context.Context, userID, inventoryID uuid.UUID, email, displayName string, role models.Role) (*MemberView, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageMembers)
	if err != nil {
		return nil, err
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}

	u, err := s.users.Resolve(ctx, email, displayName)
	if err != nil {
		return nil, err
	}
	if inv.IsOwner(u.ID) {
		return nil, domain.BadInput("The inventory owner cannot be added as a member")
	}

	m := models.NewMember(inv.ID, u.ID, role)
	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("This user is already a member of this inventory")
		}
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "member added",
		"inventory_id", inv.ID, "member_id", m.ID, "user_id", u.ID, "role", role)
	return &MemberView{Member: m, DisplayName: u.DisplayName, Email: u.Email}, nil
}

// List returns every membership of the inventory.
func (s *MemberService) List(ctx context.Context, userID, inventoryID uuid.UUID) ([]MemberView, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageMembers)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]MemberView, 0, len(members))
	for _, m := range members {
		u, err := s.userRepo.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, fmt.Errorf("get member user: %w", err)
		}
		out = append(out, MemberView{Member: m, DisplayName: u.DisplayName, Email: u.Email})
	}
	return out, nil
}

// UpdateRole changes a member's role.
func (s *MemberService) UpdateRole(ctx context.Context, userID, inventoryID, memberID uuid.UUID, role models.Role) (*models.Member, error) {
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	return s.update(ctx, userID, inventoryID, memberID, func(m *models.Member) {
		m.Role = role
	})
}

// UpdateStatus moves a member between PENDING and ACTIVE.
func (s *MemberService) UpdateStatus(ctx context.Context, userID, inventoryID, memberID uuid.UUID, status models.MemberStatus) (*models.Member, error) {
	if status != models.MemberPending && status != models.MemberActive {
		return nil, domain.BadInput("unknown member status %q", status)
	}
	return s.update(ctx, userID, inventoryID, memberID, func(m *models.Member) {
		m.Status = status
	})
}

// SetFinished sets or clears a member's finished flag on their behalf.
func (s *MemberService) SetFinished(ctx context.Context, userID, inventoryID, memberID uuid.UUID, finished bool) (*models.Member, error) {
	return s.update(ctx, userID, inventoryID, memberID, func(m *models.Member) {
		setFinished(m, finished)
	})
}

func (s *MemberService) update(ctx context.Context, userID, inventoryID, memberID uuid.UUID, apply func(*models.Member)) (*models.Member, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageMembers)
	if err != nil {
		return nil, err
	}
	m, err := s.memberOf(ctx, inv, memberID)
	if err != nil {
		return nil, err
	}
	apply(m)
	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "member updated",
		"inventory_id", inv.ID, "member_id", m.ID, "role", m.Role, "status", m.Status, "finished", m.IsFinished())
	return m, nil
}

// Remove deletes a membership. The member's claims are left in place.
func (s *MemberService) Remove(ctx context.Context, userID, inventoryID, memberID uuid.UUID) error {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, manageMembers)
	if err != nil {
		return err
	}
	m, err := s.memberOf(ctx, inv, memberID)
	if err != nil {
		return err
	}
	if inv.IsOwner(m.UserID) {
		return domain.BadInput("Cannot remove the inventory owner")
	}
	if err := s.members.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "member removed", "inventory_id", inv.ID, "member_id", m.ID)
	return nil
}

// MarkFinished locks in the caller's own claims. Marking twice is a no-op.
func (s *MemberService) MarkFinished(ctx context.Context, userID, inventoryID uuid.UUID) (*models.Member, error) {
	inv, a, err := s.access.resolve(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	if a.IsOwner {
		return nil, domain.BadInput("Owners cannot mark themselves as finished")
	}
	if a.Member == nil {
		return nil, domain.NotAuthorized("You are not a member of this inventory")
	}
	m := a.Member
	if m.IsFinished() {
		return m, nil
	}
	setFinished(m, true)
	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "member marked finished", "inventory_id", inv.ID, "member_id", m.ID)
	return m, nil
}

func (s *MemberService) memberOf(ctx context.Context, inv *models.Inventory, memberID uuid.UUID) (*models.Member, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("Member not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	if m.InventoryID != inv.ID {
		return nil, domain.NotFound("Member not found in this inventory")
	}
	return m, nil
}

func setFinished(m *models.Member, finished bool) {
	switch {
	case finished && m.FinishedAt == nil:
		now := time.Now().UTC()
		m.FinishedAt = &now
	case !finished:
		m.FinishedAt = nil
	}
}
