package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
)

const msgInvitationGone = "Invitation not found or has expired"

// InvitationView is an invitation with the names a recipient sees.
type InvitationView struct {
	*models.Invitation
	InventoryName string
	InvitedByName string
}

// InvitationService issues membership invitations and redeems them by
// token. Delivery of the link is left to the caller; the service only logs
// that an invitation was issued.
type InvitationService struct {
	access      *accessResolver
	invitations repositories.InvitationRepository
	inventories repositories.InventoryRepository
	members     repositories.MemberRepository
	users       repositories.UserRepository
	views       *ClaimAggregator
	log         logger.Logger
	now         func() time.Time
}

// Create invites email to the inventory with role. Only one pending
// invitation per email is allowed.
func (s *InvitationService) Create(ctx context.Context, userID, inventoryID uuid.UUID, email string, role models.Role) (*InvitationView, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "invite users to this inventory")
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleViewer
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.BadInput("email must not be empty")
	}

	_, err = s.invitations.FindPending(ctx, inv.ID, email, s.now())
	switch {
	case err == nil:
		return nil, domain.BadInput("An invitation has already been sent to this email")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find pending invitation: %w", err)
	}

	invitation := models.NewInvitation(inv.ID, userID, email, role)
	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	inviter, err := s.userName(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "invitation issued",
		"inventory_id", inv.ID, "invitation_id", invitation.ID, "role", role,
		"expires_at", invitation.ExpiresAt)
	return &InvitationView{Invitation: invitation, InventoryName: inv.Name, InvitedByName: inviter}, nil
}

// ListPending returns the inventory's invitations that can still be
// accepted.
func (s *InvitationService) ListPending(ctx context.Context, userID, inventoryID uuid.UUID) ([]InvitationView, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "view invitations for this inventory")
	if err != nil {
		return nil, err
	}
	pending, err := s.invitations.ListPending(ctx, inv.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	names := make(map[uuid.UUID]string)
	out := make([]InvitationView, 0, len(pending))
	for _, p := range pending {
		name, ok := names[p.InvitedBy]
		if !ok {
			if name, err = s.userName(ctx, p.InvitedBy); err != nil {
				return nil, err
			}
			names[p.InvitedBy] = name
		}
		out = append(out, InvitationView{Invitation: p, InventoryName: inv.Name, InvitedByName: name})
	}
	return out, nil
}

// Cancel deletes an invitation of the inventory, accepted or not.
func (s *InvitationService) Cancel(ctx context.Context, userID, inventoryID, invitationID uuid.UUID) error {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "cancel invitations for this inventory")
	if err != nil {
		return err
	}
	invitation, err := s.invitations.GetByID(ctx, invitationID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && invitation.InventoryID != inv.ID) {
		return domain.NotFound("Invitation not found")
	}
	if err != nil {
		return fmt.Errorf("get invitation: %w", err)
	}

	if err := s.invitations.Delete(ctx, invitation.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("Invitation not found")
		}
		return fmt.Errorf("delete invitation: %w", err)
	}
	s.log.InfoContext(ctx, "invitation cancelled", "inventory_id", inv.ID, "invitation_id", invitation.ID)
	return nil
}

// GetByToken describes the invitation behind token so the recipient can
// decide whether to accept it. Expired and accepted invitations are
// returned too; the view reports their state.
func (s *InvitationService) GetByToken(ctx context.Context, token string) (*InvitationView, error) {
	invitation, err := s.byToken(ctx, token)
	if err != nil {
		return nil, err
	}
	inv, err := s.inventories.GetByID(ctx, invitation.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	inviter, err := s.userName(ctx, invitation.InvitedBy)
	if err != nil {
		return nil, err
	}
	return &InvitationView{Invitation: invitation, InventoryName: inv.Name, InvitedByName: inviter}, nil
}

// Accept redeems token for the caller, whose email must match the
// invitation's. The caller becomes a PENDING member with the invited role
// and turns ACTIVE on first opening the inventory.
func (s *InvitationService) Accept(ctx context.Context, userID uuid.UUID, token string) (*models.Member, error) {
	invitation, err := s.byToken(ctx, token)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if invitation.IsAccepted() {
		return nil, domain.BadInput("This invitation has already been accepted")
	}
	if invitation.IsExpired(now) {
		return nil, domain.BadInput("This invitation has expired")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Email != invitation.Email {
		return nil, domain.NotAuthorized("This invitation was sent to a different email address")
	}

	inv, err := s.inventories.GetByID(ctx, invitation.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if inv.IsOwner(userID) {
		return nil, domain.BadInput("You are already a member of this inventory")
	}

	m := models.NewMember(inv.ID, userID, invitation.Role)
	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.BadInput("You are already a member of this inventory")
		}
		return nil, fmt.Errorf("create member: %w", err)
	}
	accepted, err := s.invitations.MarkAccepted(ctx, invitation.ID, now)
	if err != nil {
		return nil, fmt.Errorf("accept invitation: %w", err)
	}
	if !accepted {
		s.log.WarnContext(ctx, "invitation accepted concurrently",
			"inventory_id", inv.ID, "invitation_id", invitation.ID)
	}

	s.views.Invalidate(ctx, inv.ID)
	s.log.InfoContext(ctx, "invitation accepted",
		"inventory_id", inv.ID, "invitation_id", invitation.ID, "member_id", m.ID, "user_id", userID)
	return m, nil
}

func (s *InvitationService) byToken(ctx context.Context, token string) (*models.Invitation, error) {
	if token == "" {
		return nil, domain.NotFound(msgInvitationGone)
	}
	invitation, err := s.invitations.GetByToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound(msgInvitationGone)
	}
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return invitation, nil
}

func (s *InvitationService) userName(ctx context.Context, id uuid.UUID) (string, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get inviter: %w", err)
	}
	return u.DisplayName, nil
}
