package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/events"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
)

const (
	msgFinished         = "You have marked yourself as finished and can no longer change claims"
	msgAlreadyClaimed   = "You have already expressed interest in this item"
	msgNotClaimed       = "You have not expressed interest in this item"
	msgWithdrawAssigned = "Cannot withdraw - this item has been assigned to you"
	msgClaimNotFound    = "Claim not found"
	msgClaimMismatch    = "Claim does not belong to this item"
)

// ClaimService drives the claim lifecycle:
//
//	absent -> INTERESTED      Create
//	INTERESTED -> absent      Withdraw, Remove
//	INTERESTED -> ASSIGNED    Assign
//	ASSIGNED -> INTERESTED    Unassign
//	ASSIGNED -> absent        Remove
//
// The storage constraints decide races: of two concurrent Assign calls on
// one item exactly one succeeds and the other returns domain.ErrConflict.
type ClaimService struct {
	access    *accessResolver
	claims    repositories.ClaimRepository
	publisher events.Publisher
	log       logger.Logger
}

// Create records the caller's interest in an item.
func (s *ClaimService) Create(ctx context.Context, userID, inventoryID, itemID uuid.UUID) (*models.Claim, error) {
	inv, a, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return nil, err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return nil, err
	}
	if !a.CanClaim() {
		return nil, domain.NotAuthorized("You do not have permission to claim items in this inventory")
	}
	if a.ClaimsLocked() {
		return nil, domain.Conflict(msgFinished)
	}

	_, err = s.claims.FindByItemAndUser(ctx, item.ID, userID)
	switch {
	case err == nil:
		return nil, domain.Conflict(msgAlreadyClaimed)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find claim: %w", err)
	}

	claim := models.NewClaim(item.ID, userID)
	if err := s.claims.Create(ctx, claim); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(msgAlreadyClaimed)
		}
		return nil, fmt.Errorf("create claim: %w", err)
	}

	s.log.InfoContext(ctx, "claim created",
		"inventory_id", inv.ID, "item_id", item.ID, "claim_id", claim.ID, "user_id", userID)
	s.publisher.Publish(ctx, events.NewClaimEvent(events.ClaimCreated, inv.ID, item.ID, claim.ID))
	return claim, nil
}

// Withdraw deletes the caller's INTERESTED claim on an item. An ASSIGNED
// claim cannot be withdrawn; a manager has to unassign it first.
func (s *ClaimService) Withdraw(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	inv, a, err := s.access.viewable(ctx, userID, inventoryID)
	if err != nil {
		return err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return err
	}
	if a.ClaimsLocked() {
		return domain.Conflict(msgFinished)
	}

	claim, err := s.claims.FindByItemAndUser(ctx, item.ID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(msgNotClaimed)
	}
	if err != nil {
		return fmt.Errorf("find claim: %w", err)
	}
	if claim.IsAssigned() {
		return domain.Conflict(msgWithdrawAssigned)
	}

	deleted, err := s.claims.DeleteInterested(ctx, item.ID, userID)
	if err != nil {
		return fmt.Errorf("withdraw claim: %w", err)
	}
	if !deleted {
		// Assigned or removed between the read and the delete.
		return s.withdrawLost(ctx, item.ID, userID)
	}

	s.log.InfoContext(ctx, "claim withdrawn",
		"inventory_id", inv.ID, "item_id", item.ID, "claim_id", claim.ID, "user_id", userID)
	s.publisher.Publish(ctx, events.NewClaimEvent(events.ClaimDeleted, inv.ID, item.ID, claim.ID))
	return nil
}

func (s *ClaimService) withdrawLost(ctx context.Context, itemID, userID uuid.UUID) error {
	claim, err := s.claims.FindByItemAndUser(ctx, itemID, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.NotFound(msgNotClaimed)
	case err != nil:
		return fmt.Errorf("find claim: %w", err)
	case claim.IsAssigned():
		return domain.Conflict(msgWithdrawAssigned)
	default:
		return domain.Conflict("Your claim changed while it was being withdrawn, please retry")
	}
}

// List returns every claim on an item with the claimant's name.
func (s *ClaimService) List(ctx context.Context, userID, inventoryID, itemID uuid.UUID) ([]*models.ClaimWithUser, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "view claims for this item")
	if err != nil {
		return nil, err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return nil, err
	}
	claims, err := s.claims.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}

// Assign gives an item to the holder of claimID.
func (s *ClaimService) Assign(ctx context.Context, userID, inventoryID, itemID, claimID uuid.UUID) (*models.Claim, error) {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "assign items in this inventory")
	if err != nil {
		return nil, err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUnassigned(ctx, item.ID); err != nil {
		return nil, err
	}
	if _, err := s.claimOnItem(ctx, item.ID, claimID); err != nil {
		return nil, err
	}

	claim, err := s.claims.Assign(ctx, item.ID, claimID)
	switch {
	case errors.Is(err, domain.ErrConflict):
		// Lost the race to another assignment: name the winner.
		if holderErr := s.ensureUnassigned(ctx, item.ID); holderErr != nil {
			return nil, holderErr
		}
		return nil, err
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.NotFound(msgClaimNotFound)
	case err != nil:
		return nil, fmt.Errorf("assign claim: %w", err)
	}

	s.log.InfoContext(ctx, "item assigned",
		"inventory_id", inv.ID, "item_id", item.ID, "claim_id", claim.ID, "user_id", claim.UserID)
	s.publisher.Publish(ctx, events.NewClaimEvent(events.ItemAssigned, inv.ID, item.ID, claim.ID))
	return claim, nil
}

// ensureUnassigned returns a conflict naming the holder when itemID already
// has an ASSIGNED claim.
func (s *ClaimService) ensureUnassigned(ctx context.Context, itemID uuid.UUID) error {
	holder, err := s.claims.FindAssigned(ctx, itemID)
	switch {
	case err == nil:
		return domain.Conflict("This item is already assigned to %s", holder.UserDisplayName)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("find assigned claim: %w", err)
	}
}

func (s *ClaimService) claimOnItem(ctx context.Context, itemID, claimID uuid.UUID) (*models.Claim, error) {
	claim, err := s.claims.GetByID(ctx, claimID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound(msgClaimNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.ItemID != itemID {
		return nil, domain.BadInput(msgClaimMismatch)
	}
	return claim, nil
}

// Unassign returns an item's ASSIGNED claim to INTERESTED.
func (s *ClaimService) Unassign(ctx context.Context, userID, inventoryID, itemID uuid.UUID) error {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "unassign items in this inventory")
	if err != nil {
		return err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return err
	}

	claim, err := s.claims.Unassign(ctx, item.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("This item is not assigned to anyone")
	}
	if err != nil {
		return fmt.Errorf("unassign claim: %w", err)
	}

	s.log.InfoContext(ctx, "item unassigned",
		"inventory_id", inv.ID, "item_id", item.ID, "claim_id", claim.ID, "user_id", claim.UserID)
	s.publisher.Publish(ctx, events.NewItemEvent(events.ItemUnassigned, inv.ID, item.ID))
	return nil
}

// Remove deletes any claim on an item, assigned or not.
func (s *ClaimService) Remove(ctx context.Context, userID, inventoryID, itemID, claimID uuid.UUID) error {
	inv, _, err := s.access.manageable(ctx, userID, inventoryID, "remove claims in this inventory")
	if err != nil {
		return err
	}
	item, err := s.access.item(ctx, inv, itemID, false)
	if err != nil {
		return err
	}
	claim, err := s.claimOnItem(ctx, item.ID, claimID)
	if err != nil {
		return err
	}

	if err := s.claims.Delete(ctx, claim.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgClaimNotFound)
		}
		return fmt.Errorf("delete claim: %w", err)
	}

	s.log.InfoContext(ctx, "claim removed",
		"inventory_id", inv.ID, "item_id", item.ID, "claim_id", claim.ID, "removed_by", userID)
	s.publisher.Publish(ctx, events.NewClaimEvent(events.ClaimDeleted, inv.ID, item.ID, claim.ID))
	return nil
}
