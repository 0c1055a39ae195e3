package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// Not-found lookups return an error wrapping domain.ErrNotFound; unique
// constraint violations return an error wrapping domain.ErrConflict.

// UserRepository persists resolved identities.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// InventoryRepository persists inventories.
type InventoryRepository interface {
	Create(ctx context.Context, inv *models.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)

	// ListForUser returns inventories the user owns or holds a membership in,
	// pending or active.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inventory, error)

	Rename(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes the inventory with its members, invitations,
	// categories, items and claims.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemberRepository persists inventory memberships.
type MemberRepository interface {
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)

	// Find returns the membership of userID in inventoryID.
	Find(ctx context.Context, inventoryID, userID uuid.UUID) (*models.Member, error)
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Member, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error

	// Delete fails with domain.ErrConflict while any item, deleted or not,
	// is still filed under the category.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvitationRepository persists invitations. Tokens are unique.
type InvitationRepository interface {
	Create(ctx context.Context, inv *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	GetByToken(ctx context.Context, token string) (*models.Invitation, error)

	// ListPending returns the invitations of inventoryID that are neither
	// accepted nor expired at now, newest first.
	ListPending(ctx context.Context, inventoryID uuid.UUID, now time.Time) ([]*models.Invitation, error)

	// FindPending returns a pending invitation of email to inventoryID.
	FindPending(ctx context.Context, inventoryID uuid.UUID, email string, now time.Time) (*models.Invitation, error)

	// MarkAccepted stamps an unaccepted invitation, reporting whether it did.
	MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository persists items and owns reference number allocation.
type ItemRepository interface {
	// CreateNumbered allocates the next reference number in the item's scope
	// and inserts the item in the same transaction, setting
	// item.ReferenceNumber. Concurrent calls on one scope are serialised;
	// calls on different scopes do not wait on each other.
	CreateNumbered(ctx context.Context, item *models.Item) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Item, error)

	// Each mutation writes only its own column so concurrent changes to
	// one item compose.
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) error
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error

	// MarkCollected collects a non-deleted item only while it has an
	// ASSIGNED claim, reporting whether it did.
	MarkCollected(ctx context.Context, id uuid.UUID) (bool, error)
	ClearCollected(ctx context.Context, id uuid.UUID) error
}

// ClaimRepository persists claims. Storage enforces at most one claim per
// (item, user) and at most one ASSIGNED claim per item; the losing side of a
// race gets an error wrapping domain.ErrConflict.
type ClaimRepository interface {
	Create(ctx context.Context, c *models.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error)
	FindByItemAndUser(ctx context.Context, itemID, userID uuid.UUID) (*models.Claim, error)

	// FindAssigned returns the ASSIGNED claim on itemID joined with its holder.
	FindAssigned(ctx context.Context, itemID uuid.UUID) (*models.ClaimWithUser, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ClaimWithUser, error)

	// Assign moves claimID on itemID from INTERESTED to ASSIGNED.
	Assign(ctx context.Context, itemID, claimID uuid.UUID) (*models.Claim, error)

	// Unassign moves the ASSIGNED claim on itemID back to INTERESTED.
	Unassign(ctx context.Context, itemID uuid.UUID) (*models.Claim, error)

	// DeleteInterested deletes the user's claim on itemID only while it is
	// INTERESTED. It reports whether a row was deleted.
	DeleteInterested(ctx context.Context, itemID, userID uuid.UUID) (bool, error)

	// Delete removes a claim whatever its status.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForInventory returns every claim on a non-deleted item of the inventory.
	ListForInventory(ctx context.Context, inventoryID uuid.UUID) ([]models.ClaimRow, error)

	// ListParticipants returns the ACTIVE ADMIN and CLAIMANT members of the
	// inventory joined with their display names.
	ListParticipants(ctx context.Context, inventoryID uuid.UUID) ([]models.Participant, error)

	// ListForUser returns userID's claims on non-deleted items of the
	// inventory with each item's claim count and holder.
	ListForUser(ctx context.Context, inventoryID, userID uuid.UUID) ([]models.MyClaim, error)
}
