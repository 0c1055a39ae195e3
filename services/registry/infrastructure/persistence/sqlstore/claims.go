package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

const claimColumns = `c.id, c.item_id, c.user_id, c.status, c.created_at, c.updated_at`

// ClaimRepository implements repositories.ClaimRepository. The one-claim-per
// user and one-assignment-per-item rules are unique indexes; a violation
// surfaces as domain.ErrConflict.
type ClaimRepository struct {
	db *database.Database
}

// Create inserts an INTERESTED claim.
func (r *ClaimRepository) Create(ctx context.Context, c *models.Claim) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		INSERT INTO claims (id, item_id, user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		c.ID, c.ItemID, c.UserID, string(c.Status), toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("insert claim: %w", domain.Conflict("You have already claimed this item"))
	}
	return mapError(err, "insert claim", "claim")
}

// GetByID returns the claim with the given ID.
func (r *ClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+claimColumns+` FROM claims c WHERE c.id = ?`), id)
	c, err := scanClaim(row)
	if err != nil {
		return nil, mapError(err, "get claim", "claim")
	}
	return c, nil
}

// FindByItemAndUser returns userID's claim on itemID.
func (r *ClaimRepository) FindByItemAndUser(ctx context.Context, itemID, userID uuid.UUID) (*models.Claim, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+claimColumns+` FROM claims c WHERE c.item_id = ? AND c.user_id = ?`),
		itemID, userID)
	c, err := scanClaim(row)
	if err != nil {
		return nil, mapError(err, "find claim", "claim")
	}
	return c, nil
}

// FindAssigned returns the ASSIGNED claim on itemID and its holder's name.
func (r *ClaimRepository) FindAssigned(ctx context.Context, itemID uuid.UUID) (*models.ClaimWithUser, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(`
		SELECT `+claimColumns+`, u.display_name
		FROM claims c JOIN users u ON u.id = c.user_id
		WHERE c.item_id = ? AND c.status = ?`),
		itemID, string(models.ClaimAssigned))
	c, err := scanClaimWithUser(row)
	if err != nil {
		return nil, mapError(err, "find assigned claim", "assigned claim")
	}
	return c, nil
}

// ListByItem returns every claim on itemID, oldest first.
func (r *ClaimRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ClaimWithUser, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT `+claimColumns+`, u.display_name
		FROM claims c JOIN users u ON u.id = c.user_id
		WHERE c.item_id = ?
		ORDER BY c.created_at, c.id`), itemID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var out []*models.ClaimWithUser
	for rows.Next() {
		c, err := scanClaimWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Assign moves claimID from INTERESTED to ASSIGNED in a single conditional
// update. When another claim on the item is already ASSIGNED the partial
// unique index rejects the write and Assign returns a conflict. When claimID
// is not an INTERESTED claim on itemID it returns not found.
func (r *ClaimRepository) Assign(ctx context.Context, itemID, claimID uuid.UUID) (*models.Claim, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(`
		UPDATE claims SET status = ?, updated_at = ?
		WHERE id = ? AND item_id = ? AND status = ?
		RETURNING id, item_id, user_id, status, created_at, updated_at`),
		string(models.ClaimAssigned), toMillis(now()), claimID, itemID, string(models.ClaimInterested))
	c, err := scanClaim(row)
	switch {
	case err == nil:
		return c, nil
	case database.IsUniqueViolation(err):
		return nil, fmt.Errorf("assign claim: %w", domain.Conflict("This item is already assigned"))
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("assign claim: %w", domain.NotFound("no interested claim %s on this item", claimID))
	default:
		return nil, fmt.Errorf("assign claim: %w", err)
	}
}

// Unassign moves the ASSIGNED claim on itemID back to INTERESTED.
func (r *ClaimRepository) Unassign(ctx context.Context, itemID uuid.UUID) (*models.Claim, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(`
		UPDATE claims SET status = ?, updated_at = ?
		WHERE item_id = ? AND status = ?
		RETURNING id, item_id, user_id, status, created_at, updated_at`),
		string(models.ClaimInterested), toMillis(now()), itemID, string(models.ClaimAssigned))
	c, err := scanClaim(row)
	if err != nil {
		return nil, mapError(err, "unassign claim", "assigned claim")
	}
	return c, nil
}

// DeleteInterested deletes userID's claim on itemID only while it is still
// INTERESTED, so a withdrawal racing an assignment cannot remove the winner.
func (r *ClaimRepository) DeleteInterested(ctx context.Context, itemID, userID uuid.UUID) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`DELETE FROM claims WHERE item_id = ? AND user_id = ? AND status = ?`),
		itemID, userID, string(models.ClaimInterested))
	if err != nil {
		return false, fmt.Errorf("delete claim: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete claim: rows affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes a claim whatever its status.
func (r *ClaimRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`DELETE FROM claims WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}
	return expectOne(res, "delete claim", "claim")
}

// ListForInventory returns every claim on the inventory's non-deleted items.
func (r *ClaimRepository) ListForInventory(ctx context.Context, inventoryID uuid.UUID) ([]models.ClaimRow, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT c.id, c.user_id, i.id, i.reference_number, i.description,
			COALESCE(cat.name, ''), c.status, i.is_collected
		FROM claims c
		JOIN items i ON i.id = c.item_id
		LEFT JOIN categories cat ON cat.id = i.category_id
		WHERE i.inventory_id = ? AND NOT i.is_deleted
		ORDER BY COALESCE(cat.name, ''), i.reference_number, c.created_at`), inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory claims: %w", err)
	}
	defer rows.Close()

	var out []models.ClaimRow
	for rows.Next() {
		var (
			cr     models.ClaimRow
			status string
		)
		if err := rows.Scan(&cr.ClaimID, &cr.UserID, &cr.ItemID, &cr.ReferenceNumber, &cr.Description,
			&cr.CategoryName, &status, &cr.IsCollected); err != nil {
			return nil, fmt.Errorf("scan claim row: %w", err)
		}
		cr.Status = models.ClaimStatus(status)
		out = append(out, cr)
	}
	return out, rows.Err()
}

// ListParticipants returns the ACTIVE ADMIN and CLAIMANT members of the
// inventory. The owner has no member row and is not included.
func (r *ClaimRepository) ListParticipants(ctx context.Context, inventoryID uuid.UUID) ([]models.Participant, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT m.id, m.user_id, u.display_name, m.role, m.finished_at
		FROM members m JOIN users u ON u.id = m.user_id
		WHERE m.inventory_id = ? AND m.status = ? AND m.role IN (?, ?)`),
		inventoryID, string(models.MemberActive), string(models.RoleAdmin), string(models.RoleClaimant))
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var out []models.Participant
	for rows.Next() {
		var (
			p        models.Participant
			memberID uuid.UUID
			role     string
			finished sql.NullInt64
		)
		if err := rows.Scan(&memberID, &p.UserID, &p.DisplayName, &role, &finished); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.MemberID = &memberID
		p.Role = models.Role(role)
		p.IsFinished = finished.Valid
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListForUser returns userID's claims on the inventory's non-deleted items in
// the same order as ListForInventory.
func (r *ClaimRepository) ListForUser(ctx context.Context, inventoryID, userID uuid.UUID) ([]models.MyClaim, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT i.id, c.id, i.reference_number, i.category_id, COALESCE(cat.name, ''), i.description,
			c.status, i.is_collected,
			(SELECT COUNT(*) FROM claims n WHERE n.item_id = i.id),
			COALESCE((SELECT u.display_name FROM claims a JOIN users u ON u.id = a.user_id
				WHERE a.item_id = i.id AND a.status = ?), '')
		FROM claims c
		JOIN items i ON i.id = c.item_id
		LEFT JOIN categories cat ON cat.id = i.category_id
		WHERE c.user_id = ? AND i.inventory_id = ? AND NOT i.is_deleted
		ORDER BY COALESCE(cat.name, ''), i.reference_number`),
		string(models.ClaimAssigned), userID, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list user claims: %w", err)
	}
	defer rows.Close()

	var out []models.MyClaim
	for rows.Next() {
		var (
			mc       models.MyClaim
			category uuid.NullUUID
			status   string
		)
		if err := rows.Scan(&mc.ItemID, &mc.ClaimID, &mc.ReferenceNumber, &category, &mc.CategoryName,
			&mc.Description, &status, &mc.IsCollected, &mc.ClaimCount, &mc.AssignedToName); err != nil {
			return nil, fmt.Errorf("scan user claim: %w", err)
		}
		mc.CategoryID = fromNullUUID(category)
		mc.ClaimStatus = models.ClaimStatus(status)
		mc.IsAssigned = mc.AssignedToName != ""
		out = append(out, mc)
	}
	return out, rows.Err()
}

func scanClaim(s scanner) (*models.Claim, error) {
	var (
		c       models.Claim
		status  string
		created int64
		updated int64
	)
	if err := s.Scan(&c.ID, &c.ItemID, &c.UserID, &status, &created, &updated); err != nil {
		return nil, err
	}
	c.Status = models.ClaimStatus(status)
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return &c, nil
}

func scanClaimWithUser(s scanner) (*models.ClaimWithUser, error) {
	var (
		c       models.ClaimWithUser
		status  string
		created int64
		updated int64
	)
	if err := s.Scan(&c.ID, &c.ItemID, &c.UserID, &status, &created, &updated, &c.UserDisplayName); err != nil {
		return nil, err
	}
	c.Status = models.ClaimStatus(status)
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return &c, nil
}
