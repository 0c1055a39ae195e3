package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

const invitationColumns = `id, inventory_id, email, role, token, invited_by, expires_at, accepted_at, created_at`

// InvitationRepository implements repositories.InvitationRepository.
type InvitationRepository struct {
	db *database.Database
}

// Create inserts an invitation.
func (r *InvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		inv.ID, inv.InventoryID, inv.Email, string(inv.Role), inv.Token, inv.InvitedBy,
		toMillis(inv.ExpiresAt), nullMillis(inv.AcceptedAt), toMillis(inv.CreatedAt),
	)
	return mapError(err, "insert invitation", "invitation")
}

// GetByID returns the invitation with the given ID.
func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`), id)
	inv, err := scanInvitation(row)
	if err != nil {
		return nil, mapError(err, "get invitation", "invitation")
	}
	return inv, nil
}

// GetByToken returns the invitation carrying token, accepted or expired
// ones included.
func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+invitationColumns+` FROM invitations WHERE token = ?`), token)
	inv, err := scanInvitation(row)
	if err != nil {
		return nil, mapError(err, "get invitation by token", "invitation")
	}
	return inv, nil
}

// ListPending returns the open invitations of inventoryID, newest first.
func (r *InvitationRepository) ListPending(ctx context.Context, inventoryID uuid.UUID, now time.Time) ([]*models.Invitation, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(`
		SELECT `+invitationColumns+` FROM invitations
		WHERE inventory_id = ? AND accepted_at IS NULL AND expires_at > ?
		ORDER BY created_at DESC, id`), inventoryID, toMillis(now))
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var out []*models.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// FindPending returns an open invitation of email to inventoryID.
func (r *InvitationRepository) FindPending(ctx context.Context, inventoryID uuid.UUID, email string, now time.Time) (*models.Invitation, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(`
		SELECT `+invitationColumns+` FROM invitations
		WHERE inventory_id = ? AND email = ? AND accepted_at IS NULL AND expires_at > ?
		ORDER BY created_at DESC
		LIMIT 1`), inventoryID, email, toMillis(now))
	inv, err := scanInvitation(row)
	if err != nil {
		return nil, mapError(err, "find pending invitation", "invitation")
	}
	return inv, nil
}

// MarkAccepted sets accepted_at unless it is already set, so only one of
// two concurrent acceptances wins.
func (r *InvitationRepository) MarkAccepted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`UPDATE invitations SET accepted_at = ? WHERE id = ? AND accepted_at IS NULL`),
		toMillis(at), id)
	if err != nil {
		return false, fmt.Errorf("accept invitation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("accept invitation: rows affected: %w", err)
	}
	return n == 1, nil
}

// Delete removes an invitation.
func (r *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`DELETE FROM invitations WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	return expectOne(res, "delete invitation", "invitation")
}

func scanInvitation(s scanner) (*models.Invitation, error) {
	var (
		inv      models.Invitation
		role     string
		expires  int64
		accepted sql.NullInt64
		created  int64
	)
	if err := s.Scan(&inv.ID, &inv.InventoryID, &inv.Email, &role, &inv.Token, &inv.InvitedBy,
		&expires, &accepted, &created); err != nil {
		return nil, err
	}
	inv.Role = models.Role(role)
	inv.ExpiresAt = fromMillis(expires)
	inv.AcceptedAt = fromNullMillis(accepted)
	inv.CreatedAt = fromMillis(created)
	return &inv, nil
}
