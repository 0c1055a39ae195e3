package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

const memberColumns = `id, inventory_id, user_id, role, status, finished_at, created_at`

// MemberRepository implements repositories.MemberRepository.
type MemberRepository struct {
	db *database.Database
}

// Create inserts a membership. A second membership of the same user in the
// same inventory is a conflict.
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`INSERT INTO members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`),
		m.ID, m.InventoryID, m.UserID, string(m.Role), string(m.Status),
		nullMillis(m.FinishedAt), toMillis(m.CreatedAt),
	)
	return mapError(err, "insert member", "member")
}

// GetByID returns the membership with the given ID.
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+memberColumns+` FROM members WHERE id = ?`), id)
	m, err := scanMember(row)
	if err != nil {
		return nil, mapError(err, "get member", "member")
	}
	return m, nil
}

// Find returns userID's membership in inventoryID.
func (r *MemberRepository) Find(ctx context.Context, inventoryID, userID uuid.UUID) (*models.Member, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+memberColumns+` FROM members WHERE inventory_id = ? AND user_id = ?`),
		inventoryID, userID)
	m, err := scanMember(row)
	if err != nil {
		return nil, mapError(err, "find member", "member")
	}
	return m, nil
}

// Update persists role, status and finished state.
func (r *MemberRepository) Update(ctx context.Context, m *models.Member) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`UPDATE members SET role = ?, status = ?, finished_at = ? WHERE id = ?`),
		string(m.Role), string(m.Status), nullMillis(m.FinishedAt), m.ID,
	)
	if err != nil {
		return mapError(err, "update member", "member")
	}
	return expectOne(res, "update member", "member")
}

// Delete removes a membership.
func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, r.db.Rebind(`DELETE FROM members WHERE id = ?`), id)
	if err != nil {
		return mapError(err, "delete member", "member")
	}
	return expectOne(res, "delete member", "member")
}

// ListByInventory returns the inventory's memberships, oldest first.
func (r *MemberRepository) ListByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*models.Member, error) {
	rows, err := r.db.DB().QueryContext(ctx, r.db.Rebind(
		`SELECT `+memberColumns+` FROM members WHERE inventory_id = ? ORDER BY created_at, id`),
		inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var out []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMember(s scanner) (*models.Member, error) {
	var (
		m        models.Member
		role     string
		status   string
		finished sql.NullInt64
		created  int64
	)
	if err := s.Scan(&m.ID, &m.InventoryID, &m.UserID, &role, &status, &finished, &created); err != nil {
		return nil, err
	}
	m.Role = models.Role(role)
	m.Status = models.MemberStatus(status)
	m.FinishedAt = fromNullMillis(finished)
	m.CreatedAt = fromMillis(created)
	return &m, nil
}
