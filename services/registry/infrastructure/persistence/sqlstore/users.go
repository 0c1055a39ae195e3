package sqlstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

const userColumns = `id, display_name, email, created_at`

// UserRepository implements repositories.UserRepository.
type UserRepository struct {
	db *database.Database
}

// Create inserts a user. A duplicate email is a conflict.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, r.db.Rebind(
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?)`),
		u.ID, u.DisplayName, u.Email, toMillis(u.CreatedAt),
	)
	return mapError(err, "insert user", "user")
}

// GetByID returns the user with the given ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+userColumns+` FROM users WHERE id = ?`), id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "get user", "user")
	}
	return u, nil
}

// GetByEmail looks a user up by normalised email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, r.db.Rebind(
		`SELECT `+userColumns+` FROM users WHERE email = ?`), email)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "get user by email", "user")
	}
	return u, nil
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u       models.User
		created int64
	)
	if err := s.Scan(&u.ID, &u.DisplayName, &u.Email, &created); err != nil {
		return nil, err
	}
	u.CreatedAt = fromMillis(created)
	return &u, nil
}
