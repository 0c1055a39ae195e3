package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
	domainsvcs "github.com/ghuser/giftregistry/services/registry/domain/services"
)

// UserService resolves caller identities.
type UserService struct {
	users repositories.UserRepository
	log   logger.Logger
}

// NewUserService returns a UserService over users.
func NewUserService(users repositories.UserRepository, log logger.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Get returns the user with the given ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NotFound("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Resolve finds the user registered under email or registers a new one.
// displayName is only used for a new user; when empty, the local part of
// the email is used instead.
func (s *UserService) Resolve(ctx context.Context, email, displayName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.BadInput("email must not be empty")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	name := strings.TrimSpace(displayName)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if err := domainsvcs.ValidateName("display name", name); err != nil {
		return nil, domain.BadInput("%s", err.Error())
	}

	u = models.NewUser(name, email)
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Registered concurrently.
			return s.users.GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.InfoContext(ctx, "user registered", "user_id", u.ID)
	return u, nil
}
