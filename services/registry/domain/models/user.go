package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a resolved caller identity.
type User struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	CreatedAt   time.Time
}

// NewUser constructs a User with a generated ID. The email is normalised to
// lower case so lookups are case-insensitive.
func NewUser(displayName, email string) *User {
	return &User{
		ID:          uuid.New(),
		DisplayName: strings.TrimSpace(displayName),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		CreatedAt:   time.Now().UTC(),
	}
}
