package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type userKey struct{}

// ErrUnauthenticated means the request carries no signed-in user. The API
// maps it to 401.
var ErrUnauthenticated = errors.New("authentication required")

// UserIDFromCtx returns the signed-in user set by RequireUser.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	if id, ok := ctx.Value(userKey{}).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, ErrUnauthenticated
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}
