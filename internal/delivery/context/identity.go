package context

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller, as read from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   string
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)

	return identity, ok
}

// GetUserID returns the caller's ID, or uuid.Nil and false for anonymous requests.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(ctx)

	return identity.UserID, ok
}
