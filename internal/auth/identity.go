// Package auth verifies Supabase access tokens and carries the verified
// caller identity through a request.
//
// The HTTP middleware only ever adds an identity to the context. Deciding
// that an operation needs one is the job of RequireUser, called first by
// every resolver that touches owned data.
package auth

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

// UserID is the Supabase subject of a verified token
type UserID string

// String returns the raw id
func (u UserID) String() string {
	return string(u)
}

// IsZero reports whether the id is empty
func (u UserID) IsZero() bool {
	return strings.TrimSpace(string(u)) == ""
}

// Identity is the verified caller of a request
type Identity struct {
	UserID UserID
	Email  string
	Role   string
}

type identityKey struct{}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID.IsZero() {
		return Identity{}, false
	}
	return id, true
}

// RequireUser returns the verified user or UNAUTHENTICATED
func RequireUser(ctx context.Context) (UserID, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return "", errors.Unauthenticated("authentication required")
	}
	return id.UserID, nil
}
