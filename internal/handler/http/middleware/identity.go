package middleware

import (
	"context"

	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
)

// Identity is the authenticated caller, resolved once from the verified
// token at the gate and consumed uniformly by every handler. Handlers never
// re-derive role from raw claims.
type Identity struct {
	UserID string
	Email  string
	Role   user.Role
}

func (i Identity) IsManager() bool {
	return i.Role == user.RoleManager
}

type identityContextKey struct{}

func withIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext returns the caller identity set by AuthRequired.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(Identity)
	return identity, ok
}
