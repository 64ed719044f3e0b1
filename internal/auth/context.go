package auth

import (
	"context"

	"github.com/ankitpatil/disha/internal/domain"
)

type ctxKey int

const userKey ctxKey = iota

// WithUser stores the authenticated user in a context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user from a context.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
