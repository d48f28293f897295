package auth

import (
	"context"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

type ctxKey struct{}

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the authenticated user placed by the middleware.
func UserFromContext(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(ctxKey{}).(*user.User)
	if !ok || u == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	return u, nil
}
