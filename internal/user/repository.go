package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*model.User, error)
	// DeactivateUser is a soft delete: messages and channels keep
	// referencing the row, the account just stops authenticating.
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
}
