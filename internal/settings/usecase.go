package settings

import (
	"context"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

// SettingsUsecase exposes runtime settings. Reads are open to any
// authenticated user; writes are site-admin only.
type SettingsUsecase interface {
	Get(ctx context.Context, key string) (string, error)
	GetOrDefault(ctx context.Context, key, fallback string) (string, error)
	Set(ctx context.Context, actor *user.User, key, value string) error
	All(ctx context.Context) (map[string]string, error)
	Unset(ctx context.Context, actor *user.User, key string) error
}
