package settings

import (
	"context"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings/model"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	// Upsert inserts or overwrites a key in one statement.
	Upsert(ctx context.Context, s *model.Setting) error
	All(ctx context.Context) ([]*model.Setting, error)
	Delete(ctx context.Context, key string) error
}
