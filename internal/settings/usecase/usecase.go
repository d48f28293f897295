package usecase

import (
	"context"
	"strings"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type SettingsUsecase struct {
	repo   settings.SettingsRepository
	logger *logger.Logger
}

func NewSettingsUsecase(repo settings.SettingsRepository, logger *logger.Logger) *SettingsUsecase {
	return &SettingsUsecase{repo: repo, logger: logger}
}

func (uc *SettingsUsecase) Get(ctx context.Context, key string) (string, error) {
	s, err := uc.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

func (uc *SettingsUsecase) GetOrDefault(ctx context.Context, key, fallback string) (string, error) {
	s, err := uc.repo.Get(ctx, key)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return fallback, nil
		}
		return "", err
	}
	return s.Value, nil
}

func (uc *SettingsUsecase) Set(ctx context.Context, actor *user.User, key, value string) error {
	if !actor.IsAdmin {
		return apperrors.ErrPermissionDenied
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.InvalidArg("setting key is required")
	}

	if err := uc.repo.Upsert(ctx, &model.Setting{Key: key, Value: value}); err != nil {
		uc.logger.Error("setting upsert failed", "key", key, "err", err)
		return apperrors.ErrStorage(err)
	}
	return nil
}

func (uc *SettingsUsecase) All(ctx context.Context) (map[string]string, error) {
	ss, err := uc.repo.All(ctx)
	if err != nil {
		uc.logger.Error("settings listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	out := make(map[string]string, len(ss))
	for _, s := range ss {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (uc *SettingsUsecase) Unset(ctx context.Context, actor *user.User, key string) error {
	if !actor.IsAdmin {
		return apperrors.ErrPermissionDenied
	}
	return uc.repo.Delete(ctx, key)
}
