package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings/mocks"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

func newTestUsecase(ctrl *gomock.Controller) (*SettingsUsecase, *mocks.MockSettingsRepository) {
	repo := mocks.NewMockSettingsRepository(ctrl)
	uc := NewSettingsUsecase(repo, &logger.Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return uc, repo
}

func TestSettingsUsecase_Set(t *testing.T) {
	ctx := context.Background()
	admin := &user.User{ID: uuid.New(), Username: "root", IsAdmin: true, IsActive: true}
	member := &user.User{ID: uuid.New(), Username: "bob", IsActive: true}

	t.Run("non-admin cannot write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUsecase(ctrl)

		err := uc.Set(ctx, member, "retention_days", "14")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("blank key is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUsecase(ctrl)

		err := uc.Set(ctx, admin, "  ", "x")
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("admin write upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newTestUsecase(ctrl)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *model.Setting) error {
				assert.Equal(t, "retention_days", s.Key)
				assert.Equal(t, "14", s.Value)
				return nil
			})

		assert.NoError(t, uc.Set(ctx, admin, "retention_days", "14"))
	})
}

func TestSettingsUsecase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns the stored value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newTestUsecase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "announcement").
			Return(&model.Setting{Key: "announcement", Value: "hi"}, nil)

		v, err := uc.Get(ctx, "announcement")
		require.NoError(t, err)
		assert.Equal(t, "hi", v)
	})

	t.Run("get or default falls back on missing keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newTestUsecase(ctrl)

		repo.EXPECT().Get(gomock.Any(), "retention_days").
			Return(nil, apperrors.ErrSettingNotFound)

		v, err := uc.GetOrDefault(ctx, "retention_days", "30")
		require.NoError(t, err)
		assert.Equal(t, "30", v)
	})

	t.Run("all flattens to a map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newTestUsecase(ctrl)

		repo.EXPECT().All(gomock.Any()).Return([]*model.Setting{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
		}, nil)

		all, err := uc.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
	})
}
