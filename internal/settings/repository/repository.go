package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/settings/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type SettingsRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewSettingsRepository(db *bun.DB, logger *logger.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, logger: logger}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	s := new(model.Setting)
	err := r.db.NewSelect().Model(s).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, errors.Wrap(err, "settingsRepo.Get.Scan")
	}
	return s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *model.Setting) error {
	s.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(s).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "settingsRepo.Upsert.Insert")
	}
	return nil
}

func (r *SettingsRepository) All(ctx context.Context) ([]*model.Setting, error) {
	var ss []*model.Setting
	err := r.db.NewSelect().Model(&ss).Order("key ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "settingsRepo.All.Scan")
	}
	return ss, nil
}

func (r *SettingsRepository) Delete(ctx context.Context, key string) error {
	res, err := r.db.NewDelete().
		Model((*model.Setting)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "settingsRepo.Delete.Delete")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrSettingNotFound
	}
	return nil
}
