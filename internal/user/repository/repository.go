package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.IsActive = true

	res, err := r.db.NewInsert().
		Model(u).
		On("CONFLICT (username) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.AlreadyExists("username is already taken")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u := new(model.User)
	err := r.db.NewSelect().Model(u).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return u, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u := new(model.User)
	err := r.db.NewSelect().Model(u).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan")
	}
	return u, nil
}

func (r *UserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.NewSelect().
		Model(&users).
		Where("username LIKE ?", "%"+query+"%").
		Where("is_active = TRUE").
		Order("username ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.Scan")
	}
	return users, nil
}

func (r *UserRepository) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*model.User)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeactivateUser.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	res, err := r.db.NewUpdate().
		Model((*model.User)(nil)).
		Set("is_admin = ?", isAdmin).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetAdmin.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
