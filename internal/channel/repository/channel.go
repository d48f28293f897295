package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type ChannelRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChannelRepository(db *bun.DB, logger *logger.Logger) *ChannelRepository {
	return &ChannelRepository{db: db, logger: logger}
}

func (r *ChannelRepository) CreateChannel(ctx context.Context, ch *model.Channel) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	now := time.Now().UTC()
	ch.CreatedAt = now
	ch.UpdatedAt = now

	_, err := r.db.NewInsert().Model(ch).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.CreateChannel.Insert")
	}
	return nil
}

func (r *ChannelRepository) GetChannel(ctx context.Context, id uuid.UUID) (*model.Channel, error) {
	ch := new(model.Channel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "channelRepo.GetChannel.Scan")
	}
	return ch, nil
}

func (r *ChannelRepository) UpdateChannel(ctx context.Context, ch *model.Channel) error {
	ch.UpdatedAt = time.Now().UTC()

	res, err := r.db.NewUpdate().
		Model(ch).
		Column("name", "is_private", "is_discoverable", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.UpdateChannel.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrChannelNotFound
	}
	return nil
}

func (r *ChannelRepository) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.Channel)(nil)).
		Where("creator_id = ?", creatorID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "channelRepo.CountByCreator.Count")
	}
	return count, nil
}

func (r *ChannelRepository) ListVisibleChannels(ctx context.Context, u *user.User) ([]*model.Channel, error) {
	var channels []*model.Channel

	q := r.db.NewSelect().Model(&channels).Order("name ASC")
	if !u.IsAdmin {
		userID := u.ID
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("is_private = FALSE").
				WhereOr("(is_private = TRUE AND is_discoverable = TRUE)").
				WhereOr("creator_id = ?", userID).
				WhereOr("id IN (SELECT channel_id FROM channel_users WHERE user_id = ?)", userID)
		})
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListVisibleChannels.Scan")
	}
	return channels, nil
}

func (r *ChannelRepository) DeleteChannelCascade(ctx context.Context, id uuid.UUID) ([]string, error) {
	var storedNames []string

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model((*model.File)(nil)).
			Column("stored_name").
			Where("message_id IN (SELECT id FROM messages WHERE channel_id = ?)", id).
			Scan(ctx, &storedNames)
		if err != nil {
			return errors.Wrap(err, "channelRepo.DeleteChannelCascade.SelectFiles")
		}

		if _, err := tx.NewDelete().
			Model((*model.File)(nil)).
			Where("message_id IN (SELECT id FROM messages WHERE channel_id = ?)", id).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "channelRepo.DeleteChannelCascade.DeleteFiles")
		}

		for _, m := range []any{
			(*model.Message)(nil),
			(*model.JoinRequest)(nil),
			(*model.Invitation)(nil),
			(*model.Membership)(nil),
		} {
			if _, err := tx.NewDelete().Model(m).Where("channel_id = ?", id).Exec(ctx); err != nil {
				return errors.Wrapf(err, "channelRepo.DeleteChannelCascade.Delete %T", m)
			}
		}

		res, err := tx.NewDelete().Model((*model.Channel)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "channelRepo.DeleteChannelCascade.DeleteChannel")
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperrors.ErrChannelNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return storedNames, nil
}
