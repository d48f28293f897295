package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	channel "github.com/theflightrs/Speedchannel-Ultimate/internal/channel"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{db: db, logger: logger}
}

func (r *MessageRepository) CreateMessageWithFiles(ctx context.Context, msg *model.Message, files []*model.File) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now().UTC()
	msg.HasAttachment = len(files) > 0

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(msg).Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.CreateMessageWithFiles.InsertMessage")
		}

		if len(files) == 0 {
			return nil
		}
		for _, f := range files {
			if f.ID == uuid.Nil {
				f.ID = uuid.New()
			}
			f.MessageID = msg.ID
			f.CreatedAt = msg.CreatedAt
		}
		if _, err := tx.NewInsert().Model(&files).Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.CreateMessageWithFiles.InsertFiles")
		}
		return nil
	})
}

func (r *MessageRepository) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Relation("Files").
		Where("message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetMessage.Scan")
	}
	return msg, nil
}

// ListMessages re-queries on every call; the returned slice is a snapshot,
// not a resumable cursor. Ordering is explicit per query, with the row id
// as tiebreak so concurrent same-timestamp appends keep a stable position.
func (r *MessageRepository) ListMessages(ctx context.Context, channelID uuid.UUID, limit int, order channel.Ordering) ([]*model.Message, error) {
	var msgs []*model.Message

	q := r.db.NewSelect().
		Model(&msgs).
		Relation("Sender").
		Relation("Files").
		Where("message.channel_id = ?", channelID)

	switch order {
	case channel.OldestFirst:
		q = q.Order("message.created_at ASC", "message.id ASC")
	default:
		q = q.Order("message.created_at DESC", "message.id DESC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListMessages.Scan")
	}
	return msgs, nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) ([]string, error) {
	var storedNames []string

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model((*model.File)(nil)).
			Column("stored_name").
			Where("message_id = ?", id).
			Scan(ctx, &storedNames)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteMessage.SelectFiles")
		}

		if _, err := tx.NewDelete().
			Model((*model.File)(nil)).
			Where("message_id = ?", id).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteMessage.DeleteFiles")
		}

		res, err := tx.NewDelete().Model((*model.Message)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteMessage.Delete")
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperrors.ErrMessageNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return storedNames, nil
}

func (r *MessageRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]string, int64, error) {
	var storedNames []string
	var deleted int64

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model((*model.File)(nil)).
			Column("stored_name").
			Where("message_id IN (SELECT id FROM messages WHERE created_at < ?)", cutoff).
			Scan(ctx, &storedNames)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteOlderThan.SelectFiles")
		}

		if _, err := tx.NewDelete().
			Model((*model.File)(nil)).
			Where("message_id IN (SELECT id FROM messages WHERE created_at < ?)", cutoff).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messageRepo.DeleteOlderThan.DeleteFiles")
		}

		res, err := tx.NewDelete().
			Model((*model.Message)(nil)).
			Where("created_at < ?", cutoff).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteOlderThan.Delete")
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return storedNames, deleted, nil
}
