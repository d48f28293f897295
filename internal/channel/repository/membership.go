package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

type MembershipRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMembershipRepository(db *bun.DB, logger *logger.Logger) *MembershipRepository {
	return &MembershipRepository{db: db, logger: logger}
}

func (r *MembershipRepository) GetMembership(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error) {
	m := new(model.Membership)
	err := r.db.NewSelect().
		Model(m).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, errors.Wrap(err, "membershipRepo.GetMembership.Scan")
	}
	return m, nil
}

func (r *MembershipRepository) ListMembers(ctx context.Context, channelID uuid.UUID) ([]*model.Membership, error) {
	var members []*model.Membership
	err := r.db.NewSelect().
		Model(&members).
		Relation("User").
		Where("channel_id = ?", channelID).
		Order("joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "membershipRepo.ListMembers.Scan")
	}
	return members, nil
}

func (r *MembershipRepository) ListMemberChannelIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*model.Membership)(nil)).
		Column("channel_id").
		Where("user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "membershipRepo.ListMemberChannelIDs.Scan")
	}
	return ids, nil
}

func (r *MembershipRepository) AssignRole(ctx context.Context, channelID, userID uuid.UUID, role model.Role) error {
	res, err := r.db.NewUpdate().
		Model((*model.Membership)(nil)).
		Set("role = ?", role).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.AssignRole.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepository) RemoveMember(ctx context.Context, channelID, userID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.Membership)(nil)).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.RemoveMember.Delete")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

// CreateJoinRequest relies on the (channel_id, user_id) unique constraint:
// a conflicting insert affects zero rows and reports a duplicate, so the
// at-most-one-live-knock rule holds even under concurrent knocks.
func (r *MembershipRepository) CreateJoinRequest(ctx context.Context, req *model.JoinRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = time.Now().UTC()

	res, err := r.db.NewInsert().
		Model(req).
		On("CONFLICT (channel_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.CreateJoinRequest.Insert")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrDuplicateJoinRequest
	}
	return nil
}

func (r *MembershipRepository) GetJoinRequest(ctx context.Context, id uuid.UUID) (*model.JoinRequest, error) {
	req := new(model.JoinRequest)
	err := r.db.NewSelect().Model(req).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, errors.Wrap(err, "membershipRepo.GetJoinRequest.Scan")
	}
	return req, nil
}

func (r *MembershipRepository) ListJoinRequests(ctx context.Context, channelID uuid.UUID) ([]*model.JoinRequest, error) {
	var reqs []*model.JoinRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Relation("User").
		Where("join_request.channel_id = ?", channelID).
		Order("join_request.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "membershipRepo.ListJoinRequests.Scan")
	}
	return reqs, nil
}

// AcceptJoinRequest converts a pending knock into a membership in one
// transaction. The conditional delete is the serialization point: of two
// racing accepts, exactly one sees an affected row; the other gets
// ErrJoinRequestNotFound and no second membership row can appear.
func (r *MembershipRepository) AcceptJoinRequest(ctx context.Context, requestID uuid.UUID) (*model.Membership, error) {
	var membership *model.Membership

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		req := new(model.JoinRequest)
		err := tx.NewSelect().Model(req).Where("id = ?", requestID).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.ErrJoinRequestNotFound
			}
			return errors.Wrap(err, "membershipRepo.AcceptJoinRequest.Select")
		}

		res, err := tx.NewDelete().
			Model((*model.JoinRequest)(nil)).
			Where("id = ?", requestID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "membershipRepo.AcceptJoinRequest.Delete")
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			// Someone else accepted or declined first.
			return apperrors.ErrJoinRequestNotFound
		}

		m := &model.Membership{
			ChannelID: req.ChannelID,
			UserID:    req.UserID,
			Role:      model.RoleMember,
			JoinedAt:  time.Now().UTC(),
		}
		if _, err := tx.NewInsert().
			Model(m).
			On("CONFLICT (channel_id, user_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "membershipRepo.AcceptJoinRequest.Insert")
		}
		membership = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *MembershipRepository) DeclineJoinRequest(ctx context.Context, requestID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.JoinRequest)(nil)).
		Where("id = ?", requestID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.DeclineJoinRequest.Delete")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrJoinRequestNotFound
	}
	return nil
}

func (r *MembershipRepository) CreateInvitation(ctx context.Context, inv *model.Invitation) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now().UTC()

	res, err := r.db.NewInsert().
		Model(inv).
		On("CONFLICT (channel_id, recipient_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.CreateInvitation.Insert")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrDuplicateInvitation
	}
	return nil
}

func (r *MembershipRepository) GetInvitation(ctx context.Context, channelID, recipientID uuid.UUID) (*model.Invitation, error) {
	inv := new(model.Invitation)
	err := r.db.NewSelect().
		Model(inv).
		Where("channel_id = ? AND recipient_id = ?", channelID, recipientID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, errors.Wrap(err, "membershipRepo.GetInvitation.Scan")
	}
	return inv, nil
}

func (r *MembershipRepository) ListInvitationsForUser(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error) {
	var invs []*model.Invitation
	err := r.db.NewSelect().
		Model(&invs).
		Relation("Channel").
		Where("invitation.recipient_id = ?", recipientID).
		Order("invitation.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "membershipRepo.ListInvitationsForUser.Scan")
	}
	return invs, nil
}

// AcceptInvitation mirrors AcceptJoinRequest, keyed by (channel, recipient).
func (r *MembershipRepository) AcceptInvitation(ctx context.Context, channelID, recipientID uuid.UUID) (*model.Membership, error) {
	var membership *model.Membership

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*model.Invitation)(nil)).
			Where("channel_id = ? AND recipient_id = ?", channelID, recipientID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "membershipRepo.AcceptInvitation.Delete")
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperrors.ErrInvitationNotFound
		}

		m := &model.Membership{
			ChannelID: channelID,
			UserID:    recipientID,
			Role:      model.RoleMember,
			JoinedAt:  time.Now().UTC(),
		}
		if _, err := tx.NewInsert().
			Model(m).
			On("CONFLICT (channel_id, user_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "membershipRepo.AcceptInvitation.Insert")
		}
		membership = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *MembershipRepository) DeleteInvitation(ctx context.Context, channelID, recipientID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.Invitation)(nil)).
		Where("channel_id = ? AND recipient_id = ?", channelID, recipientID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "membershipRepo.DeleteInvitation.Delete")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.ErrInvitationNotFound
	}
	return nil
}
