package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/authz"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	userdomain "github.com/theflightrs/Speedchannel-Ultimate/internal/user"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

// MembershipUsecase drives the per-(channel, user) lifecycle:
//
//	NONE --knock--> KNOCKING --accept--> MEMBER
//	                          --decline--> NONE
//	NONE --invite--> INVITED --accept--> MEMBER
//	                          --decline/retract--> NONE
//	MEMBER --remove--> NONE
//
// Every accept path is a single repository transaction; a failed accept
// leaves no partial state behind.
type MembershipUsecase struct {
	channels    channel.ChannelRepository
	memberships channel.MembershipRepository
	users       userdomain.UserRepository
	resolver    *authz.Resolver
	logger      *logger.Logger
}

func NewMembershipUsecase(
	channels channel.ChannelRepository,
	memberships channel.MembershipRepository,
	users userdomain.UserRepository,
	resolver *authz.Resolver,
	logger *logger.Logger,
) *MembershipUsecase {
	return &MembershipUsecase{
		channels:    channels,
		memberships: memberships,
		users:       users,
		resolver:    resolver,
		logger:      logger,
	}
}

func (uc *MembershipUsecase) Knock(ctx context.Context, actor *user.User, channelID uuid.UUID) (*model.JoinRequest, error) {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !ch.IsPrivate {
		return nil, apperrors.ErrChannelNotPrivate
	}
	if ch.CreatorID == actor.ID {
		return nil, apperrors.ErrAlreadyMember
	}
	if _, err := uc.memberships.GetMembership(ctx, channelID, actor.ID); err == nil {
		return nil, apperrors.ErrAlreadyMember
	} else if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		return nil, err
	}

	req := &model.JoinRequest{ChannelID: channelID, UserID: actor.ID}
	if err := uc.memberships.CreateJoinRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *MembershipUsecase) RespondToKnock(ctx context.Context, actor *user.User, requestID uuid.UUID, accept bool) error {
	req, err := uc.memberships.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if err := uc.requireManager(ctx, actor, req.ChannelID); err != nil {
		return err
	}

	if accept {
		// The repository serializes racing accepts: the loser comes back
		// with not-found, never a duplicate membership.
		_, err = uc.memberships.AcceptJoinRequest(ctx, requestID)
		return err
	}
	return uc.memberships.DeclineJoinRequest(ctx, requestID)
}

func (uc *MembershipUsecase) PendingKnocks(ctx context.Context, actor *user.User, channelID uuid.UUID) ([]channel.JoinRequestDTO, error) {
	if err := uc.requireManager(ctx, actor, channelID); err != nil {
		return nil, err
	}

	reqs, err := uc.memberships.ListJoinRequests(ctx, channelID)
	if err != nil {
		uc.logger.Error("join request listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	dtos := make([]channel.JoinRequestDTO, 0, len(reqs))
	for _, req := range reqs {
		dto := channel.JoinRequestDTO{
			ID:          req.ID,
			ChannelID:   req.ChannelID,
			UserID:      req.UserID,
			RequestedAt: req.CreatedAt,
		}
		if req.User != nil {
			dto.Username = req.User.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *MembershipUsecase) Invite(ctx context.Context, actor *user.User, channelID, recipientID uuid.UUID) (*model.Invitation, error) {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireManagerOn(ctx, actor, ch); err != nil {
		return nil, err
	}

	recipient, err := uc.users.GetUserByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !recipient.IsActive {
		return nil, apperrors.ErrUserNotFound
	}
	if recipient.ID == ch.CreatorID {
		return nil, apperrors.ErrAlreadyMember
	}
	if _, err := uc.memberships.GetMembership(ctx, channelID, recipientID); err == nil {
		return nil, apperrors.ErrAlreadyMember
	} else if apperrors.CodeOf(err) != apperrors.CodeNotFound {
		return nil, err
	}

	inv := &model.Invitation{
		ChannelID:   channelID,
		RecipientID: recipientID,
		InviterID:   actor.ID,
	}
	if err := uc.memberships.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RespondToInvitation is always the recipient acting on their own
// invitation; the (channel, actor) key makes responding to someone else's
// invitation structurally impossible.
func (uc *MembershipUsecase) RespondToInvitation(ctx context.Context, actor *user.User, channelID uuid.UUID, accept bool) error {
	if accept {
		_, err := uc.memberships.AcceptInvitation(ctx, channelID, actor.ID)
		return err
	}
	return uc.memberships.DeleteInvitation(ctx, channelID, actor.ID)
}

func (uc *MembershipUsecase) RetractInvitation(ctx context.Context, actor *user.User, channelID, recipientID uuid.UUID) error {
	inv, err := uc.memberships.GetInvitation(ctx, channelID, recipientID)
	if err != nil {
		return err
	}

	if inv.InviterID != actor.ID {
		// Not the inviter: managers may still clean up.
		if err := uc.requireManager(ctx, actor, channelID); err != nil {
			return apperrors.ErrNotInviter
		}
	}
	return uc.memberships.DeleteInvitation(ctx, channelID, recipientID)
}

func (uc *MembershipUsecase) PendingInvitations(ctx context.Context, actor *user.User) ([]channel.InvitationDTO, error) {
	invs, err := uc.memberships.ListInvitationsForUser(ctx, actor.ID)
	if err != nil {
		uc.logger.Error("invitation listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	dtos := make([]channel.InvitationDTO, 0, len(invs))
	for _, inv := range invs {
		dto := channel.InvitationDTO{
			ChannelID:   inv.ChannelID,
			RecipientID: inv.RecipientID,
			InviterID:   inv.InviterID,
			InvitedAt:   inv.CreatedAt,
		}
		if inv.Channel != nil {
			dto.ChannelName = inv.Channel.Name
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *MembershipUsecase) Members(ctx context.Context, actor *user.User, channelID uuid.UUID) ([]channel.MemberView, error) {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return nil, err
	}
	if !caps.CanRead {
		return nil, accessError(ch)
	}

	members, err := uc.memberships.ListMembers(ctx, channelID)
	if err != nil {
		uc.logger.Error("member listing failed", "err", err)
		return nil, apperrors.ErrStorage(err)
	}

	// The creator has no membership row; surface them first.
	views := make([]channel.MemberView, 0, len(members)+1)
	creatorView := channel.MemberView{
		UserID:    ch.CreatorID,
		Role:      model.RoleAdmin,
		JoinedAt:  ch.CreatedAt,
		IsCreator: true,
	}
	if creator, err := uc.users.GetUserByID(ctx, ch.CreatorID); err == nil {
		creatorView.Username = creator.Username
	}
	views = append(views, creatorView)

	for _, m := range members {
		view := channel.MemberView{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			view.Username = m.User.Username
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *MembershipUsecase) AssignRole(ctx context.Context, actor *user.User, channelID, userID uuid.UUID, role model.Role) error {
	if !role.Valid() {
		return apperrors.ErrInvalidRole
	}

	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if err := uc.requireManagerOn(ctx, actor, ch); err != nil {
		return err
	}
	if userID == ch.CreatorID {
		return apperrors.ErrCannotModifyCreator
	}
	return uc.memberships.AssignRole(ctx, channelID, userID, role)
}

// Remove deletes a membership. Managers remove anyone but the creator; a
// member may always remove themselves (leave). The creator guard is by id
// comparison and holds for every actor, site admins included.
func (uc *MembershipUsecase) Remove(ctx context.Context, actor *user.User, channelID, userID uuid.UUID) error {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if userID == ch.CreatorID {
		return apperrors.ErrCannotRemoveCreator
	}

	if actor.ID != userID {
		if err := uc.requireManagerOn(ctx, actor, ch); err != nil {
			return err
		}
	}
	return uc.memberships.RemoveMember(ctx, channelID, userID)
}

func (uc *MembershipUsecase) requireManager(ctx context.Context, actor *user.User, channelID uuid.UUID) error {
	ch, err := uc.channels.GetChannel(ctx, channelID)
	if err != nil {
		return err
	}
	return uc.requireManagerOn(ctx, actor, ch)
}

func (uc *MembershipUsecase) requireManagerOn(ctx context.Context, actor *user.User, ch *model.Channel) error {
	caps, err := uc.resolver.Capabilities(ctx, actor, ch)
	if err != nil {
		return err
	}
	if !caps.CanManageMembers {
		if !caps.CanRead {
			return accessError(ch)
		}
		return apperrors.ErrPermissionDenied
	}
	return nil
}
