package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/authz"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/mocks"
	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	usermocks "github.com/theflightrs/Speedchannel-Ultimate/internal/user/mocks"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

type membershipFixture struct {
	channels    *mocks.MockChannelRepository
	memberships *mocks.MockMembershipRepository
	users       *usermocks.MockUserRepository
	uc          *MembershipUsecase
}

func newMembershipFixture(ctrl *gomock.Controller) *membershipFixture {
	f := &membershipFixture{
		channels:    mocks.NewMockChannelRepository(ctrl),
		memberships: mocks.NewMockMembershipRepository(ctrl),
		users:       usermocks.NewMockUserRepository(ctrl),
	}
	f.uc = NewMembershipUsecase(f.channels, f.memberships, f.users, authz.NewResolver(f.memberships), testLogger())
	return f
}

func TestMembershipUsecase_Knock(t *testing.T) {
	ctx := context.Background()

	t.Run("public channel rejects knocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, false, false)
		actor := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)

		_, err := f.uc.Knock(ctx, actor, ch.ID)
		assert.ErrorIs(t, err, apperrors.ErrChannelNotPrivate)
	})

	t.Run("creator cannot knock on own channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)

		_, err := f.uc.Knock(ctx, creator, ch.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("existing member cannot knock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: actor.ID, Role: model.RoleMember}, nil)

		_, err := f.uc.Knock(ctx, actor, ch.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("knock creates a pending join request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, true)
		actor := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(nil, apperrors.ErrMembershipNotFound)
		f.memberships.EXPECT().CreateJoinRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *model.JoinRequest) error {
				req.ID = uuid.New()
				return nil
			})

		req, err := f.uc.Knock(ctx, actor, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, ch.ID, req.ChannelID)
		assert.Equal(t, actor.ID, req.UserID)
	})

	t.Run("repeat knock surfaces the duplicate error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(nil, apperrors.ErrMembershipNotFound)
		f.memberships.EXPECT().CreateJoinRequest(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrDuplicateJoinRequest)

		_, err := f.uc.Knock(ctx, actor, ch.ID)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateJoinRequest)
	})
}

func TestMembershipUsecase_RespondToKnock(t *testing.T) {
	ctx := context.Background()

	t.Run("creator accepts a knock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		knocker := testUser("bob")
		req := &model.JoinRequest{ID: uuid.New(), ChannelID: ch.ID, UserID: knocker.ID}

		f.memberships.EXPECT().GetJoinRequest(gomock.Any(), req.ID).Return(req, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().AcceptJoinRequest(gomock.Any(), req.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: knocker.ID, Role: model.RoleMember}, nil)

		err := f.uc.RespondToKnock(ctx, creator, req.ID, true)
		assert.NoError(t, err)
	})

	t.Run("decline removes the request without membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		req := &model.JoinRequest{ID: uuid.New(), ChannelID: ch.ID, UserID: uuid.New()}

		f.memberships.EXPECT().GetJoinRequest(gomock.Any(), req.ID).Return(req, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().DeclineJoinRequest(gomock.Any(), req.ID).Return(nil)

		err := f.uc.RespondToKnock(ctx, creator, req.ID, false)
		assert.NoError(t, err)
	})

	t.Run("ordinary member cannot respond", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("carol")
		req := &model.JoinRequest{ID: uuid.New(), ChannelID: ch.ID, UserID: uuid.New()}

		f.memberships.EXPECT().GetJoinRequest(gomock.Any(), req.ID).Return(req, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: actor.ID, Role: model.RoleMember}, nil)

		err := f.uc.RespondToKnock(ctx, actor, req.ID, true)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("losing a racing accept reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		req := &model.JoinRequest{ID: uuid.New(), ChannelID: ch.ID, UserID: uuid.New()}

		f.memberships.EXPECT().GetJoinRequest(gomock.Any(), req.ID).Return(req, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().AcceptJoinRequest(gomock.Any(), req.ID).
			Return(nil, apperrors.ErrJoinRequestNotFound)

		err := f.uc.RespondToKnock(ctx, creator, req.ID, true)
		assert.ErrorIs(t, err, apperrors.ErrJoinRequestNotFound)
	})
}

func TestMembershipUsecase_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("moderator invites an active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		moderator := testUser("mod")
		recipient := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, moderator.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: moderator.ID, Role: model.RoleModerator}, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), recipient.ID).Return(recipient, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, recipient.ID).
			Return(nil, apperrors.ErrMembershipNotFound)
		f.memberships.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invitation) error {
				inv.ID = uuid.New()
				return nil
			})

		inv, err := f.uc.Invite(ctx, moderator, ch.ID, recipient.ID)
		require.NoError(t, err)
		assert.Equal(t, recipient.ID, inv.RecipientID)
		assert.Equal(t, moderator.ID, inv.InviterID)
	})

	t.Run("plain member cannot invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("carol")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: actor.ID, Role: model.RoleMember}, nil)

		_, err := f.uc.Invite(ctx, actor, ch.ID, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("deactivated recipient looks like no user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		recipient := testUser("bob")
		recipient.IsActive = false

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), recipient.ID).Return(recipient, nil)

		_, err := f.uc.Invite(ctx, creator, ch.ID, recipient.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("existing member cannot be invited again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		recipient := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), recipient.ID).Return(recipient, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, recipient.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: recipient.ID, Role: model.RoleMember}, nil)

		_, err := f.uc.Invite(ctx, creator, ch.ID, recipient.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})
}

func TestMembershipUsecase_RespondToInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("accept becomes membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		channelID := uuid.New()
		actor := testUser("bob")

		f.memberships.EXPECT().AcceptInvitation(gomock.Any(), channelID, actor.ID).
			Return(&model.Membership{ChannelID: channelID, UserID: actor.ID, Role: model.RoleMember}, nil)

		err := f.uc.RespondToInvitation(ctx, actor, channelID, true)
		assert.NoError(t, err)
	})

	t.Run("decline just deletes the invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		channelID := uuid.New()
		actor := testUser("bob")

		f.memberships.EXPECT().DeleteInvitation(gomock.Any(), channelID, actor.ID).Return(nil)

		err := f.uc.RespondToInvitation(ctx, actor, channelID, false)
		assert.NoError(t, err)
	})

	t.Run("accepting without an invitation reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		channelID := uuid.New()
		actor := testUser("bob")

		f.memberships.EXPECT().AcceptInvitation(gomock.Any(), channelID, actor.ID).
			Return(nil, apperrors.ErrInvitationNotFound)

		err := f.uc.RespondToInvitation(ctx, actor, channelID, true)
		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)
	})
}

func TestMembershipUsecase_RetractInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("inviter retracts their own invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		inviter := testUser("mod")
		channelID := uuid.New()
		recipientID := uuid.New()
		inv := &model.Invitation{ChannelID: channelID, RecipientID: recipientID, InviterID: inviter.ID}

		f.memberships.EXPECT().GetInvitation(gomock.Any(), channelID, recipientID).Return(inv, nil)
		f.memberships.EXPECT().DeleteInvitation(gomock.Any(), channelID, recipientID).Return(nil)

		err := f.uc.RetractInvitation(ctx, inviter, channelID, recipientID)
		assert.NoError(t, err)
	})

	t.Run("unrelated member cannot retract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("carol")
		recipientID := uuid.New()
		inv := &model.Invitation{ChannelID: ch.ID, RecipientID: recipientID, InviterID: uuid.New()}

		f.memberships.EXPECT().GetInvitation(gomock.Any(), ch.ID, recipientID).Return(inv, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: actor.ID, Role: model.RoleMember}, nil)

		err := f.uc.RetractInvitation(ctx, actor, ch.ID, recipientID)
		assert.ErrorIs(t, err, apperrors.ErrNotInviter)
	})

	t.Run("creator may clean up anyone's invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		recipientID := uuid.New()
		inv := &model.Invitation{ChannelID: ch.ID, RecipientID: recipientID, InviterID: uuid.New()}

		f.memberships.EXPECT().GetInvitation(gomock.Any(), ch.ID, recipientID).Return(inv, nil)
		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().DeleteInvitation(gomock.Any(), ch.ID, recipientID).Return(nil)

		err := f.uc.RetractInvitation(ctx, creator, ch.ID, recipientID)
		assert.NoError(t, err)
	})
}

func TestMembershipUsecase_Members(t *testing.T) {
	ctx := context.Background()

	t.Run("creator is listed first without a membership row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		member := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, member.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: member.ID, Role: model.RoleMember}, nil)
		f.memberships.EXPECT().ListMembers(gomock.Any(), ch.ID).Return([]*model.Membership{
			{ChannelID: ch.ID, UserID: member.ID, Role: model.RoleMember, User: member, JoinedAt: time.Now()},
		}, nil)
		f.users.EXPECT().GetUserByID(gomock.Any(), creator.ID).Return(creator, nil)

		views, err := f.uc.Members(ctx, member, ch.ID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[0].IsCreator)
		assert.Equal(t, creator.ID, views[0].UserID)
		assert.Equal(t, model.RoleAdmin, views[0].Role)
		assert.Equal(t, member.ID, views[1].UserID)
		assert.Equal(t, "bob", views[1].Username)
	})

	t.Run("hidden private channel denies as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		outsider := testUser("eve")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, outsider.ID).
			Return(nil, apperrors.ErrMembershipNotFound)

		_, err := f.uc.Members(ctx, outsider, ch.ID)
		assert.ErrorIs(t, err, apperrors.ErrChannelNotFound)
	})
}

func TestMembershipUsecase_AssignRole(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		err := f.uc.AssignRole(ctx, testUser("alice"), uuid.New(), uuid.New(), model.Role("owner"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("creator role is untouchable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		admin := testAdmin("root")
		creator := testUser("alice")
		ch := testChannel(creator, true, false)

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)

		err := f.uc.AssignRole(ctx, admin, ch.ID, creator.ID, model.RoleModerator)
		assert.ErrorIs(t, err, apperrors.ErrCannotModifyCreator)
	})

	t.Run("creator promotes a member to moderator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		memberID := uuid.New()

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().AssignRole(gomock.Any(), ch.ID, memberID, model.RoleModerator).Return(nil)

		err := f.uc.AssignRole(ctx, creator, ch.ID, memberID, model.RoleModerator)
		assert.NoError(t, err)
	})
}

func TestMembershipUsecase_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("creator cannot be removed even by a site admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		admin := testAdmin("root")
		creator := testUser("alice")
		ch := testChannel(creator, true, false)

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)

		err := f.uc.Remove(ctx, admin, ch.ID, creator.ID)
		assert.ErrorIs(t, err, apperrors.ErrCannotRemoveCreator)
	})

	t.Run("member leaves on their own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		member := testUser("bob")

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().RemoveMember(gomock.Any(), ch.ID, member.ID).Return(nil)

		err := f.uc.Remove(ctx, member, ch.ID, member.ID)
		assert.NoError(t, err)
	})

	t.Run("plain member cannot remove others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		actor := testUser("carol")
		targetID := uuid.New()

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, actor.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: actor.ID, Role: model.RoleMember}, nil)

		err := f.uc.Remove(ctx, actor, ch.ID, targetID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("moderator removes a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newMembershipFixture(ctrl)

		creator := testUser("alice")
		ch := testChannel(creator, true, false)
		moderator := testUser("mod")
		targetID := uuid.New()

		f.channels.EXPECT().GetChannel(gomock.Any(), ch.ID).Return(ch, nil)
		f.memberships.EXPECT().GetMembership(gomock.Any(), ch.ID, moderator.ID).
			Return(&model.Membership{ChannelID: ch.ID, UserID: moderator.ID, Role: model.RoleModerator}, nil)
		f.memberships.EXPECT().RemoveMember(gomock.Any(), ch.ID, targetID).Return(nil)

		err := f.uc.Remove(ctx, moderator, ch.ID, targetID)
		assert.NoError(t, err)
	})
}
