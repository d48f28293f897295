package channel

import (
	"context"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

// DirectoryUsecase is channel creation, listing and settings.
type DirectoryUsecase interface {
	Create(ctx context.Context, actor *user.User, cmd CreateChannelCommand) (*model.Channel, error)
	Get(ctx context.Context, actor *user.User, channelID uuid.UUID) (*ChannelView, error)
	Update(ctx context.Context, actor *user.User, cmd UpdateChannelCommand) error
	Delete(ctx context.Context, actor *user.User, channelID uuid.UUID) error
	ListVisible(ctx context.Context, actor *user.User) ([]ChannelView, error)
}

// MembershipUsecase is the membership state machine: NONE, KNOCKING,
// INVITED and MEMBER per (channel, user), with every transition checked
// against the resolver and executed atomically.
type MembershipUsecase interface {
	Knock(ctx context.Context, actor *user.User, channelID uuid.UUID) (*model.JoinRequest, error)
	RespondToKnock(ctx context.Context, actor *user.User, requestID uuid.UUID, accept bool) error
	PendingKnocks(ctx context.Context, actor *user.User, channelID uuid.UUID) ([]JoinRequestDTO, error)

	Invite(ctx context.Context, actor *user.User, channelID, recipientID uuid.UUID) (*model.Invitation, error)
	RespondToInvitation(ctx context.Context, actor *user.User, channelID uuid.UUID, accept bool) error
	RetractInvitation(ctx context.Context, actor *user.User, channelID, recipientID uuid.UUID) error
	PendingInvitations(ctx context.Context, actor *user.User) ([]InvitationDTO, error)

	Members(ctx context.Context, actor *user.User, channelID uuid.UUID) ([]MemberView, error)
	AssignRole(ctx context.Context, actor *user.User, channelID, userID uuid.UUID, role model.Role) error
	Remove(ctx context.Context, actor *user.User, channelID, userID uuid.UUID) error
}

// MessageUsecase is the append-only encrypted message log.
type MessageUsecase interface {
	Send(ctx context.Context, actor *user.User, cmd SendMessageCommand) (*MessageDTO, error)
	List(ctx context.Context, actor *user.User, q ListMessagesQuery) ([]MessageDTO, error)
	Delete(ctx context.Context, actor *user.User, messageID uuid.UUID) error
	// PurgeOlderThan removes messages older than the given number of
	// days across all channels. Site-admin only.
	PurgeOlderThan(ctx context.Context, actor *user.User, days int) (int64, error)
}
