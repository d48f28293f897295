package channel

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

type ChannelRepository interface {
	CreateChannel(ctx context.Context, ch *model.Channel) error
	GetChannel(ctx context.Context, id uuid.UUID) (*model.Channel, error)
	UpdateChannel(ctx context.Context, ch *model.Channel) error
	CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)

	// ListVisibleChannels applies the visibility rule: admins see all,
	// public channels are listed for everyone, private discoverable ones
	// are listed but not accessible, creators and members see their own.
	ListVisibleChannels(ctx context.Context, u *user.User) ([]*model.Channel, error)

	// DeleteChannelCascade removes the channel and everything it owns
	// (memberships, join requests, invitations, messages, file rows) in
	// one transaction and returns the stored names of file blobs so the
	// caller can remove them from the blob store.
	DeleteChannelCascade(ctx context.Context, id uuid.UUID) ([]string, error)
}

type MembershipRepository interface {
	GetMembership(ctx context.Context, channelID, userID uuid.UUID) (*model.Membership, error)
	ListMembers(ctx context.Context, channelID uuid.UUID) ([]*model.Membership, error)
	ListMemberChannelIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AssignRole(ctx context.Context, channelID, userID uuid.UUID, role model.Role) error
	RemoveMember(ctx context.Context, channelID, userID uuid.UUID) error

	CreateJoinRequest(ctx context.Context, req *model.JoinRequest) error
	GetJoinRequest(ctx context.Context, id uuid.UUID) (*model.JoinRequest, error)
	ListJoinRequests(ctx context.Context, channelID uuid.UUID) ([]*model.JoinRequest, error)
	// AcceptJoinRequest atomically deletes the request and inserts the
	// membership. A concurrent accept loses the conditional delete and
	// gets ErrJoinRequestNotFound; exactly one membership row results.
	AcceptJoinRequest(ctx context.Context, requestID uuid.UUID) (*model.Membership, error)
	DeclineJoinRequest(ctx context.Context, requestID uuid.UUID) error

	CreateInvitation(ctx context.Context, inv *model.Invitation) error
	GetInvitation(ctx context.Context, channelID, recipientID uuid.UUID) (*model.Invitation, error)
	ListInvitationsForUser(ctx context.Context, recipientID uuid.UUID) ([]*model.Invitation, error)
	// AcceptInvitation mirrors AcceptJoinRequest: delete-then-insert in
	// one transaction, keyed by (channel, recipient).
	AcceptInvitation(ctx context.Context, channelID, recipientID uuid.UUID) (*model.Membership, error)
	DeleteInvitation(ctx context.Context, channelID, recipientID uuid.UUID) error
}

type MessageRepository interface {
	// CreateMessageWithFiles persists the message and its file rows in a
	// single transaction; a message claiming an attachment without file
	// rows (or the reverse) can never be observed.
	CreateMessageWithFiles(ctx context.Context, msg *model.Message, files []*model.File) error
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListMessages(ctx context.Context, channelID uuid.UUID, limit int, order Ordering) ([]*model.Message, error)

	// DeleteMessage removes the message and its file rows in one
	// transaction, returning stored blob names for cleanup.
	DeleteMessage(ctx context.Context, id uuid.UUID) ([]string, error)
	// DeleteOlderThan is the retention sweep. Returns blob names and the
	// number of messages removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]string, int64, error)
}
