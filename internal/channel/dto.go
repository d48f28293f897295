package channel

import (
	"time"

	"github.com/google/uuid"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/channel/model"
)

// NOTE: commands travel from handler to usecase, DTOs travel back.

type Ordering string

const (
	// NewestFirst suits incremental history views.
	NewestFirst Ordering = "newest_first"
	// OldestFirst suits full-transcript views.
	OldestFirst Ordering = "oldest_first"
)

// Input commands
type CreateChannelCommand struct {
	Name           string
	IsPrivate      bool
	IsDiscoverable bool
}

type UpdateChannelCommand struct {
	ChannelID      uuid.UUID
	Name           string
	IsPrivate      bool
	IsDiscoverable bool
}

type AttachmentUpload struct {
	Name     string
	MimeType string
	Data     []byte
}

type SendMessageCommand struct {
	ChannelID   uuid.UUID
	Content     string
	Attachments []AttachmentUpload
}

type ListMessagesQuery struct {
	ChannelID uuid.UUID
	Limit     int
	Order     Ordering
}

// Output DTOs
type ChannelView struct {
	Channel   *model.Channel
	IsCreator bool
	IsMember  bool
	// HasAccess is distinct from visibility: a discoverable private
	// channel is listed but not accessible until membership is granted.
	HasAccess bool
}

type MemberView struct {
	UserID    uuid.UUID
	Username  string
	Role      model.Role
	JoinedAt  time.Time
	IsCreator bool
}

type FileDTO struct {
	ID       uuid.UUID
	Name     string
	MimeType string
	Size     int64
}

type MessageDTO struct {
	ID         uuid.UUID
	ChannelID  uuid.UUID
	SenderID   uuid.UUID
	SenderName string
	// Content is the decrypted body, or the unreadable-message
	// placeholder when authentication of the stored envelope failed.
	Content       string
	Unreadable    bool
	HasAttachment bool
	Files         []FileDTO
	CreatedAt     time.Time
}

type JoinRequestDTO struct {
	ID          uuid.UUID
	ChannelID   uuid.UUID
	UserID      uuid.UUID
	Username    string
	RequestedAt time.Time
}

type InvitationDTO struct {
	ChannelID   uuid.UUID
	ChannelName string
	RecipientID uuid.UUID
	InviterID   uuid.UUID
	InvitedAt   time.Time
}
