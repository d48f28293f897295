package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

// Message is a chat message. The body is stored sealed: base64 ciphertext
// with hex nonce and tag, all three always present. Control-plane records
// (join requests, invitations) live in their own tables, never here.
type Message struct {
	ID        uuid.UUID `bun:",pk,type:uuid"`
	ChannelID uuid.UUID `bun:",notnull,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	Ciphertext string `bun:",notnull"`
	IV         string `bun:",notnull"`
	Tag        string `bun:",notnull"`

	HasAttachment bool    `bun:",notnull,default:false"`
	Files         []*File `bun:"rel:has-many,join:id=message_id"`

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	EditedAt  *time.Time `bun:",nullzero"`
}
