package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

// Invitation is a directed offer to join a channel. Keyed by
// (channel, recipient): at most one live invitation per pair; the row id
// is an internal detail only.
type Invitation struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	ChannelID uuid.UUID `bun:",notnull,type:uuid,unique:inv_channel_recipient"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	RecipientID uuid.UUID  `bun:",notnull,type:uuid,unique:inv_channel_recipient"`
	Recipient   *user.User `bun:"rel:belongs-to,join:recipient_id=id"`

	InviterID uuid.UUID  `bun:",notnull,type:uuid"`
	Inviter   *user.User `bun:"rel:belongs-to,join:inviter_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
