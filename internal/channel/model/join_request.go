package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

// JoinRequest ("knock") is a non-member asking a private channel's managers
// to let them in. At most one live request per (channel, user).
type JoinRequest struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	ChannelID uuid.UUID `bun:",notnull,type:uuid,unique:jr_channel_user"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid,unique:jr_channel_user"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
