package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Membership is the durable (channel, user) relation. Absence of a row
// means "not a member"; the channel creator never has a row.
type Membership struct {
	bun.BaseModel `bun:"table:channel_users,alias:cu"`

	ChannelID uuid.UUID `bun:",pk,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role Role `bun:",notnull,default:'member'"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
