package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/theflightrs/Speedchannel-Ultimate/internal/user/model"
)

type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	// Basic info
	Name string `bun:",notnull"`

	// Private channels require membership to read or write. Discoverable
	// is meaningful only when private: the channel shows up in listings
	// but stays inaccessible until membership is granted.
	IsPrivate      bool `bun:",notnull,default:false"`
	IsDiscoverable bool `bun:",notnull,default:false"`

	// Ownership & metadata. CreatorID is immutable after creation; the
	// creator holds full capabilities without a membership row.
	CreatorID uuid.UUID  `bun:",notnull,type:uuid"`
	Creator   *user.User `bun:"rel:belongs-to,join:creator_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
