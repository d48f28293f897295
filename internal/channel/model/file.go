package model

import (
	"time"

	"github.com/google/uuid"
)

// File is attachment metadata. The blob itself lives in the blob store
// under StoredName; deleting the owning message removes both.
type File struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	MessageID uuid.UUID `bun:",notnull,type:uuid"`
	Message   *Message  `bun:"rel:belongs-to,join:message_id=id"`

	OriginalName string `bun:",notnull"`
	StoredName   string `bun:",notnull"`
	MimeType     string `bun:",notnull"`
	FileSize     int64  `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
