package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	// Username = unique handle used for login and identity
	Username string `bun:",unique,notnull"`

	// Opaque credential; hashing and verification live in the auth
	// collaborator, never here.
	PasswordHash string `bun:",notnull"`

	IsAdmin  bool `bun:",notnull,default:false"`
	IsActive bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
