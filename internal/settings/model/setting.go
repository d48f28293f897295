package model

import "time"

// Setting is one runtime setting row. Settings live in the database, not
// in the config file: changing one is an UPDATE, never a file rewrite,
// and takes effect without a restart.
type Setting struct {
	Key       string    `bun:",pk"`
	Value     string    `bun:",notnull"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
