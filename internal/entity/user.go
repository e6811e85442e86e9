package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an admin credential record.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64     `bun:",pk,autoincrement" json:"id"`
	Username     string    `bun:"username,unique" json:"username"`
	PasswordHash string    `bun:"password_hash" json:"-"`
	Role         string    `bun:"role" json:"role"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"created_at"`
}
