package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Message is a contact-form submission. Append-only.
type Message struct {
	bun.BaseModel `bun:"table:messages"`

	ID        int64     `bun:",pk,autoincrement" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Email     string    `bun:"email" json:"email"`
	Subject   string    `bun:"subject" json:"subject,omitempty"`
	Body      string    `bun:"body" json:"message"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"created_at"`
}
