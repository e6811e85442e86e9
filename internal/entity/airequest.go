package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// AIRequest logs one proposal-generation call, including the raw completion.
type AIRequest struct {
	bun.BaseModel `bun:"table:ai_requests"`

	ID                int64     `bun:",pk,autoincrement" json:"id"`
	ProjectName       string    `bun:"project_name" json:"project_name"`
	Description       string    `bun:"description" json:"description"`
	Budget            string    `bun:"budget" json:"budget"`
	UserEmail         string    `bun:"user_email" json:"user_email"`
	GeneratedProposal string    `bun:"generated_proposal" json:"generated_proposal"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}
