package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Project is a portfolio entry, fully admin-managed.
type Project struct {
	bun.BaseModel `bun:"table:projects"`

	ID          int64     `bun:",pk,autoincrement" json:"id"`
	Title       string    `bun:"title" json:"title"`
	Description string    `bun:"description" json:"description"`
	Thumbnail   string    `bun:"thumbnail" json:"thumbnail"`
	GithubURL   string    `bun:"github_url" json:"github,omitempty"`
	DemoURL     string    `bun:"demo_url" json:"demo,omitempty"`
	Tags        []string  `bun:"tags,array" json:"tags"`
	Features    []string  `bun:"features,array" json:"features"`
	IsFeatured  bool      `bun:"is_featured" json:"is_featured"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}
