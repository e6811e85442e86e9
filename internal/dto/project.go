package dto

import "time"

// ProjectRequest is the admin payload for creating or updating a project.
type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Github      string   `json:"github"`
	Demo        string   `json:"demo"`
	Tags        []string `json:"tags"`
	Features    []string `json:"features"`
	IsFeatured  bool     `json:"is_featured"`
}

// ProjectResponse represents a portfolio entry as exposed via HTTP.
type ProjectResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Github      string    `json:"github,omitempty"`
	Demo        string    `json:"demo,omitempty"`
	Tags        []string  `json:"tags"`
	Features    []string  `json:"features"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
