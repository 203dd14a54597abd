package models

import "time"

// Blog represents a blog post
type Blog struct {
	ID          string    `json:"id"`
	Game        string    `json:"game"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	Image       string    `json:"image"`
	AuthorID    string    `json:"authorId"`
	Published   bool      `json:"published"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlogAuthor is the author view embedded in blog responses
type BlogAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// BlogWithAuthor is a blog together with its author details
type BlogWithAuthor struct {
	Blog
	Author BlogAuthor `json:"author"`
}

// BlogDetail is a single blog with its author and comments
type BlogDetail struct {
	Blog
	Author   BlogAuthor        `json:"author"`
	Comments []CommentWithUser `json:"comments"`
}

// CreateBlogRequest represents a blog creation request body
type CreateBlogRequest struct {
	Game        string `json:"game"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Image       string `json:"image"`
}

// UpdateBlogRequest represents a full blog update request body
type UpdateBlogRequest struct {
	Game        string `json:"game"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Image       string `json:"image"`
	Published   *bool  `json:"published"`
}

// UpdateVisibilityRequest represents a visibility toggle request body
type UpdateVisibilityRequest struct {
	Visible bool `json:"visible"`
}
