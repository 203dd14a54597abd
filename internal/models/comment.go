package models

import "time"

// Comment represents a comment on a blog post
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	BlogID    string    `json:"blogId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentUser is the commenter view embedded in comment responses
type CommentUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentWithUser is a comment together with its commenter details
type CommentWithUser struct {
	Comment
	User CommentUser `json:"user"`
}

// AddCommentRequest represents a comment creation request body
type AddCommentRequest struct {
	Content string `json:"content"`
}
