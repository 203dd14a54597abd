package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamepulse/blog-service/internal/models"
)

// commentRepository implements the comment repository over MySQL
type commentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create inserts a new comment into the database
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, content, blog_id, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.Content, comment.BlogID, comment.UserID, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// ListByBlog retrieves all comments of a blog with commenter details, newest first
func (r *commentRepository) ListByBlog(ctx context.Context, blogID string) ([]models.CommentWithUser, error) {
	query := `
		SELECT c.id, c.content, c.blog_id, c.user_id, c.created_at, u.id, u.name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = ?
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.CommentWithUser
	for rows.Next() {
		var comment models.CommentWithUser
		if err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.BlogID,
			&comment.UserID,
			&comment.CreatedAt,
			&comment.User.ID,
			&comment.User.Name,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return comments, nil
}
