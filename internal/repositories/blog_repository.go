package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamepulse/blog-service/internal/models"
)

// blogRepository implements the blog repository over MySQL
type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) *blogRepository {
	return &blogRepository{
		db: db,
	}
}

// blogSelect is the shared column list for blog queries joined with authors
const blogSelect = `
	SELECT b.id, b.game, b.title, b.description, b.summary, b.image,
	       b.author_id, b.published, b.visible, b.created_at, b.updated_at,
	       u.id, u.name, u.email
	FROM blogs b
	JOIN users u ON u.id = b.author_id
`

// Create inserts a new blog into the database
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (id, game, title, description, summary, image, author_id, published, visible, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		blog.ID,
		blog.Game,
		blog.Title,
		blog.Description,
		blog.Summary,
		blog.Image,
		blog.AuthorID,
		blog.Published,
		blog.Visible,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// ListAll retrieves all blogs with author details, newest first
func (r *blogRepository) ListAll(ctx context.Context) ([]models.BlogWithAuthor, error) {
	query := blogSelect + ` ORDER BY b.created_at DESC`

	return r.queryBlogs(ctx, query)
}

// ListByAuthor retrieves all blogs of one author, newest first
func (r *blogRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.BlogWithAuthor, error) {
	query := blogSelect + ` WHERE b.author_id = ? ORDER BY b.created_at DESC`

	return r.queryBlogs(ctx, query, authorID)
}

// ListByGame retrieves all blogs tagged with one game, newest first
func (r *blogRepository) ListByGame(ctx context.Context, game string) ([]models.BlogWithAuthor, error) {
	query := blogSelect + ` WHERE b.game = ? ORDER BY b.created_at DESC`

	return r.queryBlogs(ctx, query, game)
}

// ListPending retrieves all unpublished blogs, newest first
func (r *blogRepository) ListPending(ctx context.Context) ([]models.BlogWithAuthor, error) {
	query := blogSelect + ` WHERE b.published = FALSE ORDER BY b.created_at DESC`

	return r.queryBlogs(ctx, query)
}

// GetByID retrieves a single blog with author details.
// Returns models.ErrNotFound when no blog has that ID.
func (r *blogRepository) GetByID(ctx context.Context, id string) (*models.BlogWithAuthor, error) {
	query := blogSelect + ` WHERE b.id = ?`

	blog := &models.BlogWithAuthor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Game,
		&blog.Title,
		&blog.Description,
		&blog.Summary,
		&blog.Image,
		&blog.AuthorID,
		&blog.Published,
		&blog.Visible,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&blog.Author.ID,
		&blog.Author.Name,
		&blog.Author.Email,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

// Update performs a full field update of a blog.
// A nil published pointer leaves the published flag unchanged.
func (r *blogRepository) Update(ctx context.Context, id string, req *models.UpdateBlogRequest) error {
	query := `
		UPDATE blogs
		SET game = ?, title = ?, description = ?, summary = ?, image = ?,
		    published = COALESCE(?, published), updated_at = NOW()
		WHERE id = ?
	`

	var published sql.NullBool
	if req.Published != nil {
		published = sql.NullBool{Bool: *req.Published, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query, req.Game, req.Title, req.Description, req.Summary, req.Image, published, id)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	return nil
}

// SetVisibility updates only the visible flag of a blog
func (r *blogRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	query := `UPDATE blogs SET visible = ?, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, visible, id)
	if err != nil {
		return fmt.Errorf("failed to update blog visibility: %w", err)
	}

	return nil
}

// Approve marks a blog as published and visible. The operation is
// idempotent: approving an already approved blog is a no-op.
func (r *blogRepository) Approve(ctx context.Context, id string) error {
	query := `UPDATE blogs SET published = TRUE, visible = TRUE, updated_at = NOW() WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to approve blog: %w", err)
	}

	return nil
}

// Delete removes a blog and its comments inside one transaction. Comments
// go first so the blog never outlives a partial delete; a crash between the
// two statements rolls both back.
// Returns models.ErrNotFound when no blog has that ID.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE blog_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete blog comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// queryBlogs runs a blogSelect-based query and scans the joined rows
func (r *blogRepository) queryBlogs(ctx context.Context, query string, args ...any) ([]models.BlogWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.BlogWithAuthor
	for rows.Next() {
		var blog models.BlogWithAuthor
		if err := rows.Scan(
			&blog.ID,
			&blog.Game,
			&blog.Title,
			&blog.Description,
			&blog.Summary,
			&blog.Image,
			&blog.AuthorID,
			&blog.Published,
			&blog.Visible,
			&blog.CreatedAt,
			&blog.UpdatedAt,
			&blog.Author.ID,
			&blog.Author.Name,
			&blog.Author.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return blogs, nil
}
