package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gamepulse/blog-service/internal/auth"
	"github.com/gamepulse/blog-service/internal/models"
)

// BlogRepository is the interface that wraps methods for Blog table data access
type BlogRepository interface {
	// Method Create inserts a new blog into the database.
	Create(ctx context.Context, blog *models.Blog) error
	// Method ListAll retrieves all blogs with author details, newest first.
	ListAll(ctx context.Context) ([]models.BlogWithAuthor, error)
	// Method ListByAuthor retrieves all blogs of one author, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]models.BlogWithAuthor, error)
	// Method ListByGame retrieves all blogs tagged with one game, newest first.
	ListByGame(ctx context.Context, game string) ([]models.BlogWithAuthor, error)
	// Method ListPending retrieves all unpublished blogs, newest first.
	ListPending(ctx context.Context) ([]models.BlogWithAuthor, error)
	// Method GetByID retrieves a single blog with author details.
	//
	// Returns models.ErrNotFound when no blog has that ID.
	GetByID(ctx context.Context, id string) (*models.BlogWithAuthor, error)
	// Method Update performs a full field update of a blog.
	Update(ctx context.Context, id string, req *models.UpdateBlogRequest) error
	// Method SetVisibility updates only the visible flag of a blog.
	SetVisibility(ctx context.Context, id string, visible bool) error
	// Method Approve marks a blog as published and visible (idempotent).
	Approve(ctx context.Context, id string) error
	// Method Delete removes a blog and its comments inside one transaction.
	//
	// Returns models.ErrNotFound when no blog has that ID.
	Delete(ctx context.Context, id string) error
}

// CommentRepository is the interface that wraps methods for Comment table data access
type CommentRepository interface {
	// Method Create inserts a new comment into the database.
	Create(ctx context.Context, comment *models.Comment) error
	// Method ListByBlog retrieves all comments of a blog with commenter
	// details, newest first.
	ListByBlog(ctx context.Context, blogID string) ([]models.CommentWithUser, error)
}

// blogService implements the blog and comment business logic
type blogService struct {
	blogRepo    BlogRepository
	commentRepo CommentRepository
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo BlogRepository, commentRepo CommentRepository) *blogService {
	return &blogService{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
	}
}

// ListAll retrieves all blogs, newest first
func (s *blogService) ListAll(ctx context.Context) ([]models.BlogWithAuthor, error) {
	return s.blogRepo.ListAll(ctx)
}

// ListByAuthor retrieves all blogs of one author.
// Returns models.ErrNotFound when the author has no blogs.
func (s *blogService) ListByAuthor(ctx context.Context, authorID string) ([]models.BlogWithAuthor, error) {
	blogs, err := s.blogRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, models.ErrNotFound
	}
	return blogs, nil
}

// ListByGame retrieves all blogs tagged with one game
func (s *blogService) ListByGame(ctx context.Context, game string) ([]models.BlogWithAuthor, error) {
	return s.blogRepo.ListByGame(ctx, game)
}

// ListPending retrieves all unpublished blogs
func (s *blogService) ListPending(ctx context.Context) ([]models.BlogWithAuthor, error) {
	return s.blogRepo.ListPending(ctx)
}

// GetByGameAndID retrieves one blog with its comments. The game segment is
// a validation predicate, not just a filter: a blog found under the wrong
// game yields models.ErrNotFound.
func (s *blogService) GetByGameAndID(ctx context.Context, game, id string) (*models.BlogDetail, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if blog.Game != game {
		return nil, models.ErrNotFound
	}

	comments, err := s.commentRepo.ListByBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.BlogDetail{
		Blog:     blog.Blog,
		Author:   blog.Author,
		Comments: comments,
	}, nil
}

// Create creates a new blog. Admin authors self-publish; everyone else's
// blog starts unpublished and invisible, pending admin approval.
func (s *blogService) Create(ctx context.Context, identity *auth.Claims, req *models.CreateBlogRequest) (*models.Blog, error) {
	isAdmin := identity.Role == models.RoleAdmin
	now := time.Now()

	blog := &models.Blog{
		ID:          uuid.New().String(),
		Game:        req.Game,
		Title:       req.Title,
		Description: req.Description,
		Summary:     req.Summary,
		Image:       req.Image,
		AuthorID:    identity.ID,
		Published:   isAdmin,
		Visible:     isAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Update performs a full field update and returns the updated blog.
// Returns models.ErrNotFound when no blog has that ID.
func (s *blogService) Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.BlogWithAuthor, error) {
	if err := s.blogRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	// An update of a missing row affects nothing; the follow-up read is
	// what reports not-found
	return s.blogRepo.GetByID(ctx, id)
}

// UpdateVisibility toggles the visible flag and returns the updated blog.
// Returns models.ErrNotFound when no blog has that ID.
func (s *blogService) UpdateVisibility(ctx context.Context, id string, visible bool) (*models.BlogWithAuthor, error) {
	if err := s.blogRepo.SetVisibility(ctx, id, visible); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, id)
}

// Approve marks a blog as published and visible and returns it. Approving
// an already approved blog succeeds with the same result.
// Returns models.ErrNotFound when no blog has that ID.
func (s *blogService) Approve(ctx context.Context, id string) (*models.BlogWithAuthor, error) {
	if err := s.blogRepo.Approve(ctx, id); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, id)
}

// Delete removes a blog and all its comments.
// Returns models.ErrNotFound when no blog has that ID.
func (s *blogService) Delete(ctx context.Context, id string) error {
	return s.blogRepo.Delete(ctx, id)
}

// AddComment adds a comment to a blog.
// Returns models.ErrNotFound when no blog has that ID.
func (s *blogService) AddComment(ctx context.Context, identity *auth.Claims, blogID, content string) (*models.CommentWithUser, error) {
	// The original surfaced a missing blog as a foreign key failure;
	// checking first keeps it in the not-found bucket
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		BlogID:    blogID,
		UserID:    identity.ID,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &models.CommentWithUser{
		Comment: *comment,
		User: models.CommentUser{
			ID:   identity.ID,
			Name: identity.Name,
		},
	}, nil
}
