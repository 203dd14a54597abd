package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gamepulse/blog-service/internal/auth"
	authMiddleware "github.com/gamepulse/blog-service/internal/auth/middleware"
	"github.com/gamepulse/blog-service/internal/models"
)

// BlogService is the interface that wraps methods for blog and comment business logic.
type BlogService interface {
	// Method ListAll retrieves all blogs, newest first.
	ListAll(ctx context.Context) ([]models.BlogWithAuthor, error)
	// Method ListByAuthor retrieves all blogs of one author.
	//
	// Returns models.ErrNotFound when the author has no blogs.
	ListByAuthor(ctx context.Context, authorID string) ([]models.BlogWithAuthor, error)
	// Method ListByGame retrieves all blogs tagged with one game.
	ListByGame(ctx context.Context, game string) ([]models.BlogWithAuthor, error)
	// Method ListPending retrieves all unpublished blogs.
	ListPending(ctx context.Context) ([]models.BlogWithAuthor, error)
	// Method GetByGameAndID retrieves one blog with its comments; a blog
	// found under the wrong game yields models.ErrNotFound.
	GetByGameAndID(ctx context.Context, game, id string) (*models.BlogDetail, error)
	// Method Create creates a new blog; admin authors self-publish.
	Create(ctx context.Context, identity *auth.Claims, req *models.CreateBlogRequest) (*models.Blog, error)
	// Method Update performs a full field update and returns the updated blog.
	Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.BlogWithAuthor, error)
	// Method UpdateVisibility toggles the visible flag.
	UpdateVisibility(ctx context.Context, id string, visible bool) (*models.BlogWithAuthor, error)
	// Method Approve marks a blog as published and visible (idempotent).
	Approve(ctx context.Context, id string) (*models.BlogWithAuthor, error)
	// Method Delete removes a blog and all its comments.
	Delete(ctx context.Context, id string) error
	// Method AddComment adds a comment to a blog.
	AddComment(ctx context.Context, identity *auth.Claims, blogID, content string) (*models.CommentWithUser, error)
}

// BlogHandler handles blog and comment HTTP requests
type BlogHandler struct {
	BaseHandler
	blogService BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		BaseHandler: BaseHandler{Logger: logger},
		blogService: blogService,
	}
}

// RegisterRoutes registers all blog handler routes. The static routes
// (/pending, /postBlog, ...) are matched before the {game} wildcards by the
// router, preserving most-specific-first matching.
func (h *BlogHandler) RegisterRoutes(r chi.Router, requireSignedIn, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", h.ListAll)
		r.Get("/author/{authorId}", h.ListByAuthor)
		r.With(requireAdmin).Get("/pending", h.ListPending)
		r.With(requireSignedIn).Post("/postBlog", h.Create)
		r.With(requireAdmin).Put("/updateBlog/{id}", h.Update)
		r.With(requireAdmin).Patch("/updateVisibility/{id}", h.UpdateVisibility)
		r.With(requireAdmin).Delete("/deleteBlog/{id}", h.Delete)
		r.With(requireAdmin).Post("/{id}/approve", h.Approve)
		r.Get("/{game}", h.ListByGame)
		r.Get("/{game}/{id}", h.GetByGameAndID)
		r.With(requireSignedIn).Post("/{game}/{id}/comments", h.AddComment)
	})
}

// ListAll handles GET /blog
// @Summary List all blogs
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]any "All blogs with author details, newest first"
// @Failure 500 {object} map[string]any "Failed to fetch blogs"
// @Router /blog [get]
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to fetch blogs", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blogs":   blogs,
	})
}

// ListByAuthor handles GET /blog/author/{authorId}
// @Summary List blogs by author
// @Tags blog
// @Produce json
// @Param authorId path string true "Author ID"
// @Success 200 {object} map[string]any "Author's blogs, newest first"
// @Failure 404 {object} map[string]any "Author has no blogs"
// @Failure 500 {object} map[string]any "Failed to fetch author's blogs"
// @Router /blog/author/{authorId} [get]
func (h *BlogHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "authorId")

	blogs, err := h.blogService.ListByAuthor(r.Context(), authorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "No blogs found for this author")
			return
		}
		h.Logger.Error("failed to fetch author's blogs", zap.Error(err), zap.String("author_id", authorID))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch author's blogs")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blogs":   blogs,
	})
}

// ListPending handles GET /blog/pending
// @Summary List pending blogs
// @Description List all unpublished blogs awaiting approval (admin only)
// @Tags blog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Pending blogs"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 403 {object} map[string]any "Not an admin"
// @Failure 500 {object} map[string]any "Failed to fetch pending blogs"
// @Router /blog/pending [get]
func (h *BlogHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.ListPending(r.Context())
	if err != nil {
		h.Logger.Error("failed to fetch pending blogs", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch pending blogs")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blogs":   blogs,
	})
}

// ListByGame handles GET /blog/{game}
// @Summary List blogs by game tag
// @Tags blog
// @Produce json
// @Param game path string true "Game tag"
// @Success 200 {object} map[string]any "Blogs for the game, newest first"
// @Failure 500 {object} map[string]any "Failed to fetch blogs"
// @Router /blog/{game} [get]
func (h *BlogHandler) ListByGame(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")

	blogs, err := h.blogService.ListByGame(r.Context(), game)
	if err != nil {
		h.Logger.Error("failed to fetch blogs by game", zap.Error(err), zap.String("game", game))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blogs":   blogs,
	})
}

// GetByGameAndID handles GET /blog/{game}/{id}
// @Summary Get one blog
// @Description Get a blog by game tag and ID with author and comments. A valid ID under the wrong game tag is a 404.
// @Tags blog
// @Produce json
// @Param game path string true "Game tag"
// @Param id path string true "Blog ID"
// @Success 200 {object} map[string]any "The blog with author and comments"
// @Failure 404 {object} map[string]any "Blog not found or game mismatch"
// @Failure 500 {object} map[string]any "Failed to fetch blog"
// @Router /blog/{game}/{id} [get]
func (h *BlogHandler) GetByGameAndID(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	id := chi.URLParam(r, "id")

	blog, err := h.blogService.GetByGameAndID(r.Context(), game, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to fetch blog", zap.Error(err), zap.String("blog_id", id))
		h.RespondError(w, http.StatusInternalServerError, "Failed to fetch blog")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"blog":    blog,
	})
}

// Create handles POST /blog/postBlog
// @Summary Create a blog
// @Description Create a blog as the signed-in user. Admin authors self-publish; other blogs start pending.
// @Tags blog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateBlogRequest true "Blog fields"
// @Success 201 {object} map[string]any "The created blog"
// @Failure 400 {object} map[string]any "Missing required fields"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 500 {object} map[string]any "Failed to create blog"
// @Router /blog/postBlog [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authMiddleware.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Game == "" || req.Title == "" || req.Description == "" {
		h.RespondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	blog, err := h.blogService.Create(r.Context(), identity, &req)
	if err != nil {
		h.Logger.Error("failed to create blog", zap.Error(err), zap.String("author_id", identity.ID))
		h.RespondError(w, http.StatusInternalServerError, "Failed to create blog")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

// Update handles PUT /blog/updateBlog/{id}
// @Summary Update a blog
// @Description Full field update of a blog (admin only)
// @Tags blog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Blog ID"
// @Param request body models.UpdateBlogRequest true "Blog fields"
// @Success 200 {object} map[string]any "The updated blog"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 403 {object} map[string]any "Not an admin"
// @Failure 404 {object} map[string]any "Blog not found"
// @Failure 500 {object} map[string]any "Failed to update blog"
// @Router /blog/updateBlog/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.blogService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to update blog", zap.Error(err), zap.String("blog_id", id))
		h.RespondError(w, http.StatusInternalServerError, "Failed to update blog")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

// UpdateVisibility handles PATCH /blog/updateVisibility/{id}
// @Summary Update blog visibility
// @Tags blog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Blog ID"
// @Param request body models.UpdateVisibilityRequest true "Visibility flag"
// @Success 200 {object} map[string]any "The updated blog"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 403 {object} map[string]any "Not an admin"
// @Failure 404 {object} map[string]any "Blog not found"
// @Failure 500 {object} map[string]any "Failed to update blog visibility"
// @Router /blog/updateVisibility/{id} [patch]
func (h *BlogHandler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := h.blogService.UpdateVisibility(r.Context(), id, req.Visible)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to update blog visibility", zap.Error(err), zap.String("blog_id", id))
		h.RespondError(w, http.StatusInternalServerError, "Failed to update blog visibility")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Blog visibility updated successfully",
		"blog":    blog,
	})
}

// Approve handles POST /blog/{id}/approve
// @Summary Approve a blog
// @Description Mark a pending blog as published and visible (admin only). Approving twice is idempotent.
// @Tags blog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} map[string]any "The approved blog"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 403 {object} map[string]any "Not an admin"
// @Failure 404 {object} map[string]any "Blog not found"
// @Failure 500 {object} map[string]any "Failed to approve blog"
// @Router /blog/{id}/approve [post]
func (h *BlogHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.blogService.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to approve blog", zap.Error(err), zap.String("blog_id", id))
		h.RespondError(w, http.StatusInternalServerError, "Failed to approve blog")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Blog approved successfully",
		"blog":    blog,
	})
}

// Delete handles DELETE /blog/deleteBlog/{id}
// @Summary Delete a blog
// @Description Delete a blog and all its comments (admin only)
// @Tags blog
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} map[string]any "Blog and comments deleted"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 403 {object} map[string]any "Not an admin"
// @Failure 404 {object} map[string]any "Blog not found"
// @Failure 500 {object} map[string]any "Failed to delete blog"
// @Router /blog/deleteBlog/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to delete blog", zap.Error(err), zap.String("blog_id", id))
		h.RespondError(w, http.StatusInternalServerError, "Failed to delete blog")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Blog and associated comments deleted successfully",
	})
}

// AddComment handles POST /blog/{game}/{id}/comments
// @Summary Add a comment
// @Description Add a comment to a blog as the signed-in user
// @Tags blog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param game path string true "Game tag"
// @Param id path string true "Blog ID"
// @Param request body models.AddCommentRequest true "Comment content"
// @Success 201 {object} map[string]any "The created comment"
// @Failure 400 {object} map[string]any "Empty comment content"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Failure 404 {object} map[string]any "Blog not found"
// @Failure 500 {object} map[string]any "Failed to add comment"
// @Router /blog/{game}/{id}/comments [post]
func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := authMiddleware.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	blogID := chi.URLParam(r, "id")

	var req models.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		h.RespondError(w, http.StatusBadRequest, "Comment content cannot be empty")
		return
	}

	comment, err := h.blogService.AddComment(r.Context(), identity, blogID, req.Content)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		h.Logger.Error("failed to add comment", zap.Error(err), zap.String("blog_id", blogID))
		h.RespondError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Comment added successfully",
		"comment": comment,
	})
}
