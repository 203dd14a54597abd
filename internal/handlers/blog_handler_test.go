package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gamepulse/blog-service/internal/auth"
	authMiddleware "github.com/gamepulse/blog-service/internal/auth/middleware"
	"github.com/gamepulse/blog-service/internal/models"
)

// mockBlogService is a mock implementation of BlogService. The lastCall
// field records which method the router dispatched to.
type mockBlogService struct {
	blogs    []models.BlogWithAuthor
	detail   *models.BlogDetail
	blog     *models.Blog
	updated  *models.BlogWithAuthor
	comment  *models.CommentWithUser
	err      error
	lastCall string
}

func (m *mockBlogService) ListAll(ctx context.Context) ([]models.BlogWithAuthor, error) {
	m.lastCall = "ListAll"
	return m.blogs, m.err
}

func (m *mockBlogService) ListByAuthor(ctx context.Context, authorID string) ([]models.BlogWithAuthor, error) {
	m.lastCall = "ListByAuthor"
	return m.blogs, m.err
}

func (m *mockBlogService) ListByGame(ctx context.Context, game string) ([]models.BlogWithAuthor, error) {
	m.lastCall = "ListByGame:" + game
	return m.blogs, m.err
}

func (m *mockBlogService) ListPending(ctx context.Context) ([]models.BlogWithAuthor, error) {
	m.lastCall = "ListPending"
	return m.blogs, m.err
}

func (m *mockBlogService) GetByGameAndID(ctx context.Context, game, id string) (*models.BlogDetail, error) {
	m.lastCall = "GetByGameAndID:" + game + ":" + id
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func (m *mockBlogService) Create(ctx context.Context, identity *auth.Claims, req *models.CreateBlogRequest) (*models.Blog, error) {
	m.lastCall = "Create:" + identity.ID
	if m.err != nil {
		return nil, m.err
	}
	return m.blog, nil
}

func (m *mockBlogService) Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.BlogWithAuthor, error) {
	m.lastCall = "Update:" + id
	if m.err != nil {
		return nil, m.err
	}
	return m.updated, nil
}

func (m *mockBlogService) UpdateVisibility(ctx context.Context, id string, visible bool) (*models.BlogWithAuthor, error) {
	m.lastCall = "UpdateVisibility:" + id
	if m.err != nil {
		return nil, m.err
	}
	return m.updated, nil
}

func (m *mockBlogService) Approve(ctx context.Context, id string) (*models.BlogWithAuthor, error) {
	m.lastCall = "Approve:" + id
	if m.err != nil {
		return nil, m.err
	}
	return m.updated, nil
}

func (m *mockBlogService) Delete(ctx context.Context, id string) error {
	m.lastCall = "Delete:" + id
	return m.err
}

func (m *mockBlogService) AddComment(ctx context.Context, identity *auth.Claims, blogID, content string) (*models.CommentWithUser, error) {
	m.lastCall = "AddComment:" + blogID
	if m.err != nil {
		return nil, m.err
	}
	return m.comment, nil
}

func publishedBlog() *models.BlogWithAuthor {
	return &models.BlogWithAuthor{
		Blog: models.Blog{
			ID:        "blog-1",
			Game:      "hades",
			Title:     "Build guide",
			AuthorID:  "author-1",
			Published: true,
			Visible:   true,
		},
		Author: models.BlogAuthor{ID: "author-1", Name: "Author Name"},
	}
}

// setupBlogRouter mounts the blog routes behind real authorization gates
func setupBlogRouter(t *testing.T, svc *mockBlogService) (*chi.Mux, *auth.TokenGenerator) {
	t.Helper()
	tg := auth.NewTokenGenerator("test-secret", 0)

	r := chi.NewRouter()
	handler := NewBlogHandler(svc, zap.NewNop())
	handler.RegisterRoutes(r, authMiddleware.RequireSignedIn(tg), authMiddleware.RequireAdmin(tg))

	return r, tg
}

func bearerToken(t *testing.T, tg *auth.TokenGenerator, role models.Role) string {
	t.Helper()
	token, err := tg.Issue(&models.User{
		ID:    "user-" + string(role),
		Name:  "Test " + string(role),
		Email: string(role) + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func doBlogRequest(t *testing.T, router http.Handler, method, path, authHeader string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec.Code, decoded
}

func TestBlogHandler_PublicListing(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		svc      *mockBlogService
		wantCall string
	}{
		{
			name:     "list all",
			path:     "/blog",
			svc:      &mockBlogService{blogs: []models.BlogWithAuthor{*publishedBlog()}},
			wantCall: "ListAll",
		},
		{
			name:     "list by game",
			path:     "/blog/hades",
			svc:      &mockBlogService{blogs: []models.BlogWithAuthor{*publishedBlog()}},
			wantCall: "ListByGame:hades",
		},
		{
			name:     "list by author",
			path:     "/blog/author/author-1",
			svc:      &mockBlogService{blogs: []models.BlogWithAuthor{*publishedBlog()}},
			wantCall: "ListByAuthor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupBlogRouter(t, tt.svc)

			status, body := doBlogRequest(t, router, http.MethodGet, tt.path, "", nil)

			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, true, body["success"])
			assert.Equal(t, tt.wantCall, tt.svc.lastCall)

			blogs, ok := body["blogs"].([]any)
			require.True(t, ok)
			assert.Len(t, blogs, 1)
		})
	}
}

func TestBlogHandler_ListByAuthor_NoBlogs(t *testing.T) {
	svc := &mockBlogService{err: models.ErrNotFound}
	router, _ := setupBlogRouter(t, svc)

	status, body := doBlogRequest(t, router, http.MethodGet, "/blog/author/nobody", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No blogs found for this author", body["message"])
}

func TestBlogHandler_StaticRoutesBeatGameWildcard(t *testing.T) {
	// /blog/pending must dispatch to the pending listing, never to the
	// game listing with game == "pending"
	svc := &mockBlogService{}
	router, tg := setupBlogRouter(t, svc)

	status, _ := doBlogRequest(t, router, http.MethodGet, "/blog/pending", bearerToken(t, tg, models.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ListPending", svc.lastCall)
}

func TestBlogHandler_GetByGameAndID(t *testing.T) {
	detail := &models.BlogDetail{
		Blog:   publishedBlog().Blog,
		Author: publishedBlog().Author,
		Comments: []models.CommentWithUser{
			{
				Comment: models.Comment{ID: "comment-1", Content: "Nice!", BlogID: "blog-1", UserID: "user-2"},
				User:    models.CommentUser{ID: "user-2", Name: "Commenter"},
			},
		},
	}

	tests := []struct {
		name        string
		svc         *mockBlogService
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "success",
			svc:        &mockBlogService{detail: detail},
			wantStatus: http.StatusOK,
		},
		{
			name:        "not found or game mismatch",
			svc:         &mockBlogService{err: models.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Blog not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupBlogRouter(t, tt.svc)

			status, body := doBlogRequest(t, router, http.MethodGet, "/blog/hades/blog-1", "", nil)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, "GetByGameAndID:hades:blog-1", tt.svc.lastCall)

			if tt.wantStatus == http.StatusOK {
				blog, ok := body["blog"].(map[string]any)
				require.True(t, ok)
				comments, ok := blog["comments"].([]any)
				require.True(t, ok)
				assert.Len(t, comments, 1)
			} else {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}

func TestBlogHandler_Create(t *testing.T) {
	validReq := models.CreateBlogRequest{
		Game:        "hades",
		Title:       "Build guide",
		Description: "Full build guide",
		Summary:     "The best build",
		Image:       "build.png",
	}

	tests := []struct {
		name        string
		role        models.Role
		noToken     bool
		body        any
		svc         *mockBlogService
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "user creates blog",
			role:        models.RoleUser,
			body:        validReq,
			svc:         &mockBlogService{blog: &publishedBlog().Blog},
			wantStatus:  http.StatusCreated,
			wantMessage: "Blog created successfully",
		},
		{
			name:        "missing token",
			noToken:     true,
			body:        validReq,
			svc:         &mockBlogService{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header is missing",
		},
		{
			name:        "missing required fields",
			role:        models.RoleUser,
			body:        models.CreateBlogRequest{Game: "hades"},
			svc:         &mockBlogService{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tg := setupBlogRouter(t, tt.svc)

			authHeader := ""
			if !tt.noToken {
				authHeader = bearerToken(t, tg, tt.role)
			}

			status, body := doBlogRequest(t, router, http.MethodPost, "/blog/postBlog", authHeader, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])

			if tt.wantStatus == http.StatusCreated {
				// The author identity comes from the verified token
				assert.Equal(t, "Create:user-USER", tt.svc.lastCall)
			}
		})
	}
}

func TestBlogHandler_AdminRoutes_RoleEnforcement(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/blog/pending"},
		{http.MethodPut, "/blog/updateBlog/blog-1"},
		{http.MethodPatch, "/blog/updateVisibility/blog-1"},
		{http.MethodDelete, "/blog/deleteBlog/blog-1"},
		{http.MethodPost, "/blog/blog-1/approve"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			svc := &mockBlogService{updated: publishedBlog()}
			router, tg := setupBlogRouter(t, svc)

			// No token: 401
			status, _ := doBlogRequest(t, router, route.method, route.path, "", map[string]any{})
			assert.Equal(t, http.StatusUnauthorized, status)

			// USER token: 403, handler never runs
			status, body := doBlogRequest(t, router, route.method, route.path, bearerToken(t, tg, models.RoleUser), map[string]any{})
			assert.Equal(t, http.StatusForbidden, status)
			assert.Equal(t, "Access denied", body["message"])
			assert.Empty(t, svc.lastCall)

			// ADMIN token: the handler runs
			status, _ = doBlogRequest(t, router, route.method, route.path, bearerToken(t, tg, models.RoleAdmin), map[string]any{})
			assert.Equal(t, http.StatusOK, status)
			assert.NotEmpty(t, svc.lastCall)
		})
	}
}

func TestBlogHandler_Update(t *testing.T) {
	tests := []struct {
		name        string
		svc         *mockBlogService
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			svc:         &mockBlogService{updated: publishedBlog()},
			wantStatus:  http.StatusOK,
			wantMessage: "Blog updated successfully",
		},
		{
			name:        "not found",
			svc:         &mockBlogService{err: models.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Blog not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tg := setupBlogRouter(t, tt.svc)

			status, body := doBlogRequest(t, router, http.MethodPut, "/blog/updateBlog/blog-1",
				bearerToken(t, tg, models.RoleAdmin),
				models.UpdateBlogRequest{Game: "hades", Title: "New title"})

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, "Update:blog-1", tt.svc.lastCall)
		})
	}
}

func TestBlogHandler_Approve(t *testing.T) {
	approved := publishedBlog()
	svc := &mockBlogService{updated: approved}
	router, tg := setupBlogRouter(t, svc)

	status, body := doBlogRequest(t, router, http.MethodPost, "/blog/blog-1/approve",
		bearerToken(t, tg, models.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Blog approved successfully", body["message"])
	assert.Equal(t, "Approve:blog-1", svc.lastCall)
}

func TestBlogHandler_Delete(t *testing.T) {
	tests := []struct {
		name        string
		svc         *mockBlogService
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			svc:         &mockBlogService{},
			wantStatus:  http.StatusOK,
			wantMessage: "Blog and associated comments deleted successfully",
		},
		{
			name:        "not found",
			svc:         &mockBlogService{err: models.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Blog not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tg := setupBlogRouter(t, tt.svc)

			status, body := doBlogRequest(t, router, http.MethodDelete, "/blog/deleteBlog/blog-1",
				bearerToken(t, tg, models.RoleAdmin), nil)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, "Delete:blog-1", tt.svc.lastCall)
		})
	}
}

func TestBlogHandler_AddComment(t *testing.T) {
	comment := &models.CommentWithUser{
		Comment: models.Comment{ID: "comment-1", Content: "Great guide!", BlogID: "blog-1", UserID: "user-USER"},
		User:    models.CommentUser{ID: "user-USER", Name: "Test USER"},
	}

	tests := []struct {
		name        string
		noToken     bool
		body        any
		svc         *mockBlogService
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        models.AddCommentRequest{Content: "Great guide!"},
			svc:         &mockBlogService{comment: comment},
			wantStatus:  http.StatusCreated,
			wantMessage: "Comment added successfully",
		},
		{
			name:        "missing token",
			noToken:     true,
			body:        models.AddCommentRequest{Content: "Great guide!"},
			svc:         &mockBlogService{},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header is missing",
		},
		{
			name:        "empty content",
			body:        models.AddCommentRequest{Content: "   "},
			svc:         &mockBlogService{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Comment content cannot be empty",
		},
		{
			name:        "blog not found",
			body:        models.AddCommentRequest{Content: "Great guide!"},
			svc:         &mockBlogService{err: models.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Blog not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, tg := setupBlogRouter(t, tt.svc)

			authHeader := ""
			if !tt.noToken {
				authHeader = bearerToken(t, tg, models.RoleUser)
			}

			status, body := doBlogRequest(t, router, http.MethodPost, "/blog/hades/blog-1/comments", authHeader, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "AddComment:blog-1", tt.svc.lastCall)
			}
		})
	}
}
