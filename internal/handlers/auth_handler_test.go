package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gamepulse/blog-service/internal/models"
)

// mockAuthService is a mock implementation of AuthService
type mockAuthService struct {
	token string
	user  *models.User
	err   error
}

func (m *mockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (string, *models.User, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.token, m.user, nil
}

func (m *mockAuthService) Signin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.token, m.user, nil
}

func (m *mockAuthService) AdminLogin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.token, m.user, nil
}

// noopLimiter stands in for the signup rate limiter
func noopLimiter(next http.Handler) http.Handler {
	return next
}

func setupAuthRouter(t *testing.T, svc *mockAuthService) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	handler := NewAuthHandler(svc, zap.NewNop())
	handler.RegisterRoutes(r, noopLimiter)
	return r
}

func doJSONRequest(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec, decoded
}

func sampleAccount() *models.User {
	return &models.User{
		ID:           "user-1",
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleUser,
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name        string
		svc         *mockAuthService
		body        any
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			svc:         &mockAuthService{token: "some-token", user: sampleAccount()},
			body:        models.SignupRequest{Name: "Test User", Email: "test@example.com", Password: "secret123"},
			wantStatus:  http.StatusOK,
			wantMessage: "Signed up successfully!",
		},
		{
			name:        "missing email",
			svc:         &mockAuthService{},
			body:        models.SignupRequest{Name: "Test User", Password: "secret123"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
		{
			name:        "missing password",
			svc:         &mockAuthService{},
			body:        models.SignupRequest{Name: "Test User", Email: "test@example.com"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
		{
			name:        "malformed body",
			svc:         &mockAuthService{},
			body:        []byte(`{not json`),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "email already exists",
			svc:         &mockAuthService{err: models.ErrEmailExists},
			body:        models.SignupRequest{Name: "Test User", Email: "taken@example.com", Password: "secret123"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email already exists",
		},
		{
			name:        "internal error",
			svc:         &mockAuthService{err: assert.AnError},
			body:        models.SignupRequest{Name: "Test User", Email: "test@example.com", Password: "secret123"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Signup failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(t, tt.svc)

			rec, body := doJSONRequest(t, router, http.MethodPost, "/signup", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["success"])

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "some-token", body["token"])
				user, ok := body["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "user-1", user["id"])
				assert.Equal(t, "USER", user["role"])
				// The password hash never leaves the server
				_, leaked := user["password_hash"]
				assert.False(t, leaked)
			}
		})
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	tests := []struct {
		name        string
		svc         *mockAuthService
		body        any
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			svc:         &mockAuthService{token: "some-token", user: sampleAccount()},
			body:        models.SigninRequest{Email: "test@example.com", Password: "secret123"},
			wantStatus:  http.StatusOK,
			wantMessage: "Login successful",
		},
		{
			name:        "missing fields",
			svc:         &mockAuthService{},
			body:        models.SigninRequest{Email: "test@example.com"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email and password are required",
		},
		{
			name:        "invalid credentials",
			svc:         &mockAuthService{err: models.ErrInvalidCredentials},
			body:        models.SigninRequest{Email: "test@example.com", Password: "wrong"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password",
		},
		{
			name:        "internal error",
			svc:         &mockAuthService{err: assert.AnError},
			body:        models.SigninRequest{Email: "test@example.com", Password: "secret123"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Signin failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(t, tt.svc)

			rec, body := doJSONRequest(t, router, http.MethodPost, "/signin", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	admin := sampleAccount()
	admin.Role = models.RoleAdmin

	tests := []struct {
		name        string
		svc         *mockAuthService
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			svc:         &mockAuthService{token: "some-token", user: admin},
			wantStatus:  http.StatusOK,
			wantMessage: "Admin login successful",
		},
		{
			name:        "invalid credentials",
			svc:         &mockAuthService{err: models.ErrInvalidCredentials},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password",
		},
		{
			name:        "valid credentials but not admin",
			svc:         &mockAuthService{err: models.ErrAccessDenied},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Access denied. Only administrators can access this route.",
		},
		{
			name:        "internal error",
			svc:         &mockAuthService{err: assert.AnError},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Admin login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(t, tt.svc)

			rec, body := doJSONRequest(t, router, http.MethodPost, "/adminLogin",
				models.SigninRequest{Email: "test@example.com", Password: "secret123"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, body["message"])

			if tt.wantStatus == http.StatusOK {
				user, ok := body["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "ADMIN", user["role"])
			}
		})
	}
}

func TestAuthHandler_SigninAndAdminLoginShareCredentialsMessage(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable, and the
	// two login routes must agree on the rejection text
	router := setupAuthRouter(t, &mockAuthService{err: models.ErrInvalidCredentials})

	recSignin, bodySignin := doJSONRequest(t, router, http.MethodPost, "/signin",
		models.SigninRequest{Email: "nobody@example.com", Password: "secret123"})
	recAdmin, bodyAdmin := doJSONRequest(t, router, http.MethodPost, "/adminLogin",
		models.SigninRequest{Email: "test@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, recSignin.Code)
	assert.Equal(t, http.StatusUnauthorized, recAdmin.Code)
	assert.Equal(t, bodySignin["message"], bodyAdmin["message"])
}
