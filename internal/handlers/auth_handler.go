package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gamepulse/blog-service/internal/models"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Signup creates a new user with role USER and returns a session
	// token together with the created user.
	//
	// Returns models.ErrEmailExists when the email is already taken.
	Signup(ctx context.Context, req *models.SignupRequest) (string, *models.User, error)
	// Method Signin authenticates a user and returns a session token
	// together with the user.
	//
	// Returns models.ErrInvalidCredentials for unknown email or wrong
	// password alike.
	Signin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error)
	// Method AdminLogin runs the signin flow and additionally requires the
	// ADMIN role.
	//
	// Returns models.ErrAccessDenied for valid non-admin credentials.
	AdminLogin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes.
// signupLimiter is the per-IP rate limit applied to signup only.
func (h *AuthHandler) RegisterRoutes(r chi.Router, signupLimiter func(http.Handler) http.Handler) {
	r.With(signupLimiter).Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
	r.Post("/adminLogin", h.AdminLogin)
}

// Signup handles POST /signup
// @Summary Register a new user
// @Description Create a user account with role USER and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 200 {object} map[string]any "Token and public user view"
// @Failure 400 {object} map[string]any "Missing fields or email already exists"
// @Failure 429 {object} map[string]any "Too many signup attempts"
// @Failure 500 {object} map[string]any "Signup failed"
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailExists) {
			h.RespondError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.Logger.Error("signup failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Signed up successfully!",
		"token":   token,
		"user":    user.Public(),
	})
}

// Signin handles POST /signin
// @Summary Sign in
// @Description Authenticate with email and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "Signin request"
// @Success 200 {object} map[string]any "Token and public user view"
// @Failure 400 {object} map[string]any "Missing fields"
// @Failure 401 {object} map[string]any "Invalid email or password"
// @Failure 500 {object} map[string]any "Signin failed"
// @Router /signin [post]
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.authService.Signin(r.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Logger.Error("signin failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Signin failed")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// AdminLogin handles POST /adminLogin
// @Summary Admin login
// @Description Authenticate and require the ADMIN role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "Signin request"
// @Success 200 {object} map[string]any "Token and public user view"
// @Failure 400 {object} map[string]any "Missing fields"
// @Failure 401 {object} map[string]any "Invalid email or password"
// @Failure 403 {object} map[string]any "Valid credentials but not an admin"
// @Failure 500 {object} map[string]any "Admin login failed"
// @Router /adminLogin [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.authService.AdminLogin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			h.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, models.ErrAccessDenied):
			h.RespondError(w, http.StatusForbidden, "Access denied. Only administrators can access this route.")
		default:
			h.Logger.Error("admin login failed", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "Admin login failed")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Admin login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
