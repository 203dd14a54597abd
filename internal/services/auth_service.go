package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamepulse/blog-service/internal/auth"
	"github.com/gamepulse/blog-service/internal/models"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// Returns models.ErrEmailExists when the email is already taken.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// Returns models.ErrNotFound when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// authService implements the signup/signin/admin-login flows
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Signup creates a new user account and issues a session token.
// The role is always USER; it is never client-supplied.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (string, *models.User, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokenGenerator.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// Signin authenticates a user by email and password and issues a session
// token. Unknown email and wrong password both yield
// models.ErrInvalidCredentials so the two are indistinguishable.
func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// AdminLogin runs the signin flow and additionally requires the ADMIN role.
// Valid non-admin credentials yield models.ErrAccessDenied, distinct from
// the credentials failure.
func (s *authService) AdminLogin(ctx context.Context, req *models.SigninRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return "", nil, models.ErrInvalidCredentials
	}

	if user.Role != models.RoleAdmin {
		s.logger.Warn("admin login rejected for non-admin user", zap.String("user_id", user.ID))
		return "", nil, models.ErrAccessDenied
	}

	token, err := s.tokenGenerator.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}
