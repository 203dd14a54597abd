// Package middleware provides the authorization gates placed in front of
// route handlers: signed-in, moderator-or-above and admin-only.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gamepulse/blog-service/internal/auth"
	"github.com/gamepulse/blog-service/internal/models"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireSignedIn validates the bearer token and attaches the caller's
// identity to the request context
func RequireSignedIn(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return requireRole(tokenGenerator, 0)
}

// RequireModerator runs the signed-in check, then requires a role of
// MODERATOR or ADMIN
func RequireModerator(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return requireRole(tokenGenerator, models.RoleModerator.Level())
}

// RequireAdmin runs the signed-in check, then requires the ADMIN role
func RequireAdmin(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return requireRole(tokenGenerator, models.RoleAdmin.Level())
}

// requireRole builds a gate that authenticates the bearer token and, when
// minLevel is positive, additionally requires the caller's role to be at or
// above that level. Rejections share one envelope so callers cannot tell
// "not logged in" from "wrong role" by shape, only by status and message.
func requireRole(tokenGenerator *auth.TokenGenerator, minLevel int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, status, message := authenticate(tokenGenerator, r)
			if claims == nil {
				reject(w, status, message)
				return
			}

			if minLevel > 0 && claims.Role.Level() < minLevel {
				reject(w, http.StatusForbidden, "Access denied")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate extracts and verifies the bearer token from the Authorization
// header. On failure it returns nil claims with the rejection status and
// message.
func authenticate(tokenGenerator *auth.TokenGenerator, r *http.Request) (*auth.Claims, int, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, http.StatusUnauthorized, "Authorization header is missing"
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, http.StatusUnauthorized, "Invalid token format. Must start with 'Bearer '"
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return nil, http.StatusUnauthorized, "Token is missing"
	}

	claims, err := tokenGenerator.Verify(token)
	if err != nil {
		switch err {
		case auth.ErrTokenExpired:
			return nil, http.StatusUnauthorized, "Token has expired"
		case auth.ErrInvalidPayload:
			return nil, http.StatusUnauthorized, "Invalid token payload"
		default:
			return nil, http.StatusUnauthorized, "Invalid token"
		}
	}

	return claims, 0, ""
}

// reject writes the uniform rejection envelope
func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"message":%q}`, message)
}

// GetIdentity retrieves the authenticated identity from context
func GetIdentity(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(identityKey).(*auth.Claims)
	return claims, ok
}
