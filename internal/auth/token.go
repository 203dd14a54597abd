// Package auth holds the stateless session token service and password hashing
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gamepulse/blog-service/internal/models"
)

// Token verification failure kinds. All of them deny authentication at the
// boundary; they are kept distinct for diagnostics and response messages.
var (
	// ErrTokenExpired means the token carried an expiry claim that has passed
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed means the signature or structure is invalid
	ErrTokenMalformed = errors.New("invalid token")
	// ErrInvalidPayload means the token verified but lacks id or role claims
	ErrInvalidPayload = errors.New("invalid token payload")
)

// Claims is the identity carried inside a session token
type Claims struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator.
// tokenExpiry of zero issues tokens without an expiry claim, which is the
// legacy behavior; tokens then stay valid until the secret rotates.
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Issue generates a signed token carrying the user's identity and role
func (tg *TokenGenerator) Issue(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
	}
	if tg.tokenExpiry != 0 {
		claims["exp"] = time.Now().Add(tg.tokenExpiry).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token's signature and returns its claims.
// Fails with ErrTokenExpired, ErrTokenMalformed or ErrInvalidPayload.
func (tg *TokenGenerator) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	// A syntactically valid token without id or role is rejected as well
	id, ok := mapClaims["id"].(string)
	if !ok || id == "" {
		return nil, ErrInvalidPayload
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok || roleStr == "" {
		return nil, ErrInvalidPayload
	}

	claims := &Claims{
		ID:   id,
		Role: models.Role(roleStr),
	}

	// Name and email are informational and may be absent
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	return claims, nil
}
