package models

import "time"

// Role is the access tier of a user.
type Role string

// User role constants, ordered by trust level
const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// roleLevels maps each role to its trust level for ordering checks
var roleLevels = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Level returns the numeric trust level of the role (0 for unknown roles)
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid reports whether the role is one of the known tiers
func (r Role) Valid() bool {
	return r.Level() > 0
}

// User represents a user in the system
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the client-facing view of a user, never including the password hash
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public returns the client-facing view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// SignupRequest represents a signup request body
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents a signin request body
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
