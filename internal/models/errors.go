package models

import "errors"

// Domain errors shared between repositories, services and handlers.
// Handlers map these to HTTP status codes with errors.Is; anything else
// surfaces as an internal server error.
var (
	// ErrEmailExists is returned when signup hits the unique email constraint
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the two cases are indistinguishable to the client
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccessDenied is returned for a valid identity with insufficient role
	ErrAccessDenied = errors.New("access denied")
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
)
