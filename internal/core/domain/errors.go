package domain

import "errors"

// Sentinel errors for every failure the request pipeline can surface.
// Infrastructure wraps its own errors around these; the API boundary matches
// with errors.Is and never leaks anything outside this taxonomy.
var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("role not in the allowed set")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)
