package domain

import "errors"

// Credential store.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("account is inactive")
	ErrInvalidRole        = errors.New("invalid role")
)

// Tokens. ErrTokenExpired and ErrTokenInvalid are the two verification
// failure kinds; callers branch on them with errors.Is.
var (
	ErrInvalidTokenPayload = errors.New("invalid token payload")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenInvalid        = errors.New("invalid token")
)

// Access control.
var (
	ErrUnauthenticated = errors.New("missing or invalid token")
	ErrForbidden       = errors.New("access forbidden")
)

// Studio records.
var (
	ErrClientNotFound  = errors.New("client not found")
	ErrClientExists    = errors.New("client already exists")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrArtistExists    = errors.New("artist already exists")
	ErrSessionNotFound = errors.New("session not found")
	ErrValidation      = errors.New("validation failed")
)

// Schema.
var ErrDatabaseNotConfigured = errors.New("database is not configured")
