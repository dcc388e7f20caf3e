package domain

import "errors"

var (
	// repository errors
	ErrNotFound = errors.New("not found")

	// auth errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// token errors
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")

	// access errors
	ErrForbidden = errors.New("access denied")
)
