// Package apperr defines the sentinel errors shared by services and
// handlers. Callers should use errors.Is to match these values; handlers
// translate them into HTTP status and business codes exactly once.
package apperr

import "errors"

var (
	// Registration / login.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownIdentity    = errors.New("unknown identity")

	// Resource access.
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")

	// Infrastructure.
	ErrPersistence = errors.New("persistence error")
	ErrUpload      = errors.New("upload failed")
)
