package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Analysis errors
	ErrInvalidArgument  = errors.New("missing or malformed argument")
	ErrStoreUnavailable = errors.New("task store unavailable")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or unknown")

	// Task errors
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title must not be empty")
)
