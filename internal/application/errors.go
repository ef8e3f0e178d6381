package application

import "errors"

// Sentinel errors exposed to the HTTP layer. Messages follow the wire
// responses; handlers map them onto status codes.
var (
	ErrDuplicateEmail     = errors.New("user already exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrInvalidLink        = errors.New("invalid link")
	ErrUnknownEmail       = errors.New("user with this email address does not exist")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrNoImage            = errors.New("no image provided")

	// ErrUpstream marks blob-store or mail failures. Operations wrapping it
	// have possibly performed part of their work; they must never be
	// reported as successful.
	ErrUpstream = errors.New("upstream failure")
)
