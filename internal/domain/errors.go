package domain

import "errors"

var (
	// ErrLayoutRequired is returned when quick-create is invoked without a
	// default layout configured.
	ErrLayoutRequired = errors.New("no default layout configured")

	// ErrNameResolutionExhausted means the numeric suffix loop hit its bound.
	// Reaching it indicates an internal invariant violation, not user error.
	ErrNameResolutionExhausted = errors.New("name resolution exhausted suffix attempts")

	// ErrNoSelection is returned when a confirm event arrives with nothing
	// highlighted.
	ErrNoSelection = errors.New("nothing selected")

	ErrEmptySessionName     = errors.New("session name cannot be empty")
	ErrSessionNameTooLong   = errors.New("session name must be shorter than 108 bytes")
	ErrSessionNameHasSlash  = errors.New("session name cannot contain '/'")
	ErrSessionNameIsCurrent = errors.New("cannot create session with same name as current session")
)
