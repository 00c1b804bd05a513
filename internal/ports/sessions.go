package ports

import (
	"context"
	"errors"

	"salta/internal/domain"
)

// Error sentinels for session operations
var (
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("session not found")
	ErrNotInSession    = errors.New("not running inside a multiplexer session")
)

// SessionLister reports the sessions the host currently knows about.
// A host that is not running reports an empty list, not an error.
type SessionLister interface {
	Live(ctx context.Context) ([]domain.SessionRecord, error)
	CurrentSession(ctx context.Context) (string, error)
}

// ResurrectableStore keeps records of sessions that were terminated but can
// be recreated on demand.
type ResurrectableStore interface {
	RecordKilled(ctx context.Context, rec domain.SessionRecord) error
	ListResurrectable(ctx context.Context) ([]domain.SessionRecord, error)
	DeleteResurrectable(ctx context.Context, name string) error
}

// ActionSink executes the terminal action of one picker interaction. It is
// the only place the core touches session primitives.
type ActionSink interface {
	SwitchTo(ctx context.Context, sessionName string) error
	CreateSession(ctx context.Context, name, cwd, layout string) error
	KillSession(ctx context.Context, name string) error
}
