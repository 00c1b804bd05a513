package services

import (
	"context"
	"fmt"
	"log/slog"

	"salta/internal/domain"
	"salta/internal/ports"
)

// SessionService executes the terminal actions the picker produces.
type SessionService struct {
	sink     ports.ActionSink
	lister   ports.SessionLister
	store    ports.ResurrectableStore
	recorder ports.VisitRecorder
	log      *slog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sink ports.ActionSink, lister ports.SessionLister, store ports.ResurrectableStore, recorder ports.VisitRecorder, log *slog.Logger) *SessionService {
	return &SessionService{
		sink:     sink,
		lister:   lister,
		store:    store,
		recorder: recorder,
		log:      log,
	}
}

// Execute carries out one action. Visit recording and resurrectable-record
// bookkeeping are best effort; only the session operation itself can fail
// the call.
func (s *SessionService) Execute(ctx context.Context, action domain.Action) error {
	switch a := action.(type) {
	case domain.SwitchTo:
		return s.switchTo(ctx, a)
	case domain.CreateSession:
		return s.create(ctx, a)
	case domain.DeleteSession:
		return s.delete(ctx, a)
	case domain.Exit, nil:
		return nil
	default:
		return fmt.Errorf("unknown action %T", action)
	}
}

func (s *SessionService) switchTo(ctx context.Context, a domain.SwitchTo) error {
	if err := s.sink.SwitchTo(ctx, a.SessionName); err != nil {
		return err
	}
	s.recordVisitForSession(ctx, a.SessionName)
	return nil
}

func (s *SessionService) create(ctx context.Context, a domain.CreateSession) error {
	if err := s.sink.CreateSession(ctx, a.Name, a.Cwd, a.Layout); err != nil {
		return err
	}

	// A resurrected session is live again, so its dead record goes away.
	if err := s.store.DeleteResurrectable(ctx, a.Name); err != nil {
		s.log.Warn("Failed to clear resurrectable record", "session", a.Name, "error", err)
	}

	if a.Cwd != "" {
		if err := s.recorder.RecordVisit(ctx, a.Cwd); err != nil {
			s.log.Warn("Failed to record visit", "path", a.Cwd, "error", err)
		}
	}
	return nil
}

func (s *SessionService) delete(ctx context.Context, a domain.DeleteSession) error {
	if a.Resurrectable {
		return s.store.DeleteResurrectable(ctx, a.SessionName)
	}

	// Capture the working directory before the session disappears so the
	// session stays resurrectable afterwards.
	rec := s.findLive(ctx, a.SessionName)

	if err := s.sink.KillSession(ctx, a.SessionName); err != nil {
		return err
	}

	if rec != nil {
		if err := s.store.RecordKilled(ctx, *rec); err != nil {
			s.log.Warn("Failed to record killed session", "session", a.SessionName, "error", err)
		}
	}
	return nil
}

func (s *SessionService) findLive(ctx context.Context, name string) *domain.SessionRecord {
	live, err := s.lister.Live(ctx)
	if err != nil {
		s.log.Warn("Failed to list sessions", "error", err)
		return nil
	}
	for i := range live {
		if live[i].Name == name {
			return &live[i]
		}
	}
	return nil
}

func (s *SessionService) recordVisitForSession(ctx context.Context, name string) {
	rec := s.findLive(ctx, name)
	if rec == nil || rec.WorkingDir == "" {
		return
	}
	if err := s.recorder.RecordVisit(ctx, rec.WorkingDir); err != nil {
		s.log.Warn("Failed to record visit", "path", rec.WorkingDir, "error", err)
	}
}
