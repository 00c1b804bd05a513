// Package services assembles adapter output into the state the picker runs on.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"salta/internal/config"
	"salta/internal/domain"
	"salta/internal/ports"
)

// Snapshot is one consistent view of ranked directories and sessions. It is
// immutable once built; a refresh produces a new Snapshot.
type Snapshot struct {
	Candidates     []domain.Candidate
	CurrentSession string
}

// SnapshotService builds Snapshots by querying the frecency source and the
// session host concurrently and reconciling the results.
type SnapshotService struct {
	frecency ports.FrecencySource
	lister   ports.SessionLister
	store    ports.ResurrectableStore
	opts     config.Options
	log      *slog.Logger

	mu   sync.Mutex
	last *Snapshot
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(frecency ports.FrecencySource, lister ports.SessionLister, store ports.ResurrectableStore, opts config.Options, log *slog.Logger) *SnapshotService {
	return &SnapshotService{
		frecency: frecency,
		lister:   lister,
		store:    store,
		opts:     opts,
		log:      log,
	}
}

// Build fetches fresh state and reconciles it into a Snapshot. A failing
// source degrades to an empty snapshot for that source alone; whatever the
// other collaborators returned is still reconciled, and the joined source
// errors are reported alongside the usable result. Only when every source
// fails does an earlier Snapshot take the place of a fresh one. The returned
// Snapshot is never nil.
func (s *SnapshotService) Build(ctx context.Context) (*Snapshot, error) {
	var (
		entries       []domain.DirectoryEntry
		live          []domain.SessionRecord
		resurrectable []domain.SessionRecord
		current       string

		frecErr, liveErr, resErr, curErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if entries, frecErr = s.frecency.Query(gctx); frecErr != nil {
			s.log.Warn("Frecency source failed, continuing without rankings", "error", frecErr)
			entries = nil
		}
		return nil
	})
	g.Go(func() error {
		if live, liveErr = s.lister.Live(gctx); liveErr != nil {
			s.log.Warn("Session lister failed, continuing without live sessions", "error", liveErr)
			live = nil
		}
		return nil
	})
	g.Go(func() error {
		if resurrectable, resErr = s.store.ListResurrectable(gctx); resErr != nil {
			s.log.Warn("Resurrectable store failed, continuing without dead sessions", "error", resErr)
			resurrectable = nil
		}
		return nil
	})
	g.Go(func() error {
		name, err := s.lister.CurrentSession(gctx)
		if err != nil && !errors.Is(err, ports.ErrNotInSession) {
			curErr = err
			s.log.Warn("Current session lookup failed", "error", curErr)
			return nil
		}
		current = name
		return nil
	})
	_ = g.Wait()

	srcErr := errors.Join(frecErr, liveErr, resErr, curErr)

	if frecErr != nil && liveErr != nil && resErr != nil {
		// Nothing fetched at all; a stale snapshot beats an empty screen.
		s.mu.Lock()
		last := s.last
		s.mu.Unlock()
		if last != nil {
			return last, srcErr
		}
	}

	for i := range live {
		if live[i].Name == current {
			live[i].Status = domain.StatusCurrent
		}
	}

	index := domain.NewFrecencyIndex(entries)
	registry := domain.NewSessionRegistry(live, resurrectable, s.opts.ShowResurrectable)
	candidates := domain.Reconcile(index, registry, domain.ReconcileOptions{
		Separator: s.opts.Separator,
		BasePaths: s.opts.BasePaths,
	}, s.log)

	snap := &Snapshot{
		Candidates:     candidates,
		CurrentSession: current,
	}

	// Degraded snapshots are returned but never remembered, so a later
	// all-sources-down refresh falls back to complete data.
	if srcErr == nil {
		s.mu.Lock()
		s.last = snap
		s.mu.Unlock()
	}
	return snap, srcErr
}

// Last returns the most recent fully successful Snapshot or nil.
func (s *SnapshotService) Last() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
