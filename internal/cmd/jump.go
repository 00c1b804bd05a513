package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"salta/internal/config"
	"salta/internal/domain"
	"salta/internal/logging"
)

// JumpCmd switches to the session for a path, creating it when needed
type JumpCmd struct {
	Path string `arg:"" optional:"" help:"Directory to jump to (defaults to the current directory)"`
}

// Run executes the jump command
func (j *JumpCmd) Run(cli *CLI) error {
	ctx := context.Background()

	path := j.Path
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		path = cwd
	}
	path = config.ExpandPath(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	snap, err := cli.Container.SnapshotService.Build(ctx)
	if err != nil {
		// Degraded snapshots still carry whatever sources did answer.
		logging.Logger.Warn("Candidate refresh was incomplete", "error", err)
	}

	cand, ok := findByPath(snap.Candidates, path)
	if !ok {
		// Unranked directory: resolve a name for it against the same
		// claim space as the known candidates.
		name, err := resolveNewName(path, snap.Candidates, cli.Container.Options)
		if err != nil {
			return err
		}
		cand = domain.Candidate{DisplayName: name, Path: path, Kind: domain.KindDirectory}
	}

	rctx := domain.ReduceContext{
		DefaultLayout:  cli.Container.Options.DefaultLayout,
		CurrentSession: snap.CurrentSession,
	}

	st, action, err := domain.Reduce(domain.SelectionState{}, domain.Confirm{Candidate: cand}, rctx)
	if err != nil {
		return err
	}
	if action == nil {
		// Confirm parked the candidate for layout choice; jump resolves it
		// with the configured default straight away.
		_, action, err = domain.Reduce(st, domain.ChooseLayout{Layout: rctx.DefaultLayout}, rctx)
		if err != nil {
			return err
		}
	}

	logging.Logger.Info("Jumping", "path", path, "action", fmt.Sprintf("%T", action))
	return cli.Container.SessionService.Execute(ctx, action)
}

func findByPath(candidates []domain.Candidate, path string) (domain.Candidate, bool) {
	for _, c := range candidates {
		if c.Path == path {
			return c, true
		}
	}
	return domain.Candidate{}, false
}

func resolveNewName(path string, candidates []domain.Candidate, opts config.Options) (string, error) {
	claimed := domain.NewClaimSet()
	for _, c := range candidates {
		claimed.Claim(c.DisplayName)
	}
	name, err := domain.ResolveName(path, opts.BasePaths, opts.Separator, claimed)
	if err != nil {
		return "", fmt.Errorf("failed to name session for %s: %w", path, err)
	}
	return name, nil
}
