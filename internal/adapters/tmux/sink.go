package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"salta/internal/logging"
	"salta/internal/ports"
)

// Sink executes picker actions against the tmux server.
type Sink struct{}

// Compile-time interface verification
var _ ports.ActionSink = (*Sink)(nil)

// NewSink creates a new tmux action sink
func NewSink() *Sink {
	return &Sink{}
}

// SwitchTo moves the client to the named session. Inside tmux this uses
// switch-client; outside it attaches, forwarding the terminal to tmux.
func (s *Sink) SwitchTo(ctx context.Context, sessionName string) error {
	if !sessionExists(ctx, sessionName) {
		return fmt.Errorf("%w: %s", ports.ErrSessionNotFound, sessionName)
	}

	var cmd *exec.Cmd
	if os.Getenv("TMUX") != "" {
		cmd = exec.CommandContext(ctx, "tmux", "switch-client", "-t", sessionName)
	} else {
		cmd = exec.CommandContext(ctx, "tmux", "attach-session", "-t", sessionName)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to switch to session %s: %w", sessionName, err)
	}
	return nil
}

// CreateSession creates a detached session rooted at cwd, applies the layout
// when one is given, and switches to it.
func (s *Sink) CreateSession(ctx context.Context, name, cwd, layout string) error {
	if sessionExists(ctx, name) {
		return fmt.Errorf("%w: %s", ports.ErrSessionExists, name)
	}

	args := []string{"new-session", "-d", "-s", name}
	if cwd != "" {
		args = append(args, "-c", cwd)
	}
	cmd := exec.CommandContext(ctx, "tmux", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to create session %s: %w", name, err)
	}

	if layout != "" {
		cmd := exec.CommandContext(ctx, "tmux", "select-layout", "-t", name, layout)
		if err := cmd.Run(); err != nil {
			// The session is usable without the layout, so keep going.
			logging.Logger.Warn("Failed to apply layout", "session", name, "layout", layout, "error", err)
		}
	}

	return s.SwitchTo(ctx, name)
}

// KillSession terminates the named session.
func (s *Sink) KillSession(ctx context.Context, name string) error {
	cmd := exec.CommandContext(ctx, "tmux", "kill-session", "-t", name)
	if output, err := cmd.CombinedOutput(); err != nil {
		if strings.Contains(string(output), "can't find session") {
			return fmt.Errorf("%w: %s", ports.ErrSessionNotFound, name)
		}
		return fmt.Errorf("failed to kill session %s: %w", name, err)
	}
	return nil
}

func sessionExists(ctx context.Context, name string) bool {
	cmd := exec.CommandContext(ctx, "tmux", "has-session", "-t", name)
	return cmd.Run() == nil
}
