// Package tmux shells out to the tmux CLI for session inspection and control.
package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"salta/internal/domain"
	"salta/internal/logging"
	"salta/internal/ports"
)

// listFormat pulls name, working directory and last activity per session.
// Tab separators because session names cannot contain tabs.
const listFormat = "#{session_name}\t#{session_path}\t#{session_activity}"

// Lister reads live session state from the tmux server.
type Lister struct{}

// Compile-time interface verification
var _ ports.SessionLister = (*Lister)(nil)

// NewLister creates a new tmux session lister
func NewLister() *Lister {
	return &Lister{}
}

// Live returns all sessions known to the running tmux server.
func (l *Lister) Live(ctx context.Context) ([]domain.SessionRecord, error) {
	cmd := exec.CommandContext(ctx, "tmux", "list-sessions", "-F", listFormat)
	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means no server or no sessions, which is fine.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list tmux sessions: %w", err)
	}
	return parseSessionList(string(output)), nil
}

// CurrentSession returns the name of the session this process is attached to.
// Returns ErrNotInSession when running outside tmux.
func (l *Lister) CurrentSession(ctx context.Context) (string, error) {
	if os.Getenv("TMUX") == "" {
		return "", ports.ErrNotInSession
	}
	cmd := exec.CommandContext(ctx, "tmux", "display-message", "-p", "#{session_name}")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get current session: %w", err)
	}
	name := strings.TrimSpace(string(output))
	if name == "" {
		return "", ports.ErrNotInSession
	}
	return name, nil
}

// parseSessionList parses list-sessions output in listFormat.
func parseSessionList(output string) []domain.SessionRecord {
	var records []domain.SessionRecord
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 || fields[0] == "" {
			logging.Logger.Warn("Skipping malformed tmux session line", "line", line)
			continue
		}

		record := domain.SessionRecord{
			Name:       fields[0],
			Status:     domain.StatusActive,
			WorkingDir: fields[1],
		}
		if seconds, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err == nil {
			record.LastSeen = time.Unix(seconds, 0)
		}
		records = append(records, record)
	}
	return records
}
