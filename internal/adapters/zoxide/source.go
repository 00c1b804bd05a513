// Package zoxide reads ranked directories from the zoxide database.
package zoxide

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"salta/internal/domain"
	"salta/internal/logging"
	"salta/internal/ports"
)

// Source queries the zoxide CLI for frecency-ranked directories.
type Source struct{}

// Compile-time interface verification
var (
	_ ports.FrecencySource = (*Source)(nil)
	_ ports.VisitRecorder  = (*Source)(nil)
)

// NewSource creates a new zoxide-backed frecency source
func NewSource() *Source {
	return &Source{}
}

// Available reports whether the zoxide binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("zoxide")
	return err == nil
}

// Query returns all directories zoxide knows about, highest score first.
func (s *Source) Query(ctx context.Context) ([]domain.DirectoryEntry, error) {
	cmd := exec.CommandContext(ctx, "zoxide", "query", "-l", "-s")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to query zoxide: %w", err)
	}
	return parseQueryOutput(string(output)), nil
}

// RecordVisit bumps the path's score in the zoxide database.
func (s *Source) RecordVisit(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "zoxide", "add", path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to record visit for %s: %w", path, err)
	}
	return nil
}

// parseQueryOutput parses `zoxide query -l -s` output: one entry per line,
// a right-aligned score followed by the absolute path.
func parseQueryOutput(output string) []domain.DirectoryEntry {
	var entries []domain.DirectoryEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		scoreText, path, found := strings.Cut(line, " ")
		if !found {
			logging.Logger.Warn("Skipping malformed zoxide line", "line", line)
			continue
		}
		path = strings.TrimSpace(path)
		score, err := strconv.ParseFloat(scoreText, 64)
		if err != nil || path == "" {
			logging.Logger.Warn("Skipping malformed zoxide line", "line", line)
			continue
		}

		entries = append(entries, domain.DirectoryEntry{
			Path:  path,
			Score: score,
		})
	}
	return entries
}
