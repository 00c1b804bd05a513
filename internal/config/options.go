package config

import (
	"log/slog"
	"strings"
)

// DefaultSeparator joins path segments in generated session names.
const DefaultSeparator = "."

// Options is the picker's per-run configuration. It is built once at startup
// and never mutated afterwards.
type Options struct {
	Separator         string
	BasePaths         []string
	ShowResurrectable bool
	DefaultLayout     string
}

// NewOptions validates raw option values, falling back to the documented
// default for any single malformed option instead of aborting startup.
func NewOptions(separator string, basePaths []string, showResurrectable bool, defaultLayout string, log *slog.Logger) Options {
	if separator == "" {
		if log != nil {
			log.Warn("Empty session separator, falling back to default",
				"default", DefaultSeparator)
		}
		separator = DefaultSeparator
	}

	cleaned := make([]string, 0, len(basePaths))
	for _, p := range basePaths {
		p = strings.TrimSpace(p)
		if p == "" {
			if log != nil {
				log.Warn("Dropping empty base path entry")
			}
			continue
		}
		cleaned = append(cleaned, ExpandPath(p))
	}

	return Options{
		Separator:         separator,
		BasePaths:         cleaned,
		ShowResurrectable: showResurrectable,
		DefaultLayout:     defaultLayout,
	}
}
