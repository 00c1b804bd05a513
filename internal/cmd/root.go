// Package cmd wires configuration, adapters and the picker into the CLI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"salta/internal/config"
	"salta/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Separator         string `help:"Separator between path segments in generated session names" default:"."`
	BasePaths         string `help:"Pipe-delimited directories to strip from session names (e.g. '~/code|~/work')"`
	ShowResurrectable bool   `help:"Include killed-but-restorable sessions in the list" negatable:""`
	DefaultLayout     string `help:"Layout applied by quick create (empty disables quick create)"`
	DBPath            string `help:"Path to the history database"`

	Run  RunCmd  `cmd:"" help:"Open the interactive session picker (default)" default:"1"`
	Jump JumpCmd `cmd:"jump" help:"Switch to the best session for a path without the picker"`
	List ListCmd `cmd:"list" help:"Print the reconciled candidate list"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults. A settings
// value only applies when the flag is still at its default and no env var
// is set.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("SALTA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SALTA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Separator == config.DefaultSeparator && c.settings.SessionSeparator != "" {
			c.Separator = c.settings.SessionSeparator
		}
		if c.BasePaths == "" && len(c.settings.BasePaths) > 0 {
			c.BasePaths = strings.Join(c.settings.BasePaths, "|")
		}
		if !c.ShowResurrectable && c.settings.ShowResurrectableSessions != nil {
			c.ShowResurrectable = *c.settings.ShowResurrectableSessions
		}
		if c.DefaultLayout == "" {
			c.DefaultLayout = c.settings.DefaultLayout
		}
		if c.DBPath == "" {
			c.DBPath = c.settings.DBPath
		}
	}
	if c.DBPath == "" {
		c.DBPath = config.DefaultDBPath()
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported after initialization so child processes share the log file.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SALTA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SALTA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("SALTA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	container, err := NewContainer(c)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
