package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"salta/internal/logging"
	"salta/internal/ui"
)

// RunCmd opens the interactive picker
type RunCmd struct{}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting picker",
		"separator", cli.Container.Options.Separator,
		"base_paths", cli.Container.Options.BasePaths,
	)

	model := ui.NewModel(
		cli.Container.SnapshotService,
		cli.Container.SessionService,
		cli.Container.Options,
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	// Switch and create attach to tmux, so they run only after the program
	// has restored the terminal.
	if m, ok := finalModel.(*ui.Model); ok {
		if action := m.FinalAction(); action != nil {
			return cli.Container.SessionService.Execute(context.Background(), action)
		}
	}
	return nil
}
