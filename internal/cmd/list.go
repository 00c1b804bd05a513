package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"salta/internal/domain"
)

// ListCmd prints the reconciled candidate list for scripting
type ListCmd struct {
	Scores bool `help:"Include frecency scores"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	snap, err := cli.Container.SnapshotService.Build(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: candidate refresh was incomplete: %v\n", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, cand := range snap.Candidates {
		marker := " "
		switch cand.Status() {
		case domain.StatusCurrent:
			marker = domain.SymbolCurrent
		case domain.StatusActive:
			marker = domain.SymbolActive
		case domain.StatusResurrectable:
			marker = domain.SymbolResurrectable
		}

		if l.Scores {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", marker, cand.DisplayName, cand.Path, cand.Score)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", marker, cand.DisplayName, cand.Path)
		}
	}
	return nil
}
