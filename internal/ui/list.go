package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"salta/internal/domain"
	"salta/internal/search"
	"salta/internal/theme"
)

// renderCandidateList renders the visible results with the highlight row.
func renderCandidateList(results []search.Result, highlighted int) string {
	if len(results) == 0 {
		return theme.HelpStyle.Render("  no matches")
	}

	var b strings.Builder
	for i, res := range results {
		b.WriteString(renderCandidateRow(res.Candidate, i == highlighted))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCandidateRow(cand domain.Candidate, selected bool) string {
	symbol := statusSymbol(cand)
	name := cand.DisplayName

	var line string
	if selected {
		line = theme.ItemSelectedStyle.Render(fmt.Sprintf("▸%s %s", symbol, name))
	} else {
		line = theme.ItemStyle.Render(fmt.Sprintf(" %s %s", symbol, name))
	}

	var extras []string
	if cand.Path != "" && cand.Path != cand.DisplayName {
		extras = append(extras, theme.PathStyle.Render(cand.Path))
	}
	if cand.Session != nil && !cand.Session.LastSeen.IsZero() {
		extras = append(extras, theme.LastUsedStyle.Render(humanize.Time(cand.Session.LastSeen)))
	}
	if len(extras) > 0 {
		line += "  " + strings.Join(extras, "  ")
	}
	return line
}

func statusSymbol(cand domain.Candidate) string {
	switch cand.Status() {
	case domain.StatusCurrent:
		return theme.CurrentIconStyle.Render(domain.SymbolCurrent)
	case domain.StatusActive:
		return theme.ActiveIconStyle.Render(domain.SymbolActive)
	case domain.StatusResurrectable:
		return theme.ResurrectableIconStyle.Render(domain.SymbolResurrectable)
	default:
		return " "
	}
}
