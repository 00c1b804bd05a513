package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// noLayout is the select value meaning "create without applying a layout".
const noLayout = "none"

// layouts are the tmux preset layouts offered when creating a session.
var layouts = []string{
	"even-horizontal",
	"even-vertical",
	"main-horizontal",
	"main-vertical",
	"tiled",
}

// LayoutForm asks which layout a new session should start with.
type LayoutForm struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
	selected  string
}

// NewLayoutForm creates a layout selection form for the named session.
func NewLayoutForm(sessionName, defaultLayout string) *LayoutForm {
	lf := &LayoutForm{selected: defaultLayout}
	if lf.selected == "" {
		lf.selected = noLayout
	}

	options := []huh.Option[string]{huh.NewOption("no layout", noLayout)}
	for _, l := range layouts {
		options = append(options, huh.NewOption(l, l))
	}

	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Layout for " + sessionName).
				Options(options...).
				Value(&lf.selected),
		),
	)
	return lf
}

func (lf *LayoutForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *LayoutForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			lf.Cancelled = true
			lf.Completed = true
			return lf, nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted {
		lf.Completed = true
	}
	return lf, cmd
}

func (lf *LayoutForm) View() string {
	if lf.form != nil {
		return lf.form.View()
	}
	return ""
}

// Layout returns the chosen layout, empty when "no layout" was selected.
func (lf *LayoutForm) Layout() string {
	if lf.selected == noLayout {
		return ""
	}
	return lf.selected
}
