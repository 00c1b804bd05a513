// Package ui implements the interactive picker on top of Bubble Tea. All
// interaction decisions live in the domain reducer; this package only
// translates terminal events into reducer events and renders the state.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"salta/internal/config"
	"salta/internal/domain"
	"salta/internal/logging"
	"salta/internal/search"
	"salta/internal/services"
	"salta/internal/theme"
)

// Model is the root Bubble Tea model for the picker.
type Model struct {
	snapshots *services.SnapshotService
	sessions  *services.SessionService
	opts      config.Options
	keys      KeyMap

	input       textinput.Model
	state       domain.SelectionState
	snapshot    *services.Snapshot
	results     []search.Result
	layoutForm  *LayoutForm
	finalAction domain.Action
	errText     string
	quitting    bool
	width       int
}

// NewModel creates the picker model
func NewModel(snapshots *services.SnapshotService, sessions *services.SessionService, opts config.Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = theme.FilterPromptStyle
	input.Cursor.Style = theme.FilterCursorStyle
	input.Placeholder = "filter or new session name"
	input.Focus()

	return &Model{
		snapshots: snapshots,
		sessions:  sessions,
		opts:      opts,
		keys:      DefaultKeyMap(),
		input:     input,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		if msg.snapshot != nil {
			m.snapshot = msg.snapshot
			m.recompute()
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		return m, m.refreshCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.Mode {
	case domain.ModeChoosingLayout:
		return m.handleLayoutKey(msg)
	case domain.ModeConfirmingDelete:
		return m.handleConfirmDeleteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.apply(domain.Cancel{})

	case key.Matches(msg, m.keys.Up):
		return m.apply(domain.Highlight{Index: m.clampIndex(m.state.Highlighted - 1)})

	case key.Matches(msg, m.keys.Down):
		return m.apply(domain.Highlight{Index: m.clampIndex(m.state.Highlighted + 1)})

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Confirm):
		if cand, ok := m.targetCandidate(); ok {
			return m.apply(domain.Confirm{Candidate: cand})
		}
		return m, nil

	case key.Matches(msg, m.keys.Quick):
		if cand, ok := m.targetCandidate(); ok {
			return m.apply(domain.QuickCreate{Candidate: cand})
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if cand, ok := m.highlightedCandidate(); ok {
			return m.apply(domain.RequestDelete{Candidate: cand})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.state.Filter {
		model, applyCmd := m.apply(domain.SetFilter{Text: m.input.Value()})
		return model, tea.Batch(cmd, applyCmd)
	}
	return m, cmd
}

func (m *Model) handleLayoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.layoutForm == nil {
		return m.apply(domain.Cancel{})
	}

	_, cmd := m.layoutForm.Update(msg)
	if !m.layoutForm.Completed {
		return m, cmd
	}

	form := m.layoutForm
	m.layoutForm = nil
	if form.Cancelled {
		return m.apply(domain.Cancel{})
	}
	return m.apply(domain.ChooseLayout{Layout: form.Layout()})
}

func (m *Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.apply(domain.ConfirmDelete{})
	case "n", "N", "esc", "ctrl+c":
		return m.apply(domain.Cancel{})
	}
	return m, nil
}

// apply runs one reducer step and reacts to the outcome: state sync, form
// creation, action dispatch.
func (m *Model) apply(ev domain.Event) (tea.Model, tea.Cmd) {
	st, action, err := domain.Reduce(m.state, ev, domain.ReduceContext{
		DefaultLayout:  m.opts.DefaultLayout,
		CurrentSession: m.currentSession(),
	})
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	m.errText = ""
	previousMode := m.state.Mode
	m.state = st

	if m.input.Value() != st.Filter {
		m.input.SetValue(st.Filter)
		m.input.CursorEnd()
	}
	m.recompute()

	var cmds []tea.Cmd
	if st.Mode == domain.ModeChoosingLayout && previousMode != domain.ModeChoosingLayout && st.Pending != nil {
		m.layoutForm = NewLayoutForm(st.Pending.DisplayName, m.opts.DefaultLayout)
		cmds = append(cmds, m.layoutForm.Init())
	}

	if action != nil {
		cmds = append(cmds, m.dispatch(action))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) dispatch(action domain.Action) tea.Cmd {
	switch action.(type) {
	case domain.Exit:
		m.quitting = true
		return tea.Quit

	case domain.DeleteSession:
		return func() tea.Msg {
			err := m.sessions.Execute(context.Background(), action)
			if err != nil {
				logging.Logger.Error("Action failed", "error", err)
			}
			return actionDoneMsg{err: err}
		}

	default:
		// Switching or creating ends with an attach, which needs the raw
		// terminal back; the caller runs it once the program has exited.
		m.finalAction = action
		m.quitting = true
		return tea.Quit
	}
}

// FinalAction returns the switch or create action the picker decided on, to
// be executed after the program has released the terminal. Nil when the
// interaction ended without one.
func (m *Model) FinalAction() domain.Action {
	return m.finalAction
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.snapshots.Build(context.Background())
		return snapshotMsg{snapshot: snap, err: err}
	}
}

// recompute refreshes the visible result list for the current filter.
func (m *Model) recompute() {
	if m.snapshot == nil {
		m.results = nil
		return
	}
	m.results = search.Search(m.snapshot.Candidates, m.state.Filter)
	if m.state.Highlighted >= len(m.results) {
		m.state.Highlighted = m.clampIndex(m.state.Highlighted)
	}
}

func (m *Model) clampIndex(idx int) int {
	if idx < 0 {
		return 0
	}
	if max := len(m.results) - 1; idx > max {
		if max < 0 {
			return 0
		}
		return max
	}
	return idx
}

// targetCandidate is the candidate an accept key acts on: the highlighted
// result, or a synthesized one named after the filter when nothing matches.
func (m *Model) targetCandidate() (domain.Candidate, bool) {
	if cand, ok := m.highlightedCandidate(); ok {
		return cand, true
	}
	name := strings.TrimSpace(m.state.Filter)
	if name == "" {
		return domain.Candidate{}, false
	}
	return domain.Candidate{DisplayName: name, Kind: domain.KindSession}, true
}

func (m *Model) highlightedCandidate() (domain.Candidate, bool) {
	if m.state.Highlighted < 0 || m.state.Highlighted >= len(m.results) {
		return domain.Candidate{}, false
	}
	return m.results[m.state.Highlighted].Candidate, true
}

func (m *Model) currentSession() string {
	if m.snapshot == nil {
		return ""
	}
	return m.snapshot.CurrentSession
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.AppNameStyle.Render("salta"))
	b.WriteString(theme.TaglineStyle.Render("  jump to a session\n\n"))

	switch m.state.Mode {
	case domain.ModeChoosingLayout:
		if m.layoutForm != nil {
			b.WriteString(m.layoutForm.View())
		}
	case domain.ModeConfirmingDelete:
		b.WriteString(m.renderDeletePrompt())
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(renderCandidateList(m.results, m.state.Highlighted))
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(m.errText))
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("enter open · ctrl+j quick create · ctrl+d delete · ctrl+r refresh · esc quit"))
	return b.String()
}

func (m *Model) renderDeletePrompt() string {
	if m.state.Pending == nil || m.state.Pending.Session == nil {
		return ""
	}
	rec := m.state.Pending.Session
	verb := "Kill session"
	if rec.Status == domain.StatusResurrectable {
		verb = "Forget session"
	}
	return theme.NormalStyle.Render(verb+" "+rec.Name+"? ") +
		theme.HelpStyle.Render("(y/n)")
}
