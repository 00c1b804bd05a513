package domain

// Mode is the interaction mode of the picker.
type Mode int

const (
	// ModeBrowsing shows the full candidate list in reconciler order.
	ModeBrowsing Mode = iota
	// ModeFiltering narrows the list against the current filter text.
	ModeFiltering
	// ModeChoosingLayout asks for a layout before creating a session.
	ModeChoosingLayout
	// ModeConfirmingDelete asks for confirmation before killing a session.
	ModeConfirmingDelete
)

// SelectionState is the picker's entire cross-event state. It is owned by a
// single caller and mutated only through Reduce.
type SelectionState struct {
	Mode        Mode
	Filter      string
	Highlighted int
	Pending     *Candidate // candidate awaiting layout choice or delete confirmation
}

// Event is a single input event fed to the reducer.
type Event interface{ isEvent() }

// SetFilter replaces the filter text; empty text returns to browsing.
type SetFilter struct{ Text string }

// Highlight moves the highlight to a list index.
type Highlight struct{ Index int }

// Confirm accepts the highlighted candidate.
type Confirm struct{ Candidate Candidate }

// QuickCreate short-circuits layout selection using the default layout.
type QuickCreate struct{ Candidate Candidate }

// ChooseLayout picks a layout for the pending candidate. An empty name
// creates the session without a layout.
type ChooseLayout struct{ Layout string }

// QuickConfirmLayout confirms the pending candidate with the default layout.
type QuickConfirmLayout struct{}

// RequestDelete asks to delete the session linked to a candidate.
type RequestDelete struct{ Candidate Candidate }

// ConfirmDelete confirms the pending deletion.
type ConfirmDelete struct{}

// Cancel leaves the current mode; from browsing it signals exit.
type Cancel struct{}

func (SetFilter) isEvent()          {}
func (Highlight) isEvent()          {}
func (Confirm) isEvent()            {}
func (QuickCreate) isEvent()        {}
func (ChooseLayout) isEvent()       {}
func (QuickConfirmLayout) isEvent() {}
func (RequestDelete) isEvent()      {}
func (ConfirmDelete) isEvent()      {}
func (Cancel) isEvent()             {}

// Action is a terminal decision handed to the action sink. Exactly one is
// produced per completed interaction.
type Action interface{ isAction() }

// SwitchTo switches the client to an existing session.
type SwitchTo struct{ SessionName string }

// CreateSession creates (or resurrects) a session and switches to it.
// Layout is passed verbatim; an empty layout means none.
type CreateSession struct {
	Name   string
	Cwd    string
	Layout string
}

// DeleteSession kills a live session or discards a resurrectable record.
type DeleteSession struct {
	SessionName   string
	Resurrectable bool
}

// Exit ends the interaction without an action.
type Exit struct{}

func (SwitchTo) isAction()      {}
func (CreateSession) isAction() {}
func (DeleteSession) isAction() {}
func (Exit) isAction()          {}

// ReduceContext is the read-only configuration the reducer consults.
type ReduceContext struct {
	DefaultLayout  string
	CurrentSession string
}

// Reduce maps one input event onto the next state and, for terminal events,
// an action. It is a total synchronous function: rejected events return an
// error with the state unchanged, and no transition hides state beyond the
// explicit SelectionState.
func Reduce(st SelectionState, ev Event, ctx ReduceContext) (SelectionState, Action, error) {
	switch ev := ev.(type) {
	case SetFilter:
		st.Filter = ev.Text
		st.Highlighted = 0
		if ev.Text == "" {
			st.Mode = ModeBrowsing
		} else {
			st.Mode = ModeFiltering
		}
		return st, nil, nil

	case Highlight:
		if ev.Index >= 0 {
			st.Highlighted = ev.Index
		}
		return st, nil, nil

	case Confirm:
		if st.Mode != ModeBrowsing && st.Mode != ModeFiltering {
			return st, nil, nil
		}
		if ev.Candidate.HasRunningSession() {
			return st, SwitchTo{SessionName: ev.Candidate.Session.Name}, nil
		}
		if err := ValidateSessionName(creationName(ev.Candidate), ctx.CurrentSession); err != nil {
			return st, nil, err
		}
		cand := ev.Candidate
		st.Mode = ModeChoosingLayout
		st.Pending = &cand
		return st, nil, nil

	case QuickCreate:
		if st.Mode != ModeBrowsing && st.Mode != ModeFiltering {
			return st, nil, nil
		}
		if ev.Candidate.HasRunningSession() {
			return st, SwitchTo{SessionName: ev.Candidate.Session.Name}, nil
		}
		return createAction(st, ev.Candidate, ctx)

	case ChooseLayout:
		if st.Mode != ModeChoosingLayout || st.Pending == nil {
			return st, nil, nil
		}
		cand := *st.Pending
		name := creationName(cand)
		if err := ValidateSessionName(name, ctx.CurrentSession); err != nil {
			return st, nil, err
		}
		return reset(st), CreateSession{Name: name, Cwd: creationCwd(cand), Layout: ev.Layout}, nil

	case QuickConfirmLayout:
		if st.Mode != ModeChoosingLayout || st.Pending == nil {
			return st, nil, nil
		}
		return createAction(st, *st.Pending, ctx)

	case RequestDelete:
		if ev.Candidate.Session == nil {
			return st, nil, ErrNoSelection
		}
		cand := ev.Candidate
		st.Mode = ModeConfirmingDelete
		st.Pending = &cand
		return st, nil, nil

	case ConfirmDelete:
		if st.Mode != ModeConfirmingDelete || st.Pending == nil || st.Pending.Session == nil {
			return st, nil, nil
		}
		rec := st.Pending.Session
		return reset(st), DeleteSession{
			SessionName:   rec.Name,
			Resurrectable: rec.Status == StatusResurrectable,
		}, nil

	case Cancel:
		if st.Mode == ModeBrowsing {
			return st, Exit{}, nil
		}
		return reset(st), nil, nil
	}

	return st, nil, nil
}

// createAction emits a CreateSession with the configured default layout.
// Quick-create without a default layout is a user error, not a transition.
func createAction(st SelectionState, cand Candidate, ctx ReduceContext) (SelectionState, Action, error) {
	if ctx.DefaultLayout == "" {
		return st, nil, ErrLayoutRequired
	}
	name := creationName(cand)
	if err := ValidateSessionName(name, ctx.CurrentSession); err != nil {
		return st, nil, err
	}
	return reset(st), CreateSession{Name: name, Cwd: creationCwd(cand), Layout: ctx.DefaultLayout}, nil
}

// creationName is the session name used when a candidate spawns a session.
func creationName(c Candidate) string {
	if c.Session != nil && c.Session.Status == StatusResurrectable {
		return c.Session.Name
	}
	return c.DisplayName
}

// creationCwd is the working directory for a created session.
func creationCwd(c Candidate) string {
	if c.Path != "" {
		return c.Path
	}
	if c.Session != nil {
		return c.Session.WorkingDir
	}
	return ""
}

// reset returns to browsing with the filter cleared.
func reset(st SelectionState) SelectionState {
	st.Mode = ModeBrowsing
	st.Filter = ""
	st.Highlighted = 0
	st.Pending = nil
	return st
}
