package ui

import "salta/internal/services"

// snapshotMsg carries the result of a snapshot refresh.
type snapshotMsg struct {
	snapshot *services.Snapshot
	err      error
}

// actionDoneMsg carries the result of an action executed inside the event
// loop (deletions; switch and create run after the program exits).
type actionDoneMsg struct {
	err error
}
