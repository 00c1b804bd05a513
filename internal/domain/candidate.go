package domain

// CandidateKind tags the explicit variants of a candidate.
type CandidateKind int

const (
	// KindDirectory is a directory with no session attached.
	KindDirectory CandidateKind = iota
	// KindSession is a session with no tracked directory.
	KindSession
	// KindLinked is a directory with an existing session attached.
	KindLinked
)

// Candidate is the unified search unit: a directory, a session, or both.
// DisplayName is unique across the whole candidate set.
type Candidate struct {
	Key         string
	DisplayName string
	Path        string         // empty for session-only candidates
	Session     *SessionRecord // nil for directory-only candidates
	Score       float64
	Kind        CandidateKind
}

// HasRunningSession reports whether confirming this candidate can switch to an
// already running session instead of creating one.
func (c Candidate) HasRunningSession() bool {
	if c.Session == nil {
		return false
	}
	return c.Session.Status == StatusCurrent || c.Session.Status == StatusActive
}

// Status returns the linked session status, or "" for directory-only
// candidates.
func (c Candidate) Status() SessionStatus {
	if c.Session == nil {
		return ""
	}
	return c.Session.Status
}
