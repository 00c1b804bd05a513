package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SessionStatus represents how a session relates to the running host.
type SessionStatus string

const (
	// StatusCurrent is the session the user is attached to right now.
	StatusCurrent SessionStatus = "current"
	// StatusActive is a running session the user is not attached to.
	StatusActive SessionStatus = "active"
	// StatusResurrectable is a terminated session that can be recreated.
	StatusResurrectable SessionStatus = "resurrectable"
)

// Status symbols (Unicode)
const (
	SymbolCurrent       = "●"
	SymbolActive        = "○"
	SymbolResurrectable = "↺"
)

// statusRank orders statuses by richness; higher wins when a directory links
// to more than one session record.
func statusRank(s SessionStatus) int {
	switch s {
	case StatusCurrent:
		return 3
	case StatusActive:
		return 2
	case StatusResurrectable:
		return 1
	default:
		return 0
	}
}

// Richer reports whether s carries more information than other.
func (s SessionStatus) Richer(other SessionStatus) bool {
	return statusRank(s) > statusRank(other)
}

// SessionRecord is one session as reported by the session lister.
// WorkingDir is empty when the host does not track a directory for it.
type SessionRecord struct {
	Name       string
	Status     SessionStatus
	WorkingDir string
	LastSeen   time.Time
}

// SessionRegistry is the set of live and recoverable sessions in one snapshot.
// Like FrecencyIndex it is rebuilt wholesale on refresh.
type SessionRegistry struct {
	records []SessionRecord
}

// NewSessionRegistry merges live and resurrectable records into one registry.
// A resurrectable record whose name collides with a live session is stale and
// dropped (live status takes precedence). Resurrectable records are excluded
// entirely unless showResurrectable is set.
func NewSessionRegistry(live, resurrectable []SessionRecord, showResurrectable bool) SessionRegistry {
	records := make([]SessionRecord, 0, len(live)+len(resurrectable))
	liveNames := make(map[string]bool, len(live))
	for _, r := range live {
		if r.Name == "" {
			continue
		}
		liveNames[r.Name] = true
		records = append(records, r)
	}

	if showResurrectable {
		for _, r := range resurrectable {
			if r.Name == "" || liveNames[r.Name] {
				continue
			}
			r.Status = StatusResurrectable
			records = append(records, r)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return SessionRegistry{records: records}
}

// Records returns all session records in the registry, ordered by name.
func (r SessionRegistry) Records() []SessionRecord {
	return r.records
}

// MaxSessionNameBytes is the longest session name the host accepts.
const MaxSessionNameBytes = 108

// ValidateSessionName checks the host's naming rules for a session about to
// be created: length bound, no path separators, and not shadowing the session
// the user is currently attached to.
func ValidateSessionName(name, currentSession string) error {
	if name == "" {
		return ErrEmptySessionName
	}
	if len(name) >= MaxSessionNameBytes {
		return ErrSessionNameTooLong
	}
	if strings.Contains(name, "/") {
		return ErrSessionNameHasSlash
	}
	if currentSession != "" && name == currentSession {
		return ErrSessionNameIsCurrent
	}
	return nil
}

// IsIncrementedName reports whether name is base plus a numeric suffix joined
// by separator, e.g. "api.2" increments "api" with separator ".".
func IsIncrementedName(name, base, separator string) bool {
	if separator == "" || len(name) <= len(base)+len(separator) {
		return false
	}
	if !strings.HasPrefix(name, base+separator) {
		return false
	}
	suffix := name[len(base)+len(separator):]
	n, err := strconv.Atoi(suffix)
	return err == nil && n >= 0
}
