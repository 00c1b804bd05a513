package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionRegistry_StaleResurrectableDropped(t *testing.T) {
	live := []SessionRecord{{Name: "api", Status: StatusActive}}
	resurrectable := []SessionRecord{
		{Name: "api"},
		{Name: "old"},
	}

	registry := NewSessionRegistry(live, resurrectable, true)

	records := registry.Records()
	assert.Len(t, records, 2)
	for _, r := range records {
		if r.Name == "api" {
			assert.Equal(t, StatusActive, r.Status, "live status takes precedence over stale resurrectable")
		}
		if r.Name == "old" {
			assert.Equal(t, StatusResurrectable, r.Status)
		}
	}
}

func TestNewSessionRegistry_ResurrectableHiddenByDefault(t *testing.T) {
	registry := NewSessionRegistry(nil, []SessionRecord{{Name: "old"}}, false)
	assert.Empty(t, registry.Records())
}

func TestSessionStatus_Richer(t *testing.T) {
	assert.True(t, StatusCurrent.Richer(StatusActive))
	assert.True(t, StatusActive.Richer(StatusResurrectable))
	assert.False(t, StatusResurrectable.Richer(StatusCurrent))
	assert.False(t, StatusActive.Richer(StatusActive))
}

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name        string
		sessionName string
		current     string
		wantErr     error
	}{
		{"valid", "projects.foo", "other", nil},
		{"empty", "", "", ErrEmptySessionName},
		{"too long", strings.Repeat("x", 108), "", ErrSessionNameTooLong},
		{"contains slash", "a/b", "", ErrSessionNameHasSlash},
		{"same as current", "here", "here", ErrSessionNameIsCurrent},
		{"no current session", "here", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionName(tt.sessionName, tt.current)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsIncrementedName(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		expected bool
	}{
		{"api.2", "api", true},
		{"api.10", "api", true},
		{"api", "api", false},
		{"api.x", "api", false},
		{"api.", "api", false},
		{"api.2.3", "api", false},
		{"apix.2", "api", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsIncrementedName(tt.name, tt.base, "."))
		})
	}
}
