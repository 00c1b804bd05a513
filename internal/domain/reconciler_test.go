package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconcileOpts() ReconcileOptions {
	return ReconcileOptions{Separator: "."}
}

func TestReconcile_ScenarioFromHistory(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/home/user/projects/foo", Score: 10},
		{Path: "/home/user/projects/bar", Score: 5},
	})
	registry := NewSessionRegistry(nil, nil, false)

	candidates := Reconcile(index, registry, ReconcileOptions{
		Separator: ".",
		BasePaths: []string{"/home/user"},
	}, nil)

	require.Len(t, candidates, 2)
	assert.Equal(t, "projects.foo", candidates[0].DisplayName)
	assert.Equal(t, "projects.bar", candidates[1].DisplayName)
	assert.Equal(t, KindDirectory, candidates[0].Kind)
}

func TestReconcile_DisplayNamesAreUnique(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/a/app", Score: 9},
		{Path: "/b/app", Score: 8},
		{Path: "/c/app", Score: 7},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "standalone", Status: StatusActive},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	seen := make(map[string]bool)
	for _, c := range candidates {
		assert.False(t, seen[c.DisplayName], "duplicate display name %q", c.DisplayName)
		seen[c.DisplayName] = true
	}
	require.Len(t, candidates, 4)
}

func TestReconcile_LinksSessionByWorkingDir(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/work/api", Score: 3},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "totally-different", Status: StatusActive, WorkingDir: "/work/api"},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	require.Len(t, candidates, 1, "linked session must not appear twice")
	assert.Equal(t, KindLinked, candidates[0].Kind)
	require.NotNil(t, candidates[0].Session)
	assert.Equal(t, "totally-different", candidates[0].Session.Name)
}

func TestReconcile_LinksSessionByResolvedName(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/work/api", Score: 3},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "api", Status: StatusActive},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	require.Len(t, candidates, 1)
	assert.Equal(t, KindLinked, candidates[0].Kind)
}

func TestReconcile_PathLinkBeatsNameLink(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/work/api", Score: 3},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "api", Status: StatusActive, WorkingDir: "/elsewhere"},
		{Name: "by-path", Status: StatusActive, WorkingDir: "/work/api"},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	require.Len(t, candidates, 2)
	require.NotNil(t, candidates[0].Session)
	assert.Equal(t, "by-path", candidates[0].Session.Name)
	// The name-matching session with a different cwd stays session-only.
	assert.Equal(t, KindSession, candidates[1].Kind)
	assert.Equal(t, "api", candidates[1].Session.Name)
}

func TestReconcile_LinksIncrementedSessionName(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/work/api", Score: 3},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "api.2", Status: StatusActive},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	require.Len(t, candidates, 1)
	require.NotNil(t, candidates[0].Session)
	assert.Equal(t, "api.2", candidates[0].Session.Name)
}

func TestReconcile_UnlinkedSessionsAppendedSortedByName(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/work/api", Score: 3},
	})
	registry := NewSessionRegistry([]SessionRecord{
		{Name: "zulu", Status: StatusActive},
		{Name: "alpha", Status: StatusActive},
	}, nil, false)

	candidates := Reconcile(index, registry, reconcileOpts(), nil)

	require.Len(t, candidates, 3)
	assert.Equal(t, "api", candidates[0].DisplayName)
	assert.Equal(t, "alpha", candidates[1].DisplayName)
	assert.Equal(t, "zulu", candidates[2].DisplayName)
	assert.Empty(t, candidates[1].Path, "session-only candidates carry no path")
}

func TestReconcile_Determinism(t *testing.T) {
	raw := []DirectoryEntry{
		{Path: "/b/app", Score: 5},
		{Path: "/a/app", Score: 5},
		{Path: "/c/deep/nested", Score: 2},
	}
	sessions := []SessionRecord{
		{Name: "nested", Status: StatusActive},
		{Name: "loose", Status: StatusActive},
	}

	var previous []Candidate
	for run := 0; run < 5; run++ {
		got := Reconcile(
			NewFrecencyIndex(raw),
			NewSessionRegistry(sessions, nil, false),
			reconcileOpts(), nil)
		if previous != nil {
			require.Equal(t, previous, got, "run %d differs", run)
		}
		previous = got
	}

	// Equal scores tie-break by path, so /a/app resolves first and wins "app".
	assert.Equal(t, "app", previous[0].DisplayName)
	assert.Equal(t, "b.app", previous[1].DisplayName)
}

func TestReconcile_ResurrectableFilteredByConfig(t *testing.T) {
	resurrectable := []SessionRecord{{Name: "old", Status: StatusResurrectable}}

	hidden := Reconcile(NewFrecencyIndex(nil), NewSessionRegistry(nil, resurrectable, false), reconcileOpts(), nil)
	shown := Reconcile(NewFrecencyIndex(nil), NewSessionRegistry(nil, resurrectable, true), reconcileOpts(), nil)

	assert.Empty(t, hidden)
	require.Len(t, shown, 1)
	assert.Equal(t, StatusResurrectable, shown[0].Status())
}

func TestReconcile_EmptyInputs(t *testing.T) {
	candidates := Reconcile(NewFrecencyIndex(nil), NewSessionRegistry(nil, nil, true), reconcileOpts(), nil)
	assert.Empty(t, candidates)
}

func TestReconcile_ManyCollisionsStayUnique(t *testing.T) {
	var raw []DirectoryEntry
	for i := 0; i < 50; i++ {
		raw = append(raw, DirectoryEntry{Path: fmt.Sprintf("/p%d/app", i), Score: float64(100 - i)})
	}

	candidates := Reconcile(NewFrecencyIndex(raw), NewSessionRegistry(nil, nil, false), reconcileOpts(), nil)

	require.Len(t, candidates, 50)
	seen := make(map[string]bool)
	for _, c := range candidates {
		assert.False(t, seen[c.DisplayName], "duplicate %q", c.DisplayName)
		seen[c.DisplayName] = true
	}
}
