package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrecencyIndex_OrdersByDescendingScore(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/low", Score: 1},
		{Path: "/high", Score: 10},
		{Path: "/mid", Score: 5},
	})

	entries := index.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "/high", entries[0].Path)
	assert.Equal(t, "/mid", entries[1].Path)
	assert.Equal(t, "/low", entries[2].Path)
}

func TestNewFrecencyIndex_TiesBreakByPath(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/b", Score: 2},
		{Path: "/a", Score: 2},
	})

	entries := index.Entries()
	assert.Equal(t, "/a", entries[0].Path)
	assert.Equal(t, "/b", entries[1].Path)
}

func TestNewFrecencyIndex_DuplicatesKeepHigherScore(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/dup", Score: 3},
		{Path: "/dup", Score: 7},
		{Path: "/dup", Score: 5},
	})

	entries := index.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 7.0, entries[0].Score)
}

func TestNewFrecencyIndex_DuplicateTieLaterWins(t *testing.T) {
	index := NewFrecencyIndex([]DirectoryEntry{
		{Path: "/dup", Score: 3},
		{Path: "/dup", Score: 3},
	})

	require.Equal(t, 1, index.Len())
}

func TestNewFrecencyIndex_EmptySnapshot(t *testing.T) {
	index := NewFrecencyIndex(nil)
	assert.Empty(t, index.Entries())
	assert.Equal(t, 0, index.Len())
}
