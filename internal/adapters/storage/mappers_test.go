package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salta/internal/domain"
)

func TestFrecencyScore(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastVisit time.Time
		count     int64
		want      float64
	}{
		{"visited within the hour", now.Add(-10 * time.Minute), 10, 40},
		{"visited today", now.Add(-5 * time.Hour), 10, 20},
		{"visited this week", now.Add(-3 * 24 * time.Hour), 10, 5},
		{"visited long ago", now.Add(-30 * 24 * time.Hour), 10, 2.5},
		{"zero visits", now, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, frecencyScore(tt.count, tt.lastVisit, now))
		})
	}
}

func TestFrecencyScoreRecentBeatsFrequent(t *testing.T) {
	now := time.Now().UTC()

	// Three visits today outrank twenty visits a month ago.
	recent := frecencyScore(3, now.Add(-2*time.Hour), now)
	stale := frecencyScore(20, now.Add(-30*24*time.Hour), now)

	assert.Greater(t, recent, stale)
}

func TestResurrectableMapperRoundTrip(t *testing.T) {
	rec := domain.SessionRecord{
		Name:       "webapp",
		Status:     domain.StatusResurrectable,
		WorkingDir: "/home/user/projects/webapp",
		LastSeen:   time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}

	got := resurrectableModelToDomain(domainToResurrectableModel(rec))

	assert.Equal(t, rec, got)
}
