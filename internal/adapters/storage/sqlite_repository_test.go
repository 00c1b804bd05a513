package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salta/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRecordVisitAccumulates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordVisit(ctx, "/home/user/projects/webapp"))
	require.NoError(t, repo.RecordVisit(ctx, "/home/user/projects/webapp"))
	require.NoError(t, repo.RecordVisit(ctx, "/home/user/projects/api"))

	entries, err := repo.Query(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byPath := map[string]float64{}
	for _, e := range entries {
		byPath[e.Path] = e.Score
	}
	// Both visited just now, so the double visit scores double.
	assert.Equal(t, byPath["/home/user/projects/webapp"], 2*byPath["/home/user/projects/api"])
}

func TestQueryEmptyDatabase(t *testing.T) {
	repo := newTestRepository(t)

	entries, err := repo.Query(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResurrectableRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordKilled(ctx, domain.SessionRecord{
		Name:       "webapp",
		WorkingDir: "/home/user/projects/webapp",
	}))
	require.NoError(t, repo.RecordKilled(ctx, domain.SessionRecord{
		Name:       "api",
		WorkingDir: "/home/user/projects/api",
	}))

	records, err := repo.ListResurrectable(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "api", records[0].Name)
	assert.Equal(t, "webapp", records[1].Name)
	assert.Equal(t, domain.StatusResurrectable, records[0].Status)

	require.NoError(t, repo.DeleteResurrectable(ctx, "webapp"))

	records, err = repo.ListResurrectable(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "api", records[0].Name)
}

func TestRecordKilledUpdatesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordKilled(ctx, domain.SessionRecord{
		Name:       "webapp",
		WorkingDir: "/old/path",
	}))
	require.NoError(t, repo.RecordKilled(ctx, domain.SessionRecord{
		Name:       "webapp",
		WorkingDir: "/new/path",
	}))

	records, err := repo.ListResurrectable(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/new/path", records[0].WorkingDir)
}

func TestDeleteResurrectableMissingName(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.DeleteResurrectable(context.Background(), "ghost"))
}
