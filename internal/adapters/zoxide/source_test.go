package zoxide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salta/internal/domain"
)

func TestParseQueryOutput(t *testing.T) {
	output := "  112.5 /home/user/projects/webapp\n" +
		"   42.0 /home/user/projects/api\n" +
		"    0.5 /tmp/scratch\n"

	entries := parseQueryOutput(output)

	assert.Equal(t, []domain.DirectoryEntry{
		{Path: "/home/user/projects/webapp", Score: 112.5},
		{Path: "/home/user/projects/api", Score: 42.0},
		{Path: "/tmp/scratch", Score: 0.5},
	}, entries)
}

func TestParseQueryOutputSkipsMalformedLines(t *testing.T) {
	output := "  10.0 /home/user/a\n" +
		"not-a-score /home/user/b\n" +
		"  5.0\n" +
		"\n" +
		"   2.0 /home/user/c\n"

	entries := parseQueryOutput(output)

	assert.Equal(t, []domain.DirectoryEntry{
		{Path: "/home/user/a", Score: 10.0},
		{Path: "/home/user/c", Score: 2.0},
	}, entries)
}

func TestParseQueryOutputPreservesSpacesInPaths(t *testing.T) {
	entries := parseQueryOutput("  3.0 /home/user/my projects/web app\n")

	assert.Len(t, entries, 1)
	assert.Equal(t, "/home/user/my projects/web app", entries[0].Path)
	assert.Equal(t, 3.0, entries[0].Score)
}

func TestParseQueryOutputEmpty(t *testing.T) {
	assert.Empty(t, parseQueryOutput(""))
	assert.Empty(t, parseQueryOutput("\n\n"))
}
