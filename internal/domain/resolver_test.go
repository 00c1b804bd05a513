package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveName_LeafSegment(t *testing.T) {
	claimed := NewClaimSet()
	name, err := ResolveName("/srv/projects/webapp", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "webapp", name)
	assert.True(t, claimed.Claimed("webapp"))
}

func TestResolveName_BasePathStripping(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		basePaths []string
		expected  string
	}{
		{"strips base and keeps remainder", "/home/user/projects/foo", []string{"/home/user"}, "projects.foo"},
		{"exact match keeps full path", "/home/user", []string{"/home/user"}, "/home/user"},
		{"longest base wins", "/home/user/work/api", []string{"/home", "/home/user/work"}, "api"},
		{"trailing slash on base is ignored", "/home/user/projects/foo", []string{"/home/user/"}, "projects.foo"},
		{"partial segment is not a prefix", "/home/username/foo", []string{"/home/user"}, "foo"},
		{"no base match uses leaf", "/opt/tools/bar", []string{"/home/user"}, "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := ResolveName(tt.path, tt.basePaths, ".", NewClaimSet())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestResolveName_ConflictClaimsOuterSegment(t *testing.T) {
	claimed := NewClaimSet()

	first, err := ResolveName("/a/app", nil, ".", claimed)
	require.NoError(t, err)
	second, err := ResolveName("/b/app", nil, ".", claimed)
	require.NoError(t, err)

	assert.Equal(t, "app", first)
	assert.Equal(t, "b.app", second)
}

func TestResolveName_ExtendsIntoBasePathOnConflict(t *testing.T) {
	claimed := NewClaimSet()
	claimed.Claim("projects.foo")

	name, err := ResolveName("/home/user/projects/foo", []string{"/home/user"}, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "user.projects.foo", name)
}

func TestResolveName_AbbreviationFallback(t *testing.T) {
	claimed := NewClaimSet()
	claimed.Claim("app")
	claimed.Claim("beta.app")
	claimed.Claim("alpha.beta.app")

	name, err := ResolveName("/alpha/beta/app", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "a.b.app", name, "non-final segments reduce to first character")
}

func TestResolveName_AbbreviationKeepsWordInitials(t *testing.T) {
	claimed := NewClaimSet()
	claimed.Claim("name")
	claimed.Claim("very-long-project.name")

	name, err := ResolveName("/very-long-project/name", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "v-l-p.name", name)
}

func TestResolveName_NumericSuffix(t *testing.T) {
	claimed := NewClaimSet()
	claimed.Claim("app")
	claimed.Claim("a.app")

	name, err := ResolveName("/a/app", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "a.app.2", name)

	// Same input again takes the next free suffix.
	name, err = ResolveName("/a/app", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "a.app.3", name)
}

func TestResolveName_SuffixLoopIsBounded(t *testing.T) {
	claimed := NewClaimSet()
	claimed.Claim("app")
	claimed.Claim("a.app")
	for n := 2; n < 2+maxSuffixAttempts; n++ {
		claimed.Claim(fmt.Sprintf("a.app.%d", n))
	}

	_, err := ResolveName("/a/app", nil, ".", claimed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNameResolutionExhausted)
}

func TestResolveName_EmptySegmentsFallBackToRawPath(t *testing.T) {
	claimed := NewClaimSet()

	name, err := ResolveName("/", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "/", name)

	// The raw path is an ordinary claimed string from here on.
	name, err = ResolveName("/", nil, ".", claimed)
	require.NoError(t, err)
	assert.Equal(t, "/.2", name)
}

func TestResolveName_SeparatorInsideSegment(t *testing.T) {
	// "a.b" the directory collides with "a.b" the joined name; the ordinary
	// uniqueness loop resolves it, nothing is escaped.
	claimed := NewClaimSet()

	first, err := ResolveName("/x/a.b", nil, ".", claimed)
	require.NoError(t, err)
	second, err := ResolveName("/a/b", nil, ".", claimed)
	require.NoError(t, err)
	third, err := ResolveName("/y/a/b", nil, ".", claimed)
	require.NoError(t, err)

	assert.Equal(t, "a.b", first)
	assert.Equal(t, "b", second)
	assert.Equal(t, "y.a.b", third)
}

func TestAbbreviateSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alpha", "a"},
		{"lobster-watcher", "l-w"},
		{"very_long_project", "v-l-p"},
		{"x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, abbreviateSegment(tt.input))
		})
	}
}
