package domain

import (
	"fmt"
	"strings"
)

// maxSuffixAttempts bounds the numeric suffix loop. The loop is logically
// unbounded; hitting the bound means an internal invariant was violated.
const maxSuffixAttempts = 4096

// ClaimSet tracks display names already handed out during one reconciliation
// pass. It is threaded explicitly through every resolve call so resolution
// stays a pure fold over the sorted candidate sequence.
type ClaimSet map[string]struct{}

// NewClaimSet returns an empty claim set.
func NewClaimSet() ClaimSet {
	return make(ClaimSet)
}

// Claim registers a name as taken.
func (c ClaimSet) Claim(name string) {
	c[name] = struct{}{}
}

// Claimed reports whether a name is already taken.
func (c ClaimSet) Claimed(name string) bool {
	_, ok := c[name]
	return ok
}

// ResolveName converts a filesystem path into a unique, human-meaningful
// session name and claims it. Given identical inputs and claim-set contents
// the result is deterministic.
//
// The name is derived by stripping the longest matching base path, then
// joining the trailing path segments with separator, extending outward one
// segment at a time until the name is unique. If every segment is consumed
// and the name still collides, non-final segments are abbreviated to their
// initials; if even that collides, a numeric suffix is appended.
func ResolveName(path string, basePaths []string, separator string, claimed ClaimSet) (string, error) {
	segments, minWidth := nameSegments(path, basePaths)

	if len(segments) == 0 {
		// No usable segments (e.g. "/" or ""): the raw path is the name.
		return claimWithSuffix(path, separator, claimed)
	}

	for width := minWidth; width <= len(segments); width++ {
		name := strings.Join(segments[len(segments)-width:], separator)
		if !claimed.Claimed(name) {
			claimed.Claim(name)
			return name, nil
		}
	}

	// Full-path collision: abbreviate everything but the final segment.
	abbreviated := make([]string, len(segments))
	for i, seg := range segments {
		if i == len(segments)-1 {
			abbreviated[i] = seg
		} else {
			abbreviated[i] = abbreviateSegment(seg)
		}
	}
	name := strings.Join(abbreviated, separator)
	if !claimed.Claimed(name) {
		claimed.Claim(name)
		return name, nil
	}

	return claimWithSuffix(name, separator, claimed)
}

// nameSegments splits path into the segments the join loop operates on and
// the initial join width.
//
// When a base path is a proper prefix of path, the working name is the whole
// remainder, so the loop starts at the remainder's segment count and extends
// into the base path's own segments on collision. When the path exactly
// equals a base path the full original path is used verbatim (exact matches
// are never stripped to empty). With no base path match the loop starts at
// the leaf segment.
func nameSegments(path string, basePaths []string) ([]string, int) {
	for _, base := range basePaths {
		if trimBase(base) == path {
			return []string{path}, 1
		}
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, 0
	}

	longest := ""
	for _, base := range basePaths {
		base = trimBase(base)
		if base == "" {
			continue
		}
		if strings.HasPrefix(path, base+"/") && len(base) > len(longest) {
			longest = base
		}
	}
	if longest == "" {
		return segments, 1
	}

	remainder := len(segments) - len(splitPath(longest))
	if remainder < 1 {
		remainder = 1
	}
	return segments, remainder
}

// claimWithSuffix appends separator plus an integer starting at 2 until the
// name is unique. Exceeding the bound is a fatal internal error for this
// candidate only.
func claimWithSuffix(base, separator string, claimed ClaimSet) (string, error) {
	if !claimed.Claimed(base) {
		claimed.Claim(base)
		return base, nil
	}
	for n := 2; n < 2+maxSuffixAttempts; n++ {
		name := fmt.Sprintf("%s%s%d", base, separator, n)
		if !claimed.Claimed(name) {
			claimed.Claim(name)
			return name, nil
		}
	}
	return "", fmt.Errorf("resolving %q: %w", base, ErrNameResolutionExhausted)
}

// abbreviateSegment reduces a segment to its first character; multi-word
// segments ("lobster-watcher") reduce to word initials ("l-w").
func abbreviateSegment(segment string) string {
	if strings.ContainsAny(segment, "-_") {
		words := strings.FieldsFunc(segment, func(r rune) bool {
			return r == '-' || r == '_'
		})
		initials := make([]string, 0, len(words))
		for _, w := range words {
			initials = append(initials, string([]rune(w)[:1]))
		}
		if len(initials) > 0 {
			return strings.Join(initials, "-")
		}
	}
	runes := []rune(segment)
	if len(runes) == 0 {
		return segment
	}
	return string(runes[:1])
}

// splitPath splits on "/" and drops empty segments.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// trimBase normalizes a configured base path for prefix comparison.
func trimBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "/" {
		return base
	}
	return strings.TrimRight(base, "/")
}
