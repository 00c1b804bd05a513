package domain

import "sort"

// DirectoryEntry is one ranked directory from the frecency source.
type DirectoryEntry struct {
	Path  string
	Score float64
}

// FrecencyIndex is a deduplicated, rank-ordered view of one frecency
// snapshot. It is immutable after construction.
type FrecencyIndex struct {
	entries []DirectoryEntry
}

// NewFrecencyIndex builds an index from raw source entries. Duplicate paths
// collapse to a single entry keeping the highest score; ties keep the entry
// seen last. Entries are ordered by descending score, equal scores by path.
func NewFrecencyIndex(entries []DirectoryEntry) FrecencyIndex {
	best := make(map[string]DirectoryEntry, len(entries))
	for _, e := range entries {
		if prev, ok := best[e.Path]; ok && prev.Score > e.Score {
			continue
		}
		best[e.Path] = e
	}

	deduped := make([]DirectoryEntry, 0, len(best))
	for _, e := range best {
		deduped = append(deduped, e)
	}
	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].Score != deduped[j].Score {
			return deduped[i].Score > deduped[j].Score
		}
		return deduped[i].Path < deduped[j].Path
	})

	return FrecencyIndex{entries: deduped}
}

// Entries returns the ranked entries. Callers must not mutate the slice.
func (i FrecencyIndex) Entries() []DirectoryEntry {
	return i.entries
}

// Len returns the number of distinct directories in the index.
func (i FrecencyIndex) Len() int {
	return len(i.entries)
}
