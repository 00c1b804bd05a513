// Package search scores candidates against free-text queries.
//
// Matching is case-insensitive subsequence matching (every query character
// appears in the target in order). Scoring favors long contiguous matched
// runs and matches near the start of the string, with the candidate's
// frecency rank as a tie-breaking weight. The whole thing is a total
// function: no query and no candidate set can make it fail.
package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"salta/internal/domain"
)

// Result is one matched candidate with its combined score.
type Result struct {
	Candidate domain.Candidate
	Score     float64
}

// Scoring weights. Runs dominate position, position dominates rank; the rank
// weight is small enough to only ever break ties between otherwise equal
// matches.
const (
	runWeight      = 100.0
	positionWeight = 1.0
	rankWeight     = 1e-3
)

// Search filters and orders candidates by query. An empty query returns all
// candidates unchanged in their input order. Sorting is stable, so
// equal-score entries keep the reconciler's default order.
func Search(candidates []domain.Candidate, query string) []Result {
	results := make([]Result, 0, len(candidates))

	if query == "" {
		for _, c := range candidates {
			results = append(results, Result{Candidate: c})
		}
		return results
	}

	for _, c := range candidates {
		score, ok := scoreCandidate(c, query)
		if !ok {
			continue
		}
		results = append(results, Result{Candidate: c, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// scoreCandidate matches query against the display name and, for
// directory-backed candidates, the raw path, so a query hitting a stripped
// segment still surfaces the item. The better of the two scores wins.
func scoreCandidate(c domain.Candidate, query string) (float64, bool) {
	best := 0.0
	matched := false

	if s, ok := scoreText(c.DisplayName, query); ok {
		best = s
		matched = true
	}
	if c.Path != "" && c.Path != c.DisplayName {
		if s, ok := scoreText(c.Path, query); ok && (!matched || s > best) {
			best = s
			matched = true
		}
	}
	if !matched {
		return 0, false
	}
	return best + rankWeight*c.Score, true
}

// scoreText runs the subsequence matcher over one target string and derives
// the run/position score from the matched character indices.
func scoreText(text, query string) (float64, bool) {
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return 0, false
	}

	indexes := matches[0].MatchedIndexes
	if len(indexes) == 0 {
		return 0, false
	}

	longest, run := 1, 1
	for i := 1; i < len(indexes); i++ {
		if indexes[i] == indexes[i-1]+1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return runWeight*float64(longest) - positionWeight*float64(indexes[0]), true
}
