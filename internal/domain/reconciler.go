package domain

import (
	"log/slog"
	"sort"
)

// ReconcileOptions carries the configuration the reconciler needs.
type ReconcileOptions struct {
	Separator string
	BasePaths []string
}

// Reconcile merges the frecency index and session registry into one unified
// candidate list: directory-backed candidates in frecency order, then
// session-only candidates sorted by name. Every display name in the output is
// unique; the claim set spans the entire pass.
//
// Sessions link to directories by working-directory equality first, resolved
// display name second, with incremented-name variants ("api.2" for "api") as
// a last resort. Sessions left unlinked become session-only candidates.
func Reconcile(index FrecencyIndex, registry SessionRegistry, opts ReconcileOptions, log *slog.Logger) []Candidate {
	sessions := registry.Records()
	linked := make([]bool, len(sessions))
	claimed := NewClaimSet()
	candidates := make([]Candidate, 0, index.Len()+len(sessions))

	for _, dir := range index.Entries() {
		name, err := ResolveName(dir.Path, opts.BasePaths, opts.Separator, claimed)
		if err != nil {
			// Invariant violation for this one candidate; the rest proceed.
			if log != nil {
				log.Error("Dropping candidate, name resolution failed",
					"path", dir.Path, "error", err)
			}
			continue
		}

		cand := Candidate{
			Key:         dir.Path,
			DisplayName: name,
			Path:        dir.Path,
			Score:       dir.Score,
			Kind:        KindDirectory,
		}

		if idx := linkSession(sessions, linked, dir.Path, name, opts.Separator); idx >= 0 {
			linked[idx] = true
			rec := sessions[idx]
			cand.Session = &rec
			cand.Kind = KindLinked
		}

		candidates = append(candidates, cand)
	}

	var orphans []Candidate
	for i, rec := range sessions {
		if linked[i] {
			continue
		}
		rec := rec
		name := rec.Name
		if claimed.Claimed(name) {
			// A session named like a resolved directory links by name above,
			// so this only happens on pathological input. Resolve it like any
			// other string collision rather than dropping the session.
			unique, err := claimWithSuffix(name, opts.Separator, claimed)
			if err != nil {
				if log != nil {
					log.Error("Dropping session candidate, name resolution failed",
						"session", rec.Name, "error", err)
				}
				continue
			}
			name = unique
		} else {
			claimed.Claim(name)
		}
		orphans = append(orphans, Candidate{
			Key:         rec.Name,
			DisplayName: name,
			Session:     &rec,
			Kind:        KindSession,
		})
	}
	sort.SliceStable(orphans, func(i, j int) bool {
		return orphans[i].DisplayName < orphans[j].DisplayName
	})

	return append(candidates, orphans...)
}

// linkSession finds the best unlinked session for a directory. Path equality
// is the primary key, name equality the fallback, incremented names last.
// Among equal matches the richer status wins (current > active > resurrectable).
func linkSession(sessions []SessionRecord, linked []bool, path, name, separator string) int {
	best := -1
	bestTier := 0 // 3 = path match, 2 = exact name, 1 = incremented name

	for i, rec := range sessions {
		if linked[i] {
			continue
		}
		var tier int
		switch {
		case rec.WorkingDir != "" && rec.WorkingDir == path:
			tier = 3
		case rec.Name == name:
			tier = 2
		case IsIncrementedName(rec.Name, name, separator):
			tier = 1
		default:
			continue
		}
		if tier > bestTier || (tier == bestTier && best >= 0 && rec.Status.Richer(sessions[best].Status)) {
			best = i
			bestTier = tier
		}
	}
	return best
}
