package storage

import (
	"time"

	"salta/internal/domain"
)

// visitModelToEntry converts a visit row to a ranked directory entry.
func visitModelToEntry(m VisitModel, now time.Time) domain.DirectoryEntry {
	return domain.DirectoryEntry{
		Path:  m.Path,
		Score: frecencyScore(m.VisitCount, m.LastVisit, now),
	}
}

// frecencyScore weighs the visit count by recency, so a directory visited
// often last month still loses to one visited a few times today.
func frecencyScore(visitCount int64, lastVisit, now time.Time) float64 {
	rank := float64(visitCount)
	age := now.Sub(lastVisit)
	switch {
	case age < time.Hour:
		return rank * 4
	case age < 24*time.Hour:
		return rank * 2
	case age < 7*24*time.Hour:
		return rank / 2
	default:
		return rank / 4
	}
}

// resurrectableModelToDomain converts a stored killed session to a record.
func resurrectableModelToDomain(m ResurrectableModel) domain.SessionRecord {
	return domain.SessionRecord{
		Name:       m.Name,
		Status:     domain.StatusResurrectable,
		WorkingDir: m.WorkingDir,
		LastSeen:   m.LastSeen,
	}
}

// domainToResurrectableModel converts a session record for storage.
func domainToResurrectableModel(rec domain.SessionRecord) ResurrectableModel {
	return ResurrectableModel{
		Name:       rec.Name,
		WorkingDir: rec.WorkingDir,
		LastSeen:   rec.LastSeen,
	}
}
