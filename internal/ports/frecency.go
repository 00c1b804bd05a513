package ports

import (
	"context"

	"salta/internal/domain"
)

// FrecencySource produces one ranked-directory snapshot per call. An empty
// snapshot is valid (no history yet) and must not be treated as an error.
type FrecencySource interface {
	Query(ctx context.Context) ([]domain.DirectoryEntry, error)
}

// VisitRecorder records a directory access so the fallback ranking stays
// useful when the primary source is unavailable.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, path string) error
}
