package productivity

import (
	"context"
	"time"
)

// RunRepository persists and serves the derived productivity artifact.
type RunRepository interface {
	// SaveRun overwrites any prior artifact for the run's (location,
	// date) in one transaction. Partially computed units are never
	// persisted.
	SaveRun(ctx context.Context, run Run) error

	// GetTree returns the hierarchy for a (location, date), or
	// ErrRunNotFound when no run exists (absence, not an empty tree).
	GetTree(ctx context.Context, locationID string, date time.Time) (*Node, error)

	// ListWorkerRevenue returns the flat attribution rows for a
	// location over an inclusive date range.
	ListWorkerRevenue(ctx context.Context, locationID string, start, end time.Time) ([]AttributedRevenue, error)
}
