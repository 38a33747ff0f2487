package shift

import (
	"context"
	"time"
)

// Repository yields normalized shift records for one location and date.
// Implementations normalize raw provider payloads at this boundary and
// drop (with a log line) any record that fails structural validation.
type Repository interface {
	// ListByLocationAndDate returns every valid shift worked at the
	// location on the date. An empty slice means no labor record exists
	// for that day.
	ListByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]ShiftRecord, error)

	// ListLocationIDs returns every location that has shift data.
	ListLocationIDs(ctx context.Context) ([]string, error)
}
