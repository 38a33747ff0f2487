package revenue

import (
	"context"
	"time"
)

// Repository supplies POS revenue snapshots for one location and date.
type Repository interface {
	// ListHourlyByLocationAndDate returns one row per (hour, division)
	// with recognized revenue.
	ListHourlyByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]HourlyDivisionRevenue, error)

	// GetDailyDivisionTotals returns the authoritative per-division
	// totals for the day. By the conservation contract these equal the
	// sums of the hourly rows.
	GetDailyDivisionTotals(ctx context.Context, locationID string, date time.Time) (map[Division]float64, error)

	// ListWorkerTaggedByLocationAndDate returns revenue the POS
	// explicitly attributed to single workers. Empty when the POS does
	// not record staff attribution.
	ListWorkerTaggedByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]WorkerTaggedRevenue, error)
}
