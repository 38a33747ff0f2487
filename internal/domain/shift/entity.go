package shift

import (
	"time"
)

// ShiftRecord is one worker's shift at one location on one calendar
// date, normalized from the labor provider's raw payload.
type ShiftRecord struct {
	ID           string
	WorkerID     string
	WorkerName   string
	LocationID   string
	Date         time.Time
	TeamName     string
	Start        *time.Time
	End          *time.Time
	BreakMinutes int
	HourlyWage   *float64

	// TotalHours is derived: clocked interval minus break when both
	// timestamps are usable, otherwise the provider's declared hours.
	TotalHours float64

	// LaborCost is TotalHours x HourlyWage, or the provider's declared
	// wage cost when no rate is known.
	LaborCost float64
}

// HasTimestamps reports whether both clock timestamps are present.
func (s ShiftRecord) HasTimestamps() bool {
	return s.Start != nil && s.End != nil
}
