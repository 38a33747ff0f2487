package productivity

import (
	"github.com/horecalabs/productivity-backend-go/internal/domain/shift"
)

// Decomposer converts one shift into its per-hour fractional-hours map.
type Decomposer struct {
	windowStart int
	windowEnd   int
}

// NewDecomposer takes the inclusive hour window used by the even-spread
// estimate when a shift has no usable timestamps.
func NewDecomposer(windowStart, windowEnd int) *Decomposer {
	return &Decomposer{windowStart: windowStart, windowEnd: windowEnd}
}

// Decompose returns an hour (0-23) to fractional-hours map whose values
// sum to the shift's worked hours. Shifts without usable timestamps,
// and shifts that cross midnight, fall back to spreading the declared
// total evenly across the estimate window: an approximation, not a
// measurement. A shift with neither timestamps nor declared hours
// contributes nothing.
func (d *Decomposer) Decompose(rec shift.ShiftRecord) map[int]float64 {
	if rec.HasTimestamps() && rec.End.After(*rec.Start) && sameCalendarDay(rec) {
		return d.exact(rec)
	}
	return d.estimate(rec)
}

func sameCalendarDay(rec shift.ShiftRecord) bool {
	sy, sm, sd := rec.Start.Date()
	ey, em, ed := rec.End.Date()
	return sy == ey && sm == em && sd == ed
}

func (d *Decomposer) exact(rec shift.ShiftRecord) map[int]float64 {
	hours := make(map[int]float64)

	startHour, startMin := rec.Start.Hour(), rec.Start.Minute()
	endHour, endMin := rec.End.Hour(), rec.End.Minute()

	if startHour == endHour {
		if frac := float64(endMin-startMin) / 60; frac > 0 {
			hours[startHour] = frac
		}
		return hours
	}

	hours[startHour] = float64(60-startMin) / 60
	for h := startHour + 1; h < endHour; h++ {
		hours[h] = 1.0
	}
	if endMin > 0 {
		hours[endHour] = float64(endMin) / 60
	}
	return hours
}

func (d *Decomposer) estimate(rec shift.ShiftRecord) map[int]float64 {
	hours := make(map[int]float64)
	if rec.TotalHours <= 0 {
		return hours
	}

	slots := d.windowEnd - d.windowStart + 1
	perSlot := rec.TotalHours / float64(slots)
	// A worker cannot exceed 60 minutes inside one hour bucket.
	if perSlot > 1 {
		perSlot = 1
	}
	for h := d.windowStart; h <= d.windowEnd; h++ {
		hours[h] = perSlot
	}
	return hours
}
