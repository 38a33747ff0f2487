package productivity

import (
	"testing"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func mapSum(m map[int]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

func TestDecompose_SpansMultipleHours(t *testing.T) {
	d := NewDecomposer(10, 17)

	rec := shift.ShiftRecord{
		Start:      ts(t, "2025-03-10T09:15:00Z"),
		End:        ts(t, "2025-03-10T13:45:00Z"),
		TotalHours: 4.5,
	}

	hours := d.Decompose(rec)

	assert.InDelta(t, 0.75, hours[9], 1e-9)
	assert.InDelta(t, 1.0, hours[10], 1e-9)
	assert.InDelta(t, 1.0, hours[11], 1e-9)
	assert.InDelta(t, 1.0, hours[12], 1e-9)
	assert.InDelta(t, 0.75, hours[13], 1e-9)
	assert.Len(t, hours, 5)
	assert.InDelta(t, rec.TotalHours, mapSum(hours), 1e-9)
}

func TestDecompose_SameHour(t *testing.T) {
	d := NewDecomposer(10, 17)

	rec := shift.ShiftRecord{
		Start: ts(t, "2025-03-10T14:10:00Z"),
		End:   ts(t, "2025-03-10T14:40:00Z"),
	}

	hours := d.Decompose(rec)

	require.Len(t, hours, 1)
	assert.InDelta(t, 0.5, hours[14], 1e-9)
}

func TestDecompose_EndsOnTheHour(t *testing.T) {
	d := NewDecomposer(10, 17)

	rec := shift.ShiftRecord{
		Start: ts(t, "2025-03-10T12:00:00Z"),
		End:   ts(t, "2025-03-10T15:00:00Z"),
	}

	hours := d.Decompose(rec)

	// The end hour gets nothing when the shift ends exactly on it.
	require.Len(t, hours, 3)
	assert.InDelta(t, 1.0, hours[12], 1e-9)
	assert.InDelta(t, 1.0, hours[13], 1e-9)
	assert.InDelta(t, 1.0, hours[14], 1e-9)
}

func TestDecompose_MissingTimestampsSpreadsDeclaredHours(t *testing.T) {
	d := NewDecomposer(10, 17)

	rec := shift.ShiftRecord{TotalHours: 4}

	hours := d.Decompose(rec)

	require.Len(t, hours, 8)
	for h := 10; h <= 17; h++ {
		assert.InDelta(t, 0.5, hours[h], 1e-9)
	}
	assert.InDelta(t, 4.0, mapSum(hours), 1e-9)
}

func TestDecompose_OvernightFallsBackToEstimate(t *testing.T) {
	d := NewDecomposer(10, 17)

	rec := shift.ShiftRecord{
		Start:      ts(t, "2025-03-10T22:00:00Z"),
		End:        ts(t, "2025-03-11T02:00:00Z"),
		TotalHours: 4,
	}

	hours := d.Decompose(rec)

	require.Len(t, hours, 8)
	assert.InDelta(t, 4.0, mapSum(hours), 1e-9)
}

func TestDecompose_NoDataContributesNothing(t *testing.T) {
	d := NewDecomposer(10, 17)

	hours := d.Decompose(shift.ShiftRecord{})

	assert.Empty(t, hours)
}

func TestDecompose_EstimateCapsSlotAtOneHour(t *testing.T) {
	d := NewDecomposer(10, 11)

	rec := shift.ShiftRecord{TotalHours: 6}

	hours := d.Decompose(rec)

	for h, frac := range hours {
		assert.LessOrEqual(t, frac, 1.0, "hour %d", h)
		assert.GreaterOrEqual(t, frac, 0.0, "hour %d", h)
	}
}
