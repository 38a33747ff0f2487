package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNormalize_PrefersProviderFieldOrder(t *testing.T) {
	raw := RawShift{
		ID:           "row-9",
		UserID:       "w-1",
		EmployeeID:   "ignored",
		UserName:     "Ada",
		EmployeeName: "ignored",
		LocationID:   "loc-1",
		Date:         "2025-03-10",
		Team:         "Kitchen",
		TeamName:     "ignored",
		From:         "2025-03-10T09:15:00Z",
		Till:         "2025-03-10T13:45:00Z",
	}

	rec, err := raw.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "w-1", rec.WorkerID)
	assert.Equal(t, "Ada", rec.WorkerName)
	assert.Equal(t, "Kitchen", rec.TeamName)
	require.True(t, rec.HasTimestamps())
	assert.InDelta(t, 4.5, rec.TotalHours, 1e-9)
}

func TestNormalize_FallsBackThroughWorkerIDChain(t *testing.T) {
	raw := RawShift{
		EmployeeID: "emp-7",
		LocationID: "loc-1",
		Date:       "2025-03-10",
		Hours:      f(6),
	}

	rec, err := raw.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "emp-7", rec.WorkerID)
	assert.InDelta(t, 6, rec.TotalHours, 1e-9)
	assert.False(t, rec.HasTimestamps())
}

func TestNormalize_BreakReducesWorkedHours(t *testing.T) {
	raw := RawShift{
		UserID:       "w-1",
		LocationID:   "loc-1",
		Date:         "2025-03-10",
		StartTime:    "2025-03-10T10:00:00Z",
		EndTime:      "2025-03-10T18:00:00Z",
		BreakMinutes: 30,
		HourlyWage:   f(14),
	}

	rec, err := raw.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 7.5, rec.TotalHours, 1e-9)
	assert.InDelta(t, 105, rec.LaborCost, 1e-9)
}

func TestNormalize_DeclaredWageCostWins(t *testing.T) {
	raw := RawShift{
		UserID:     "w-1",
		LocationID: "loc-1",
		Date:       "2025-03-10",
		TotalHours: f(5),
		HourlyWage: f(14),
		WageCost:   f(61.25),
	}

	rec, err := raw.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 61.25, rec.LaborCost, 1e-9)
}

func TestNormalize_StructuralFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  RawShift
		want error
	}{
		{"no worker id", RawShift{LocationID: "loc-1", Date: "2025-03-10"}, ErrMissingWorkerID},
		{"no location", RawShift{UserID: "w-1", Date: "2025-03-10"}, ErrMissingLocation},
		{"bad date", RawShift{UserID: "w-1", LocationID: "loc-1", Date: "10/03/2025"}, ErrInvalidDate},
		{"negative break", RawShift{UserID: "w-1", LocationID: "loc-1", Date: "2025-03-10", BreakMinutes: -5}, ErrNegativeBreak},
		{"negative hours", RawShift{UserID: "w-1", LocationID: "loc-1", Date: "2025-03-10", Hours: f(-2)}, ErrNegativeHours},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.raw.Normalize()
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestNormalize_UnparsableTimestampsKeepDeclaredHours(t *testing.T) {
	raw := RawShift{
		UserID:     "w-1",
		LocationID: "loc-1",
		Date:       "2025-03-10",
		From:       "around nine",
		Till:       "late",
		TotalHours: f(8),
	}

	rec, err := raw.Normalize()
	require.NoError(t, err)
	assert.False(t, rec.HasTimestamps())
	assert.InDelta(t, 8, rec.TotalHours, 1e-9)
}
