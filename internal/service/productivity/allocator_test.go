package productivity

import (
	"testing"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/revenue"
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func worker(id string, category team.Category, split *team.SplitRatio, hours map[int]float64) productivity.WorkerHourlyHours {
	total := 0.0
	for _, v := range hours {
		total += v
	}
	return productivity.WorkerHourlyHours{
		WorkerID:   id,
		WorkerName: id,
		LocationID: "loc-1",
		Date:       testDate,
		TeamName:   string(category),
		Category:   category,
		Split:      split,
		Hours:      hours,
		TotalHours: total,
	}
}

func foodRow(hour int, amount float64) revenue.HourlyDivisionRevenue {
	return revenue.HourlyDivisionRevenue{
		LocationID: "loc-1", Date: testDate, Hour: hour,
		Division: revenue.DivisionFood, Amount: amount,
	}
}

func allRow(hour int, amount float64) revenue.HourlyDivisionRevenue {
	return revenue.HourlyDivisionRevenue{
		LocationID: "loc-1", Date: testDate, Hour: hour,
		Division: revenue.DivisionAll, Amount: amount,
	}
}

func TestAllocate_SoleKitchenWorkerReceivesFullHourlyRevenue(t *testing.T) {
	// Shift 09:15-13:45, only kitchen worker that day.
	w := worker("cook-1", team.CategoryKitchen, nil, map[int]float64{
		9: 0.75, 10: 1, 11: 1, 12: 1, 13: 0.75,
	})
	hourly := []revenue.HourlyDivisionRevenue{
		foodRow(9, 100), foodRow(10, 200), foodRow(11, 200), foodRow(12, 200), foodRow(13, 50),
	}

	rows := Allocate([]productivity.WorkerHourlyHours{w}, hourly, nil)

	require.Len(t, rows, 1)
	// 0.75x100 + 200 + 200 + 200 + 0.75x50
	assert.InDelta(t, 687.50, rows[0].RelativeRevenue, 1e-9)
	assert.Zero(t, rows[0].AbsoluteRevenue)
}

func TestAllocate_TwoServiceWorkersSplitTheHourEvenly(t *testing.T) {
	w1 := worker("srv-1", team.CategoryService, nil, map[int]float64{12: 1})
	w2 := worker("srv-2", team.CategoryService, nil, map[int]float64{12: 1})
	hourly := []revenue.HourlyDivisionRevenue{allRow(12, 80)}

	rows := Allocate([]productivity.WorkerHourlyHours{w1, w2}, hourly, nil)

	require.Len(t, rows, 2)
	assert.InDelta(t, 40, rows[0].RelativeRevenue, 1e-9)
	assert.InDelta(t, 40, rows[1].RelativeRevenue, 1e-9)
}

func TestAllocate_ConservationPerSlot(t *testing.T) {
	workers := []productivity.WorkerHourlyHours{
		worker("cook-1", team.CategoryKitchen, nil, map[int]float64{11: 0.5, 12: 1}),
		worker("cook-2", team.CategoryKitchen, nil, map[int]float64{12: 0.25}),
		worker("dish-1", team.CategoryKitchen, &team.SplitRatio{Kitchen: 0.5, Service: 0.5},
			map[int]float64{11: 1, 12: 1}),
	}
	hourly := []revenue.HourlyDivisionRevenue{
		foodRow(11, 120), foodRow(12, 300),
	}

	rows := Allocate(workers, hourly, nil)

	// No "all"/beverage revenue, so the service side allocates nothing
	// and the kitchen-side shares must sum to the source amounts.
	total := 0.0
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.RelativeRevenue, 0.0)
		total += r.RelativeRevenue
	}
	assert.InDelta(t, 420, total, 1e-9)
}

func TestAllocate_ServiceSideCombinesFoodAndBeverageWithoutAllRow(t *testing.T) {
	w := worker("srv-1", team.CategoryService, nil, map[int]float64{18: 1})
	hourly := []revenue.HourlyDivisionRevenue{
		{LocationID: "loc-1", Date: testDate, Hour: 18, Division: revenue.DivisionFood, Amount: 60},
		{LocationID: "loc-1", Date: testDate, Hour: 18, Division: revenue.DivisionBeverage, Amount: 40},
	}

	rows := Allocate([]productivity.WorkerHourlyHours{w}, hourly, nil)

	require.Len(t, rows, 1)
	assert.InDelta(t, 100, rows[0].RelativeRevenue, 1e-9)
}

func TestAllocate_ManagementExcludedFromSharing(t *testing.T) {
	mgr := worker("mgr-1", team.CategoryManagement, nil, map[int]float64{12: 1})
	cook := worker("cook-1", team.CategoryKitchen, nil, map[int]float64{12: 1})
	hourly := []revenue.HourlyDivisionRevenue{foodRow(12, 90)}

	rows := Allocate([]productivity.WorkerHourlyHours{mgr, cook}, hourly, nil)

	require.Len(t, rows, 2)
	byID := map[string]productivity.AttributedRevenue{}
	for _, r := range rows {
		byID[r.WorkerID] = r
	}
	assert.InDelta(t, 90, byID["cook-1"].RelativeRevenue, 1e-9)
	assert.Zero(t, byID["mgr-1"].RelativeRevenue)
}

func TestAllocate_EmptyHourIsUnattributedHouseRevenue(t *testing.T) {
	w := worker("cook-1", team.CategoryKitchen, nil, map[int]float64{9: 1})
	hourly := []revenue.HourlyDivisionRevenue{
		foodRow(9, 100),
		foodRow(15, 500), // nobody worked hour 15
	}

	rows := Allocate([]productivity.WorkerHourlyHours{w}, hourly, nil)

	require.Len(t, rows, 1)
	assert.InDelta(t, 100, rows[0].RelativeRevenue, 1e-9)
}

func TestAllocate_AbsoluteRevenueBypassesAllocation(t *testing.T) {
	w1 := worker("srv-1", team.CategoryService, nil, map[int]float64{12: 1})
	w2 := worker("srv-2", team.CategoryService, nil, map[int]float64{12: 1})
	hourly := []revenue.HourlyDivisionRevenue{allRow(12, 80)}
	tagged := map[string]float64{"srv-1": 55}

	rows := Allocate([]productivity.WorkerHourlyHours{w1, w2}, hourly, tagged)

	byID := map[string]productivity.AttributedRevenue{}
	for _, r := range rows {
		byID[r.WorkerID] = r
	}
	assert.InDelta(t, 55, byID["srv-1"].AbsoluteRevenue, 1e-9)
	assert.Zero(t, byID["srv-2"].AbsoluteRevenue)
	// Relative sharing is untouched by tagging.
	assert.InDelta(t, 40, byID["srv-1"].RelativeRevenue, 1e-9)
	assert.InDelta(t, 40, byID["srv-2"].RelativeRevenue, 1e-9)
}

func TestAllocate_SplitTeamSharesBothSides(t *testing.T) {
	dish := worker("dish-1", team.CategoryKitchen, &team.SplitRatio{Kitchen: 0.5, Service: 0.5},
		map[int]float64{12: 1})
	cook := worker("cook-1", team.CategoryKitchen, nil, map[int]float64{12: 0.5})
	hourly := []revenue.HourlyDivisionRevenue{foodRow(12, 100), allRow(12, 200)}

	rows := Allocate([]productivity.WorkerHourlyHours{dish, cook}, hourly, nil)

	byID := map[string]productivity.AttributedRevenue{}
	for _, r := range rows {
		byID[r.WorkerID] = r
	}
	// Kitchen pool: dish 0.5, cook 0.5 -> 50 each from the 100.
	// Service pool: dish alone with 0.5 -> all 200.
	assert.InDelta(t, 250, byID["dish-1"].RelativeRevenue, 1e-9)
	assert.InDelta(t, 50, byID["cook-1"].RelativeRevenue, 1e-9)
}
