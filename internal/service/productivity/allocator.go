package productivity

import (
	"sort"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/revenue"
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
)

// kitchenServiceWeights returns how much of a worker's hours count on
// the kitchen and service sides of the house. Split teams carry their
// configured ratio; Management and Other are excluded from relative
// sharing.
func kitchenServiceWeights(w productivity.WorkerHourlyHours) (kitchen, service float64) {
	if w.Split != nil {
		return w.Split.Kitchen, w.Split.Service
	}
	switch w.Category {
	case team.CategoryKitchen:
		return 1, 0
	case team.CategoryService:
		return 0, 1
	default:
		return 0, 0
	}
}

// Allocate distributes each hour's division revenue across the workers
// active in that hour, proportional to their fractional hours.
//
// Kitchen-side hours share the Food division's hourly revenue. The
// service side shares the full venue's hourly output: the "All" row
// when the POS provides one, otherwise Food + Beverage. For every slot
// with a non-zero denominator the shares sum exactly to the source
// amount; slots nobody worked are skipped, their revenue stays
// unattributed house revenue.
//
// tagged carries worker-tagged POS revenue and feeds AbsoluteRevenue
// unchanged; workers the POS never tags get 0.
func Allocate(
	workers []productivity.WorkerHourlyHours,
	hourly []revenue.HourlyDivisionRevenue,
	tagged map[string]float64,
) []productivity.AttributedRevenue {
	rows := make(map[string]*productivity.AttributedRevenue)
	for _, w := range workers {
		row, ok := rows[w.WorkerID]
		if !ok {
			row = &productivity.AttributedRevenue{
				WorkerID:   w.WorkerID,
				WorkerName: w.WorkerName,
				LocationID: w.LocationID,
				Date:       w.Date,
			}
			rows[w.WorkerID] = row
		}
		row.HoursWorked += w.TotalHours
	}

	// Per-hour pools of ratio-scaled fractional hours.
	kitchenPool := make(map[int]map[string]float64)
	servicePool := make(map[int]map[string]float64)
	for _, w := range workers {
		kw, sw := kitchenServiceWeights(w)
		if kw == 0 && sw == 0 {
			continue
		}
		for hour, frac := range w.Hours {
			if frac <= 0 {
				continue
			}
			if kw > 0 {
				addToPool(kitchenPool, hour, w.WorkerID, frac*kw)
			}
			if sw > 0 {
				addToPool(servicePool, hour, w.WorkerID, frac*sw)
			}
		}
	}

	// Hourly revenue per division.
	food := make(map[int]float64)
	beverage := make(map[int]float64)
	all := make(map[int]float64)
	hasAll := make(map[int]bool)
	for _, r := range hourly {
		switch r.Division {
		case revenue.DivisionFood:
			food[r.Hour] += r.Amount
		case revenue.DivisionBeverage:
			beverage[r.Hour] += r.Amount
		case revenue.DivisionAll:
			all[r.Hour] += r.Amount
			hasAll[r.Hour] = true
		}
	}

	for hour := 0; hour < 24; hour++ {
		allocateSlot(rows, kitchenPool[hour], food[hour])

		combined := food[hour] + beverage[hour]
		if hasAll[hour] {
			combined = all[hour]
		}
		allocateSlot(rows, servicePool[hour], combined)
	}

	for workerID, amount := range tagged {
		if row, ok := rows[workerID]; ok {
			row.AbsoluteRevenue += amount
		}
	}

	out := make([]productivity.AttributedRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkerID < out[j].WorkerID })
	return out
}

func addToPool(pool map[int]map[string]float64, hour int, workerID string, frac float64) {
	if pool[hour] == nil {
		pool[hour] = make(map[string]float64)
	}
	pool[hour][workerID] += frac
}

// allocateSlot applies the conservation law for one (hour, division):
// share = workerFrac / denominator x amount. Workers are summed in
// sorted order so reruns produce bit-identical results.
func allocateSlot(rows map[string]*productivity.AttributedRevenue, pool map[string]float64, amount float64) {
	if amount <= 0 || len(pool) == 0 {
		return
	}
	workerIDs := make([]string, 0, len(pool))
	for workerID := range pool {
		workerIDs = append(workerIDs, workerID)
	}
	sort.Strings(workerIDs)

	denominator := 0.0
	for _, workerID := range workerIDs {
		denominator += pool[workerID]
	}
	if denominator == 0 {
		return
	}
	for _, workerID := range workerIDs {
		rows[workerID].RelativeRevenue += pool[workerID] / denominator * amount
	}
}
