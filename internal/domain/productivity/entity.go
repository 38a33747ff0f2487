package productivity

import (
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
)

// GoalLevel is the ordinal productivity label for a node.
type GoalLevel string

const (
	GoalBad      GoalLevel = "bad"
	GoalNotGreat GoalLevel = "not_great"
	GoalOK       GoalLevel = "ok"
	GoalGreat    GoalLevel = "great"
)

// WorkerHourlyHours is one worker's decomposed day on one team: how
// many fractional hours were worked in each hour bucket, plus the
// category/split resolved from the team name. A worker who works two
// teams on one day yields two entries.
type WorkerHourlyHours struct {
	WorkerID   string
	WorkerName string
	LocationID string
	Date       time.Time
	TeamName   string
	Category   team.Category
	Split      *team.SplitRatio

	// Hours maps hour bucket (0-23) to fractional hours worked in that
	// bucket; each value is within [0, 1].
	Hours map[int]float64

	TotalHours float64
	LaborCost  float64
}

// AttributedRevenue is the flat per-(worker, date) result row.
//
// AbsoluteRevenue comes straight from worker-tagged POS transactions
// and is 0 for workers the POS never tags (typically everyone outside
// front-of-house). RelativeRevenue is the allocator's proportionally
// shared number and obeys the hourly conservation law. It is a
// different view than the hierarchy's top-down redistributed revenue;
// tabular worker reports use this row, hierarchical views use the tree.
type AttributedRevenue struct {
	ID              string
	WorkerID        string
	WorkerName      string
	LocationID      string
	Date            time.Time
	HoursWorked     float64
	AbsoluteRevenue float64
	RelativeRevenue float64
}

// Node is one level of the productivity tree. Ratios are always
// recomputed from the node's own totals, never averaged from children.
//
// TotalRevenue holds the top-down redistributed share of the
// authoritative daily division total, not the allocator's hour-level
// number (see AttributedRevenue).
type Node struct {
	Name                string           `json:"name"`
	TotalHours          float64          `json:"total_hours"`
	TotalCost           float64          `json:"total_cost"`
	TotalRevenue        float64          `json:"total_revenue"`
	RevenuePerHour      float64          `json:"revenue_per_hour"`
	LaborCostPercentage float64          `json:"labor_cost_percentage"`
	Goal                GoalLevel        `json:"goal"`
	Children            map[string]*Node `json:"children,omitempty"`
}

// Run is the derived artifact for one (location, date) unit. Reruns
// overwrite the prior artifact; identical inputs yield identical trees.
type Run struct {
	ID         string
	LocationID string
	Date       time.Time
	Tree       *Node
	Workers    []AttributedRevenue
	ComputedAt time.Time
}
