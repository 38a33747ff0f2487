package productivity

import (
	"github.com/horecalabs/productivity-backend-go/internal/config"
	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
)

// GoalClassifier maps a node's two derived ratios to an ordinal
// productivity label. Pure decision table; every threshold comes from
// configuration.
type GoalClassifier struct {
	cfg config.GoalsConfig
}

func NewGoalClassifier(cfg config.GoalsConfig) *GoalClassifier {
	return &GoalClassifier{cfg: cfg}
}

// Classify labels one (revenuePerHour, laborCostPercentage) pair.
// A labor cost percentage of 0 means "no revenue recorded" and is
// treated like any other in-budget value; the revenue-per-hour axis
// then decides the label.
func (g *GoalClassifier) Classify(revenuePerHour, laborCostPercentage float64) productivity.GoalLevel {
	switch {
	case laborCostPercentage <= g.cfg.MaxLaborCostGreat && revenuePerHour >= g.cfg.MinRevenuePerHourGreat:
		return productivity.GoalGreat
	case laborCostPercentage <= g.cfg.MaxLaborCostGreat && revenuePerHour >= g.cfg.MinRevenuePerHourOK:
		return productivity.GoalOK
	case laborCostPercentage <= g.cfg.MaxLaborCostOK && revenuePerHour >= g.cfg.MinRevenuePerHourOK:
		return productivity.GoalOK
	case laborCostPercentage <= g.cfg.MaxLaborCostOK:
		return productivity.GoalNotGreat
	default:
		return productivity.GoalBad
	}
}
