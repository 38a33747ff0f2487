package productivity

import (
	"sort"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/revenue"
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
)

// Division branch keys of the productivity tree. Food is the kitchen
// side, beverage the service side; overhead carries Management/Other
// hours and cost with no attributed revenue so location-level labor
// cost stays honest.
const (
	BranchFood     = "food"
	BranchBeverage = "beverage"
	BranchOverhead = "overhead"
)

// HierarchyBuilder produces the Division -> Team-Category -> Sub-Team
// -> Worker productivity tree for one (location, date).
type HierarchyBuilder struct {
	classifier *GoalClassifier
}

func NewHierarchyBuilder(classifier *GoalClassifier) *HierarchyBuilder {
	return &HierarchyBuilder{classifier: classifier}
}

// Build rolls hours and cost up from the workers and redistributes the
// authoritative daily division totals back down, proportional to hours
// share at every level. A day with no workers yields nil: absence is
// distinguishable from a zero-valued tree.
//
// A split team contributes to both division branches, each side with
// its ratio-scaled hours and cost. That double placement is intended:
// the two sides are separate sub-team nodes.
func (b *HierarchyBuilder) Build(
	locationID string,
	workers []productivity.WorkerHourlyHours,
	dailyTotals map[revenue.Division]float64,
) *productivity.Node {
	if len(workers) == 0 {
		return nil
	}

	root := newNode(locationID)
	for _, w := range workers {
		kw, sw := kitchenServiceWeights(w)
		switch {
		case kw == 0 && sw == 0:
			addContribution(root, BranchOverhead, string(w.Category), w, 1)
		default:
			if kw > 0 {
				addContribution(root, BranchFood, string(team.CategoryKitchen), w, kw)
			}
			if sw > 0 {
				addContribution(root, BranchBeverage, string(team.CategoryService), w, sw)
			}
		}
	}

	b.redistribute(root, dailyTotals)
	b.finalize(root)
	return root
}

func newNode(name string) *productivity.Node {
	return &productivity.Node{Name: name, Children: map[string]*productivity.Node{}}
}

func child(parent *productivity.Node, key string) *productivity.Node {
	n, ok := parent.Children[key]
	if !ok {
		n = newNode(key)
		parent.Children[key] = n
	}
	return n
}

// addContribution accumulates ratio-scaled hours and cost along the
// division/category/sub-team/worker path.
func addContribution(root *productivity.Node, branch, category string, w productivity.WorkerHourlyHours, weight float64) {
	hours := w.TotalHours * weight
	cost := w.LaborCost * weight

	division := child(root, branch)
	cat := child(division, category)
	subTeam := child(cat, w.TeamName)
	worker := child(subTeam, w.WorkerID)
	worker.Name = w.WorkerName

	for _, n := range []*productivity.Node{root, division, cat, subTeam, worker} {
		n.TotalHours += hours
		n.TotalCost += cost
	}
}

// redistribute assigns each division branch its authoritative daily
// total, then pushes revenue down level by level proportional to each
// child's share of its parent's hours. Revenue in the tree is never
// summed bottom-up from workers.
func (b *HierarchyBuilder) redistribute(root *productivity.Node, dailyTotals map[revenue.Division]float64) {
	food := dailyTotals[revenue.DivisionFood]
	beverage := dailyTotals[revenue.DivisionBeverage]

	// Venues reporting a single combined stream get it divided across
	// the two revenue-bearing branches by hours share.
	if food == 0 && beverage == 0 {
		if combined := dailyTotals[revenue.DivisionAll]; combined > 0 {
			foodHours, beverageHours := 0.0, 0.0
			if n, ok := root.Children[BranchFood]; ok {
				foodHours = n.TotalHours
			}
			if n, ok := root.Children[BranchBeverage]; ok {
				beverageHours = n.TotalHours
			}
			if total := foodHours + beverageHours; total > 0 {
				food = combined * foodHours / total
				beverage = combined * beverageHours / total
			}
		}
	}

	if n, ok := root.Children[BranchFood]; ok {
		n.TotalRevenue = food
		pushDown(n)
	}
	if n, ok := root.Children[BranchBeverage]; ok {
		n.TotalRevenue = beverage
		pushDown(n)
	}
	// Overhead keeps zero revenue.

	for _, key := range sortedKeys(root.Children) {
		root.TotalRevenue += root.Children[key].TotalRevenue
	}
}

func sortedKeys(children map[string]*productivity.Node) []string {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pushDown(parent *productivity.Node) {
	if parent.TotalHours <= 0 {
		return
	}
	for _, c := range parent.Children {
		c.TotalRevenue = parent.TotalRevenue * c.TotalHours / parent.TotalHours
		pushDown(c)
	}
}

// finalize recomputes the derived ratios from each node's own totals
// and labels the node. Ratios are never carried over or averaged from
// children.
func (b *HierarchyBuilder) finalize(n *productivity.Node) {
	n.RevenuePerHour = 0
	if n.TotalHours > 0 {
		n.RevenuePerHour = n.TotalRevenue / n.TotalHours
	}
	n.LaborCostPercentage = 0
	if n.TotalRevenue > 0 {
		n.LaborCostPercentage = n.TotalCost / n.TotalRevenue * 100
	}
	n.Goal = b.classifier.Classify(n.RevenuePerHour, n.LaborCostPercentage)

	for _, c := range n.Children {
		b.finalize(c)
	}
}
