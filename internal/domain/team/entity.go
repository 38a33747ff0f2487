package team

// Category is the coarse grouping of raw team names used for revenue
// attribution.
type Category string

const (
	CategoryKitchen    Category = "kitchen"
	CategoryService    Category = "service"
	CategoryManagement Category = "management"
	CategoryOther      Category = "other"
)

// SplitRatio divides a hybrid team's hours and cost between the
// kitchen and service sides of the house. Kitchen + Service must equal
// 1.0; this is enforced when the mapping set is loaded, not per run.
type SplitRatio struct {
	Kitchen float64
	Service float64
}

// CategoryMapping maps one normalized raw team name to a category,
// optionally with a split ratio for hybrid teams. The mapping table is
// configuration: loaded once, immutable during a run.
type CategoryMapping struct {
	TeamName string
	Category Category
	Split    *SplitRatio
}
