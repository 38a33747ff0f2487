package revenue

import (
	"time"
)

// Division is a high-level revenue category recognized by the POS
// system. "All" denotes the combined venue output, used by providers
// that do not split food and beverage streams.
type Division string

const (
	DivisionFood     Division = "food"
	DivisionBeverage Division = "beverage"
	DivisionAll      Division = "all"
)

// HourlyDivisionRevenue is the revenue recognized for one division in
// one hour bucket at one location. The rows for a (location, date,
// division) sum to that day's recognized revenue for the division.
type HourlyDivisionRevenue struct {
	LocationID string
	Date       time.Time
	Hour       int // 0-23
	Division   Division
	Amount     float64
}

// WorkerTaggedRevenue is revenue the POS attributed to a single worker
// on a transaction (e.g. a server closing their own checks). It feeds
// absolute revenue and bypasses proportional allocation.
type WorkerTaggedRevenue struct {
	LocationID string
	WorkerID   string
	Date       time.Time
	Amount     float64
}
