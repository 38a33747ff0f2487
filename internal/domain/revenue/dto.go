package revenue

import (
	"strings"

	"github.com/horecalabs/productivity-backend-go/internal/pkg/validator"
)

// RawHourlyRevenue is the loosely-typed hourly row as exported by the
// POS system. Field priority: division > category; amount > revenue.
type RawHourlyRevenue struct {
	LocationID string   `json:"location_id"`
	Date       string   `json:"date"`
	Hour       int      `json:"hour"`
	Division   string   `json:"division"`
	Category   string   `json:"category"`
	Amount     *float64 `json:"amount"`
	Revenue    *float64 `json:"revenue"`
}

// ParseDivision normalizes a division tag. Unknown tags are an error:
// silently bucketing them would break the conservation source-of-truth.
func ParseDivision(s string) (Division, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food", "kitchen":
		return DivisionFood, nil
	case "beverage", "drinks", "bar":
		return DivisionBeverage, nil
	case "all", "total", "":
		return DivisionAll, nil
	default:
		return "", ErrUnknownDivision
	}
}

// Normalize validates a raw POS row and produces one strictly-typed
// HourlyDivisionRevenue. Invalid rows are rejected here, at the
// ingestion boundary, never inside the allocator.
func (r RawHourlyRevenue) Normalize() (HourlyDivisionRevenue, error) {
	if validator.IsEmpty(r.LocationID) {
		return HourlyDivisionRevenue{}, ErrMissingLocation
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return HourlyDivisionRevenue{}, ErrInvalidDate
	}
	if !validator.IsValidHour(r.Hour) {
		return HourlyDivisionRevenue{}, ErrInvalidHour
	}
	division, err := ParseDivision(firstNonEmpty(r.Division, r.Category))
	if err != nil {
		return HourlyDivisionRevenue{}, err
	}

	amount := 0.0
	switch {
	case r.Amount != nil:
		amount = *r.Amount
	case r.Revenue != nil:
		amount = *r.Revenue
	}
	if amount < 0 {
		return HourlyDivisionRevenue{}, ErrNegativeAmount
	}

	return HourlyDivisionRevenue{
		LocationID: strings.TrimSpace(r.LocationID),
		Date:       date,
		Hour:       r.Hour,
		Division:   division,
		Amount:     amount,
	}, nil
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if !validator.IsEmpty(c) {
			return strings.TrimSpace(c)
		}
	}
	return ""
}
