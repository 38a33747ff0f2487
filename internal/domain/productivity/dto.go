package productivity

import (
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/pkg/validator"
)

// ========================================
// COMPUTE
// ========================================

type ComputeRequest struct {
	LocationID string `json:"location_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComputeSummary struct {
	LocationID    string `json:"location_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	UnitsComputed int    `json:"units_computed"`
	UnitsSkipped  int    `json:"units_skipped"`
	GeneratedAt   string `json:"generated_at"`
}

// ========================================
// TREE VIEW
// ========================================

type TreeRequest struct {
	LocationID string `json:"location_id"`
	Date       string `json:"date"`
}

func (r *TreeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TreeResponse struct {
	LocationID string `json:"location_id"`
	Date       string `json:"date"`
	Tree       *Node  `json:"tree"`
}

// ========================================
// WORKER REVENUE VIEW
// ========================================

type WorkerRevenueRequest struct {
	LocationID string `json:"location_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *WorkerRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerRevenueRow struct {
	WorkerID        string  `json:"worker_id"`
	WorkerName      string  `json:"worker_name"`
	Date            string  `json:"date"`
	HoursWorked     float64 `json:"hours_worked"`
	AbsoluteRevenue float64 `json:"absolute_revenue"`
	RelativeRevenue float64 `json:"relative_revenue"`
}

type WorkerRevenueResponse struct {
	LocationID  string             `json:"location_id"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	GeneratedAt string             `json:"generated_at"`
	Rows        []WorkerRevenueRow `json:"rows"`
}

// NewWorkerRevenueRow flattens an AttributedRevenue for tabular views.
func NewWorkerRevenueRow(a AttributedRevenue) WorkerRevenueRow {
	return WorkerRevenueRow{
		WorkerID:        a.WorkerID,
		WorkerName:      a.WorkerName,
		Date:            a.Date.Format(time.DateOnly),
		HoursWorked:     a.HoursWorked,
		AbsoluteRevenue: a.AbsoluteRevenue,
		RelativeRevenue: a.RelativeRevenue,
	}
}
