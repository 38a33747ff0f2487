package shift

import (
	"strings"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/pkg/validator"
)

// RawShift is the loosely-typed payload the labor provider delivers.
// Providers disagree on field names, so every logical field has an
// ordered list of candidates. The priority order lives here, once:
//
//	worker id:   user_id > employee_id > id
//	worker name: user_name > employee_name > name
//	start:       from > start_time
//	end:         till > end_time
//	hours:       total_hours > hours
//	wage cost:   wage_cost (absolute) else hourly_wage x hours
type RawShift struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	EmployeeID   string   `json:"employee_id"`
	UserName     string   `json:"user_name"`
	EmployeeName string   `json:"employee_name"`
	Name         string   `json:"name"`
	LocationID   string   `json:"location_id"`
	Date         string   `json:"date"`
	Team         string   `json:"team"`
	TeamName     string   `json:"team_name"`
	From         string   `json:"from"`
	StartTime    string   `json:"start_time"`
	Till         string   `json:"till"`
	EndTime      string   `json:"end_time"`
	BreakMinutes int      `json:"break_minutes"`
	TotalHours   *float64 `json:"total_hours"`
	Hours        *float64 `json:"hours"`
	HourlyWage   *float64 `json:"hourly_wage"`
	WageCost     *float64 `json:"wage_cost"`
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if !validator.IsEmpty(c) {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

func firstTimestamp(candidates ...string) *time.Time {
	for _, c := range candidates {
		if t, ok := validator.IsValidDateTime(c); ok {
			return &t
		}
	}
	return nil
}

// Normalize validates a raw payload and produces one strictly-typed
// ShiftRecord. Structural failures return a domain error; callers log
// and exclude the record without aborting their batch.
func (r RawShift) Normalize() (ShiftRecord, error) {
	workerID := firstNonEmpty(r.UserID, r.EmployeeID, r.ID)
	if workerID == "" {
		return ShiftRecord{}, ErrMissingWorkerID
	}
	if validator.IsEmpty(r.LocationID) {
		return ShiftRecord{}, ErrMissingLocation
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return ShiftRecord{}, ErrInvalidDate
	}
	if r.BreakMinutes < 0 {
		return ShiftRecord{}, ErrNegativeBreak
	}

	rec := ShiftRecord{
		ID:           firstNonEmpty(r.ID, workerID+"-"+r.Date),
		WorkerID:     workerID,
		WorkerName:   firstNonEmpty(r.UserName, r.EmployeeName, r.Name, workerID),
		LocationID:   strings.TrimSpace(r.LocationID),
		Date:         date,
		TeamName:     firstNonEmpty(r.Team, r.TeamName),
		Start:        firstTimestamp(r.From, r.StartTime),
		End:          firstTimestamp(r.Till, r.EndTime),
		BreakMinutes: r.BreakMinutes,
		HourlyWage:   r.HourlyWage,
	}

	declared := 0.0
	switch {
	case r.TotalHours != nil:
		declared = *r.TotalHours
	case r.Hours != nil:
		declared = *r.Hours
	}
	if declared < 0 {
		return ShiftRecord{}, ErrNegativeHours
	}

	rec.TotalHours = declared
	if rec.HasTimestamps() && rec.End.After(*rec.Start) {
		worked := rec.End.Sub(*rec.Start).Hours() - float64(rec.BreakMinutes)/60
		if worked < 0 {
			worked = 0
		}
		rec.TotalHours = worked
	}

	switch {
	case r.WageCost != nil && *r.WageCost >= 0:
		rec.LaborCost = *r.WageCost
	case rec.HourlyWage != nil && *rec.HourlyWage >= 0:
		rec.LaborCost = rec.TotalHours * *rec.HourlyWage
	}

	return rec, nil
}
