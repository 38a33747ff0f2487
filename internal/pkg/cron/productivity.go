package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/shift"
)

type ProductivityJobs struct {
	productivitySvc productivity.Service
	shiftRepo       shift.Repository
	interval        time.Duration
}

func NewProductivityJobs(
	productivitySvc productivity.Service,
	shiftRepo shift.Repository,
	interval time.Duration,
) *ProductivityJobs {
	return &ProductivityJobs{
		productivitySvc: productivitySvc,
		shiftRepo:       shiftRepo,
		interval:        interval,
	}
}

func (j *ProductivityJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_previous_day", j.interval, j.RecomputePreviousDay)
}

// RecomputePreviousDay re-runs the attribution engine for yesterday at
// every known location. Units are idempotent, so re-running after late
// POS corrections simply overwrites the prior artifact.
func (j *ProductivityJobs) RecomputePreviousDay(ctx context.Context) error {
	locations, err := j.shiftRepo.ListLocationIDs(ctx)
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	for _, locationID := range locations {
		summary, err := j.productivitySvc.ComputeRange(ctx, productivity.ComputeRequest{
			LocationID: locationID,
			StartDate:  yesterday,
			EndDate:    yesterday,
		})
		if err != nil {
			// One broken location must not starve the rest.
			slog.Error("recompute failed", "location_id", locationID, "error", err)
			continue
		}
		slog.Info("recomputed previous day",
			"location_id", locationID,
			"units_computed", summary.UnitsComputed,
			"units_skipped", summary.UnitsSkipped)
	}
	return nil
}
