package productivity

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/revenue"
	"github.com/horecalabs/productivity-backend-go/internal/domain/shift"
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
	"golang.org/x/sync/errgroup"
)

type ProductivityServiceImpl struct {
	shiftRepo   shift.Repository
	revenueRepo revenue.Repository
	resolver    team.Resolver
	runRepo     productivity.RunRepository
	decomposer  *Decomposer
	builder     *HierarchyBuilder

	maxParallelUnits int

	// now is swappable for tests (the future-date guard depends on it).
	now func() time.Time
}

func NewProductivityService(
	shiftRepo shift.Repository,
	revenueRepo revenue.Repository,
	resolver team.Resolver,
	runRepo productivity.RunRepository,
	decomposer *Decomposer,
	builder *HierarchyBuilder,
	maxParallelUnits int,
) *ProductivityServiceImpl {
	if maxParallelUnits < 1 {
		maxParallelUnits = 1
	}
	return &ProductivityServiceImpl{
		shiftRepo:        shiftRepo,
		revenueRepo:      revenueRepo,
		resolver:         resolver,
		runRepo:          runRepo,
		decomposer:       decomposer,
		builder:          builder,
		maxParallelUnits: maxParallelUnits,
		now:              time.Now,
	}
}

var _ productivity.Service = (*ProductivityServiceImpl)(nil)

// ComputeRange recomputes every (location, date) unit in the inclusive
// range. Units are embarrassingly parallel; within one unit the steps
// run strictly sequentially. Future dates are skipped as a business
// rule, and a day without labor records is skipped rather than stored
// as an empty tree.
func (s *ProductivityServiceImpl) ComputeRange(ctx context.Context, req productivity.ComputeRequest) (productivity.ComputeSummary, error) {
	if err := req.Validate(); err != nil {
		return productivity.ComputeSummary{}, err
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	today, _ := time.Parse(time.DateOnly, s.now().Format(time.DateOnly))

	var computed, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallelUnits)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if date.After(today) {
			skipped.Add(1)
			continue
		}
		g.Go(func() error {
			ok, err := s.computeUnit(gctx, req.LocationID, date)
			if err != nil {
				return fmt.Errorf("unit %s/%s: %w", req.LocationID, date.Format(time.DateOnly), err)
			}
			if ok {
				computed.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return productivity.ComputeSummary{}, err
	}

	return productivity.ComputeSummary{
		LocationID:    req.LocationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		UnitsComputed: int(computed.Load()),
		UnitsSkipped:  int(skipped.Load()),
		GeneratedAt:   s.now().Format(time.RFC3339),
	}, nil
}

// computeUnit runs the full pipeline for one (location, date):
// decompose -> allocate -> build hierarchy -> persist. It reports
// (false, nil) when no labor record exists for the day.
func (s *ProductivityServiceImpl) computeUnit(ctx context.Context, locationID string, date time.Time) (bool, error) {
	shifts, err := s.shiftRepo.ListByLocationAndDate(ctx, locationID, date)
	if err != nil {
		return false, fmt.Errorf("load shifts: %w", err)
	}
	if len(shifts) == 0 {
		slog.Debug("no labor record, unit skipped",
			"location_id", locationID, "date", date.Format(time.DateOnly))
		return false, nil
	}

	workers := s.decomposeAll(locationID, date, shifts)

	hourly, err := s.revenueRepo.ListHourlyByLocationAndDate(ctx, locationID, date)
	if err != nil {
		return false, fmt.Errorf("load hourly revenue: %w", err)
	}
	dailyTotals, err := s.revenueRepo.GetDailyDivisionTotals(ctx, locationID, date)
	if err != nil {
		return false, fmt.Errorf("load daily totals: %w", err)
	}
	taggedRows, err := s.revenueRepo.ListWorkerTaggedByLocationAndDate(ctx, locationID, date)
	if err != nil {
		return false, fmt.Errorf("load worker-tagged revenue: %w", err)
	}
	tagged := make(map[string]float64, len(taggedRows))
	for _, r := range taggedRows {
		tagged[r.WorkerID] += r.Amount
	}

	attributed := Allocate(workers, hourly, tagged)
	tree := s.builder.Build(locationID, workers, dailyTotals)

	run := productivity.Run{
		ID:         uuid.NewString(),
		LocationID: locationID,
		Date:       date,
		Tree:       tree,
		Workers:    attributed,
		ComputedAt: s.now(),
	}
	if err := s.runRepo.SaveRun(ctx, run); err != nil {
		return false, fmt.Errorf("persist run: %w", err)
	}
	return true, nil
}

// decomposeAll turns the day's shifts into per-(worker, team) hourly
// hours entries. A worker with two shifts on the same team merges into
// one entry; per-bucket fractions are capped at 1.0 since overlapping
// shift rows cannot put more than 60 minutes into one hour.
func (s *ProductivityServiceImpl) decomposeAll(locationID string, date time.Time, shifts []shift.ShiftRecord) []productivity.WorkerHourlyHours {
	byKey := make(map[string]*productivity.WorkerHourlyHours)
	for _, rec := range shifts {
		mapping := s.resolver.Resolve(rec.TeamName)
		key := rec.WorkerID + "|" + mapping.TeamName

		entry, ok := byKey[key]
		if !ok {
			entry = &productivity.WorkerHourlyHours{
				WorkerID:   rec.WorkerID,
				WorkerName: rec.WorkerName,
				LocationID: locationID,
				Date:       date,
				TeamName:   mapping.TeamName,
				Category:   mapping.Category,
				Split:      mapping.Split,
				Hours:      make(map[int]float64),
			}
			byKey[key] = entry
		}

		for hour, frac := range s.decomposer.Decompose(rec) {
			entry.Hours[hour] += frac
			if entry.Hours[hour] > 1 {
				entry.Hours[hour] = 1
			}
		}
		entry.TotalHours += rec.TotalHours
		entry.LaborCost += rec.LaborCost
	}

	workers := make([]productivity.WorkerHourlyHours, 0, len(byKey))
	for _, entry := range byKey {
		workers = append(workers, *entry)
	}
	sort.Slice(workers, func(i, j int) bool {
		if workers[i].WorkerID != workers[j].WorkerID {
			return workers[i].WorkerID < workers[j].WorkerID
		}
		return workers[i].TeamName < workers[j].TeamName
	})
	return workers
}

// GetTree returns the stored hierarchy for one (location, date).
func (s *ProductivityServiceImpl) GetTree(ctx context.Context, req productivity.TreeRequest) (productivity.TreeResponse, error) {
	if err := req.Validate(); err != nil {
		return productivity.TreeResponse{}, err
	}
	date, _ := time.Parse(time.DateOnly, req.Date)

	tree, err := s.runRepo.GetTree(ctx, req.LocationID, date)
	if err != nil {
		return productivity.TreeResponse{}, err
	}
	return productivity.TreeResponse{
		LocationID: req.LocationID,
		Date:       req.Date,
		Tree:       tree,
	}, nil
}

// ListWorkerRevenue returns the flat per-(worker, date) rows exposing
// both absolute and relative revenue.
func (s *ProductivityServiceImpl) ListWorkerRevenue(ctx context.Context, req productivity.WorkerRevenueRequest) (productivity.WorkerRevenueResponse, error) {
	if err := req.Validate(); err != nil {
		return productivity.WorkerRevenueResponse{}, err
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	rows, err := s.runRepo.ListWorkerRevenue(ctx, req.LocationID, start, end)
	if err != nil {
		return productivity.WorkerRevenueResponse{}, fmt.Errorf("failed to get worker revenue: %w", err)
	}

	out := make([]productivity.WorkerRevenueRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, productivity.NewWorkerRevenueRow(r))
	}
	return productivity.WorkerRevenueResponse{
		LocationID:  req.LocationID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: s.now().Format(time.RFC3339),
		Rows:        out,
	}, nil
}
