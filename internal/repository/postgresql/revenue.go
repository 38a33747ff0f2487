package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/revenue"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
)

type revenueRepository struct {
	db *database.DB
}

func NewRevenueRepository(db *database.DB) revenue.Repository {
	return &revenueRepository{db: db}
}

// ListHourlyByLocationAndDate implements revenue.Repository. Rows come
// from the POS export as loosely-typed tuples; normalization rejects
// bad rows here with a log line instead of failing inside the
// allocator.
func (r *revenueRepository) ListHourlyByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]revenue.HourlyDivisionRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT location_id, date, hour, division, amount
		FROM pos_hourly_revenue
		WHERE location_id = $1
		  AND date = $2
		ORDER BY hour, division
	`

	rows, err := q.Query(ctx, query, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly revenue: %w", err)
	}
	defer rows.Close()

	var out []revenue.HourlyDivisionRevenue
	for rows.Next() {
		var raw revenue.RawHourlyRevenue
		var rowDate time.Time
		var amount float64
		if err := rows.Scan(&raw.LocationID, &rowDate, &raw.Hour, &raw.Division, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan hourly revenue: %w", err)
		}
		raw.Date = rowDate.Format(time.DateOnly)
		raw.Amount = &amount

		rec, err := raw.Normalize()
		if err != nil {
			slog.Warn("excluding invalid hourly revenue row",
				"location_id", locationID,
				"date", date.Format(time.DateOnly),
				"hour", raw.Hour,
				"error", err)
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hourly revenue: %w", err)
	}

	return out, nil
}

// GetDailyDivisionTotals implements revenue.Repository. The hourly rows
// are the conservation source-of-truth, so the daily totals are their
// sums per division.
func (r *revenueRepository) GetDailyDivisionTotals(ctx context.Context, locationID string, date time.Time) (map[revenue.Division]float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT division, COALESCE(SUM(amount), 0)
		FROM pos_hourly_revenue
		WHERE location_id = $1
		  AND date = $2
		GROUP BY division
	`

	rows, err := q.Query(ctx, query, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[revenue.Division]float64)
	for rows.Next() {
		var tag string
		var amount float64
		if err := rows.Scan(&tag, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		division, err := revenue.ParseDivision(tag)
		if err != nil {
			slog.Warn("excluding unknown division from daily totals",
				"location_id", locationID,
				"division", tag)
			continue
		}
		totals[division] += amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily totals: %w", err)
	}

	return totals, nil
}

// ListWorkerTaggedByLocationAndDate implements revenue.Repository.
func (r *revenueRepository) ListWorkerTaggedByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]revenue.WorkerTaggedRevenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT location_id, worker_id, date, amount
		FROM pos_worker_revenue
		WHERE location_id = $1
		  AND date = $2
		  AND amount >= 0
		ORDER BY worker_id
	`

	rows, err := q.Query(ctx, query, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker-tagged revenue: %w", err)
	}
	defer rows.Close()

	var out []revenue.WorkerTaggedRevenue
	for rows.Next() {
		var rec revenue.WorkerTaggedRevenue
		if err := rows.Scan(&rec.LocationID, &rec.WorkerID, &rec.Date, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan worker-tagged revenue: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worker-tagged revenue: %w", err)
	}

	return out, nil
}
