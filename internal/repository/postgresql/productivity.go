package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type productivityRunRepository struct {
	db *database.DB
}

func NewProductivityRunRepository(db *database.DB) productivity.RunRepository {
	return &productivityRunRepository{db: db}
}

// SaveRun implements productivity.RunRepository. The prior artifact for
// the (location, date) is replaced inside one transaction, which makes
// reruns idempotent and keeps partially computed units out of the
// store.
func (r *productivityRunRepository) SaveRun(ctx context.Context, run productivity.Run) error {
	treeJSON, err := json.Marshal(run.Tree)
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM productivity_runs
			WHERE location_id = $1 AND date = $2
		`, run.LocationID, run.Date); err != nil {
			return fmt.Errorf("failed to delete prior run: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO productivity_runs (id, location_id, date, tree, computed_at)
			VALUES ($1, $2, $3, $4, $5)
		`, run.ID, run.LocationID, run.Date, treeJSON, run.ComputedAt); err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM attributed_revenue
			WHERE location_id = $1 AND date = $2
		`, run.LocationID, run.Date); err != nil {
			return fmt.Errorf("failed to delete prior attribution rows: %w", err)
		}

		for _, w := range run.Workers {
			id := w.ID
			if id == "" {
				id = uuid.NewString()
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO attributed_revenue (
					id, run_id, location_id, worker_id, worker_name, date,
					hours_worked, absolute_revenue, relative_revenue
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, id, run.ID, run.LocationID, w.WorkerID, w.WorkerName, run.Date,
				w.HoursWorked, w.AbsoluteRevenue, w.RelativeRevenue); err != nil {
				return fmt.Errorf("failed to insert attribution row: %w", err)
			}
		}

		return nil
	})
}

// GetTree implements productivity.RunRepository.
func (r *productivityRunRepository) GetTree(ctx context.Context, locationID string, date time.Time) (*productivity.Node, error) {
	q := GetQuerier(ctx, r.db)

	var treeJSON []byte
	err := q.QueryRow(ctx, `
		SELECT tree
		FROM productivity_runs
		WHERE location_id = $1 AND date = $2
	`, locationID, date).Scan(&treeJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productivity.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var tree productivity.Node
	if err := json.Unmarshal(treeJSON, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	return &tree, nil
}

// ListWorkerRevenue implements productivity.RunRepository.
func (r *productivityRunRepository) ListWorkerRevenue(ctx context.Context, locationID string, start, end time.Time) ([]productivity.AttributedRevenue, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, worker_id, worker_name, location_id, date,
		       hours_worked, absolute_revenue, relative_revenue
		FROM attributed_revenue
		WHERE location_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date, worker_id
	`, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker revenue: %w", err)
	}
	defer rows.Close()

	var out []productivity.AttributedRevenue
	for rows.Next() {
		var a productivity.AttributedRevenue
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.WorkerName, &a.LocationID, &a.Date,
			&a.HoursWorked, &a.AbsoluteRevenue, &a.RelativeRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan worker revenue: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worker revenue: %w", err)
	}

	return out, nil
}
