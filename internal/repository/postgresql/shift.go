package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/horecalabs/productivity-backend-go/internal/domain/shift"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// ListByLocationAndDate implements shift.Repository. The shifts table
// stores the labor provider's raw payload untouched; normalization to
// the strict ShiftRecord happens here, at the read boundary. A row
// that fails structural validation is logged and excluded, it never
// aborts the batch for the remaining rows.
func (r *shiftRepository) ListByLocationAndDate(ctx context.Context, locationID string, date time.Time) ([]shift.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payload
		FROM labor_shifts
		WHERE location_id = $1
		  AND date = $2
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, locationID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var records []shift.ShiftRecord
	for rows.Next() {
		var raw shift.RawShift
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan shift payload: %w", err)
		}
		rec, err := raw.Normalize()
		if err != nil {
			slog.Warn("excluding invalid shift row",
				"location_id", locationID,
				"date", date.Format(time.DateOnly),
				"error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return records, nil
}

// ListLocationIDs implements shift.Repository.
func (r *shiftRepository) ListLocationIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT location_id FROM labor_shifts ORDER BY location_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan location id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return ids, nil
}
