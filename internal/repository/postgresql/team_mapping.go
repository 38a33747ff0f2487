package postgresql

import (
	"context"
	"fmt"

	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
)

type teamMappingRepository struct {
	db *database.DB
}

func NewTeamMappingRepository(db *database.DB) team.MappingRepository {
	return &teamMappingRepository{db: db}
}

// ListMappings implements team.MappingRepository. Ratio validation is
// the resolver's job at load; this only reads the configured table.
func (r *teamMappingRepository) ListMappings(ctx context.Context) ([]team.CategoryMapping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT team_name, category, kitchen_ratio, service_ratio
		FROM team_category_mappings
		ORDER BY team_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list team mappings: %w", err)
	}
	defer rows.Close()

	var mappings []team.CategoryMapping
	for rows.Next() {
		var m team.CategoryMapping
		var category string
		var kitchenRatio, serviceRatio *float64
		if err := rows.Scan(&m.TeamName, &category, &kitchenRatio, &serviceRatio); err != nil {
			return nil, fmt.Errorf("failed to scan team mapping: %w", err)
		}
		m.Category = team.Category(category)
		if kitchenRatio != nil && serviceRatio != nil {
			m.Split = &team.SplitRatio{Kitchen: *kitchenRatio, Service: *serviceRatio}
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team mappings: %w", err)
	}

	return mappings, nil
}
