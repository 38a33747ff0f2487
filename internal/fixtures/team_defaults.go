package fixtures

import (
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
)

// DefaultTeamMappings is the fallback mapping table used when a venue
// has not configured its own. Names cover the common Dutch and English
// team labels seen across the labor provider's exports.
func DefaultTeamMappings() []team.CategoryMapping {
	dishSplit := &team.SplitRatio{Kitchen: 0.5, Service: 0.5}

	return []team.CategoryMapping{
		// Kitchen
		{TeamName: "kitchen", Category: team.CategoryKitchen},
		{TeamName: "keuken", Category: team.CategoryKitchen},
		{TeamName: "chefs", Category: team.CategoryKitchen},
		{TeamName: "sous chefs", Category: team.CategoryKitchen},
		{TeamName: "prep", Category: team.CategoryKitchen},

		// Service / front of house
		{TeamName: "service", Category: team.CategoryService},
		{TeamName: "bediening", Category: team.CategoryService},
		{TeamName: "bar", Category: team.CategoryService},
		{TeamName: "host", Category: team.CategoryService},
		{TeamName: "runners", Category: team.CategoryService},
		{TeamName: "terras", Category: team.CategoryService},

		// Management
		{TeamName: "management", Category: team.CategoryManagement},
		{TeamName: "managers", Category: team.CategoryManagement},
		{TeamName: "office", Category: team.CategoryManagement},

		// Hybrid: dishwashing is counted half kitchen, half service.
		{TeamName: "dishwashing", Category: team.CategoryKitchen, Split: dishSplit},
		{TeamName: "afwas", Category: team.CategoryKitchen, Split: dishSplit},
	}
}
