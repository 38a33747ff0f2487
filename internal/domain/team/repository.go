package team

import "context"

// MappingRepository loads the team category mapping table.
type MappingRepository interface {
	ListMappings(ctx context.Context) ([]CategoryMapping, error)
}
