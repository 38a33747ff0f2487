package team

import (
	"fmt"
	"math"
	"strings"

	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
)

// Mapping-table keys are compared after NormalizeName, so "Front of
// House", "front-of-house" and " FRONT OF HOUSE " all hit one entry.
type resolverImpl struct {
	mappings map[string]team.CategoryMapping
}

// NewResolver builds a resolver from the loaded mapping table. Split
// ratios are validated here, at load: a ratio not summing to 1.0 or an
// unknown category rejects the whole table so a bad config never
// reaches a run.
func NewResolver(mappings []team.CategoryMapping) (team.Resolver, error) {
	byName := make(map[string]team.CategoryMapping, len(mappings))
	for _, m := range mappings {
		switch m.Category {
		case team.CategoryKitchen, team.CategoryService, team.CategoryManagement, team.CategoryOther:
		default:
			return nil, fmt.Errorf("team %q: %w", m.TeamName, team.ErrUnknownCategory)
		}
		if m.Split != nil {
			if m.Split.Kitchen < 0 || m.Split.Service < 0 {
				return nil, fmt.Errorf("team %q: %w", m.TeamName, team.ErrInvalidSplitRatio)
			}
			if math.Abs(m.Split.Kitchen+m.Split.Service-1.0) > 1e-9 {
				return nil, fmt.Errorf("team %q: %w", m.TeamName, team.ErrInvalidSplitRatio)
			}
		}
		m.TeamName = NormalizeName(m.TeamName)
		byName[m.TeamName] = m
	}
	return &resolverImpl{mappings: byName}, nil
}

// Resolve maps a raw team name to its category mapping. Misses resolve
// to CategoryOther with no split; an unknown team never fails a run.
func (r *resolverImpl) Resolve(rawTeamName string) team.CategoryMapping {
	key := NormalizeName(rawTeamName)
	if m, ok := r.mappings[key]; ok {
		return m
	}
	return team.CategoryMapping{
		TeamName: key,
		Category: team.CategoryOther,
	}
}

// NormalizeName lowercases a raw team name, strips punctuation and
// collapses whitespace runs.
func NormalizeName(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
