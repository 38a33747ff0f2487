package team

// Resolver answers which category (and optional split ratio) a raw
// team name belongs to. Lookups never fail: unknown names resolve to
// CategoryOther with no split.
type Resolver interface {
	Resolve(rawTeamName string) CategoryMapping
}
