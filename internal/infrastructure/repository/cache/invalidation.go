package cache

import (
	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
)

// Key families. The first segment of every cached key is one of these.
const (
	FamilyLineupPositions    = "lineup-positions"
	FamilyWeeklyLineup       = "weekly-lineup"
	FamilyLeagueSeason       = "league-season"
	FamilyFantasyWeeks       = "fantasy-weeks"
	FamilyWeeklyMatchups     = "weekly-matchups"
	FamilyScheduledWeek      = "scheduled-week"
	FamilyWeeklyTeamScore    = "weekly-team-score"
	FamilyPendingTrades      = "pending-trades"
	FamilyPlayerRosterStatus = "player-roster-status"
)

type Mutation string

const (
	MutationUpsertPosition Mutation = "upsert_position"
	MutationRemovePosition Mutation = "remove_position"
	MutationClearZone      Mutation = "clear_zone"
	MutationSaveWeekly     Mutation = "save_weekly"
	MutationLockWeekly     Mutation = "lock_weekly"
	MutationAutoAssign     Mutation = "auto_assign"
	MutationCreateLeague   Mutation = "create_league"
)

// Scope carries the identifiers a mutation touched.
type Scope struct {
	LeagueID   string
	TeamID     string
	WeekNumber int
	SeasonYear int
}

func lineupPositionsOf(s Scope) []basecache.Key {
	return []basecache.Key{basecache.NewKey(FamilyLineupPositions, s.LeagueID, s.TeamID)}
}

func weeklyLineupOf(s Scope) []basecache.Key {
	return []basecache.Key{basecache.NewKey(FamilyWeeklyLineup, s.TeamID, s.WeekNumber, s.SeasonYear)}
}

// invalidationTable maps each mutation to the key prefixes it makes stale.
// A new league has nothing cached under its ids, only a season lookup that may
// have recorded the league as missing.
var invalidationTable = map[Mutation]func(Scope) []basecache.Key{
	MutationUpsertPosition: lineupPositionsOf,
	MutationRemovePosition: lineupPositionsOf,
	MutationClearZone:      lineupPositionsOf,
	MutationSaveWeekly:     weeklyLineupOf,
	MutationLockWeekly:     weeklyLineupOf,
	MutationAutoAssign:     lineupPositionsOf,
	MutationCreateLeague: func(s Scope) []basecache.Key {
		return []basecache.Key{basecache.NewKey(FamilyLeagueSeason, s.LeagueID)}
	},
}

// KeysFor returns the prefixes invalidated by mutation.
func KeysFor(mutation Mutation, scope Scope) []basecache.Key {
	keysOf, ok := invalidationTable[mutation]
	if !ok {
		return nil
	}
	return keysOf(scope)
}

func invalidate(c *basecache.Cache, mutation Mutation, scope Scope) {
	if c == nil {
		return
	}
	for _, prefix := range KeysFor(mutation, scope) {
		c.Invalidate(prefix)
	}
}
