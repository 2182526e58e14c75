package schedule

import "context"

// Repository exposes schedule reads from the gateway.
type Repository interface {
	GetLeagueSeasonYear(ctx context.Context, leagueID string) (int, bool, error)
	ListWeeks(ctx context.Context, seasonYear int, activeOnly bool) ([]FantasyWeek, error)
	ListMatchups(ctx context.Context, filter MatchupFilter) ([]WeeklyMatchup, error)
	EarliestScheduledWeek(ctx context.Context, leagueID string) (int, bool, error)
}
