package score

import "context"

// Repository exposes the remote scoring procedure.
type Repository interface {
	CalculateWeeklyTeamScore(ctx context.Context, leagueID, teamID string, weekNumber int) ([]WeeklyTeamScore, error)
}
