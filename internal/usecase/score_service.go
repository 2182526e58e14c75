package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
)

const defaultScoreboardConcurrency = 4

type ScoreService struct {
	scores      score.Repository
	matchups    schedule.Repository
	concurrency int
}

func NewScoreService(scores score.Repository, matchups schedule.Repository) *ScoreService {
	return &ScoreService{
		scores:      scores,
		matchups:    matchups,
		concurrency: defaultScoreboardConcurrency,
	}
}

// SetConcurrency bounds the scoreboard fan-out; values below 1 are ignored.
func (s *ScoreService) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// WeeklyTeamScore returns the first row computed by the gateway, or false.
func (s *ScoreService) WeeklyTeamScore(ctx context.Context, leagueID, teamID string, weekNumber int) (score.WeeklyTeamScore, bool, error) {
	leagueID, teamID, err := requireLeagueTeam(leagueID, teamID)
	if err != nil {
		return score.WeeklyTeamScore{}, false, err
	}
	if weekNumber < 0 {
		return score.WeeklyTeamScore{}, false, fmt.Errorf("%w: week number must be >= 0", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.WeeklyTeamScore")
	defer span.End()

	rows, err := s.scores.CalculateWeeklyTeamScore(ctx, leagueID, teamID, weekNumber)
	if err != nil {
		recordSpanError(span, err)
		return score.WeeklyTeamScore{}, false, wrapGatewayError("calculate weekly team score", err)
	}
	if len(rows) == 0 {
		return score.WeeklyTeamScore{}, false, nil
	}
	return rows[0], true, nil
}

// Scoreboard lists a week's matchups with both teams' computed scores.
func (s *ScoreService) Scoreboard(ctx context.Context, leagueID string, weekNumber int) ([]score.MatchupScore, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if weekNumber < 0 {
		return nil, fmt.Errorf("%w: week number must be >= 0", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.Scoreboard")
	defer span.End()

	week := weekNumber
	matchups, err := s.matchups.ListMatchups(ctx, schedule.MatchupFilter{LeagueID: leagueID, WeekNumber: &week})
	if err != nil {
		recordSpanError(span, err)
		return nil, wrapGatewayError("list weekly matchups", err)
	}

	out := make([]score.MatchupScore, len(matchups))
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(s.concurrency)
	for i, m := range matchups {
		out[i] = score.MatchupScore{
			MatchupID:  m.ID,
			WeekNumber: m.WeekNumber,
			Team1ID:    m.Team1ID,
			Team2ID:    m.Team2ID,
		}
		for side, teamID := range []string{m.Team1ID, m.Team2ID} {
			if strings.TrimSpace(teamID) == "" {
				continue
			}
			p.Go(func(ctx context.Context) error {
				result, found, err := s.WeeklyTeamScore(ctx, leagueID, teamID, weekNumber)
				if err != nil {
					return fmt.Errorf("score team %s: %w", teamID, err)
				}
				if !found {
					return nil
				}
				if side == 0 {
					out[i].Team1Score = &result
				} else {
					out[i].Team2Score = &result
				}
				return nil
			})
		}
	}
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	return out, nil
}
