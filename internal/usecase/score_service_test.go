package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
	schedulemock "github.com/riskibarqy/fantasy-basketball/internal/mocks/domain/schedule"
	scoremock "github.com/riskibarqy/fantasy-basketball/internal/mocks/domain/score"
)

func TestScoreService_WeeklyTeamScore(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	svc := NewScoreService(memory.NewScoreRepository(store), memory.NewScheduleRepository(store))

	got, found, err := svc.WeeklyTeamScore(t.Context(), "league-hardwood", "team-glass", 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 512.5, got.TotalScore)
	require.Equal(t, 15, got.PlayerCount)

	_, found, err = svc.WeeklyTeamScore(t.Context(), "league-hardwood", "team-glass", 2)
	require.NoError(t, err)
	require.False(t, found)
}

func TestScoreService_ScoreboardFromSeed(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	svc := NewScoreService(memory.NewScoreRepository(store), memory.NewScheduleRepository(store))
	svc.SetConcurrency(2)

	board, err := svc.Scoreboard(t.Context(), "league-hardwood", 1)
	require.NoError(t, err)
	require.Len(t, board, 2)

	byID := make(map[string]score.MatchupScore, len(board))
	for _, item := range board {
		byID[item.MatchupID] = item
	}

	glassRim := byID["m-1-a"]
	require.NotNil(t, glassRim.Team1Score)
	require.NotNil(t, glassRim.Team2Score)
	require.Equal(t, "team-glass", glassRim.Leader())

	splashZone := byID["m-1-b"]
	require.Nil(t, splashZone.Team1Score, "no computed score for splash")
	require.Empty(t, splashZone.Leader())
}

func TestScoreService_ScoreboardPropagatesScoreErrorsUsingMockery(t *testing.T) {
	t.Parallel()

	scores := scoremock.NewRepository(t)
	matchups := schedulemock.NewRepository(t)
	svc := NewScoreService(scores, matchups)

	matchups.
		On("ListMatchups", mock.Anything, mock.MatchedBy(func(f schedule.MatchupFilter) bool {
			return f.LeagueID == "league-1" && f.WeekNumber != nil && *f.WeekNumber == 4
		})).
		Return([]schedule.WeeklyMatchup{{ID: "m1", WeekNumber: 4, Team1ID: "t1", Team2ID: "t2"}}, nil).
		Once()
	scores.
		On("CalculateWeeklyTeamScore", mock.Anything, "league-1", mock.Anything, 4).
		Return(nil, errors.New("function calculate_weekly_team_score failed")).
		Maybe()

	_, err := svc.Scoreboard(t.Context(), "league-1", 4)
	require.ErrorIs(t, err, ErrGateway)

	_, err = svc.Scoreboard(t.Context(), "", 4)
	require.ErrorIs(t, err, ErrInvalidInput)
}
