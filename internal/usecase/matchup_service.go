package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
)

const defaultCurrentWeek = 1

type CurrentFantasyWeek struct {
	Week  *schedule.FantasyWeek
	Phase schedule.SeasonPhase
}

type MatchupService struct {
	repo schedule.Repository
	now  func() time.Time
}

func NewMatchupService(repo schedule.Repository) *MatchupService {
	return &MatchupService{
		repo: repo,
		now:  time.Now,
	}
}

// CurrentWeek resolves the league's week for today: the week whose date range
// contains today, else the earliest scheduled matchup week, else week 1.
// The season year falls back to the current calendar year when the league
// has no active season.
func (s *MatchupService) CurrentWeek(ctx context.Context, leagueID string) (int, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return 0, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.CurrentWeek")
	defer span.End()

	today := s.now().UTC()

	seasonYear, found, err := s.repo.GetLeagueSeasonYear(ctx, leagueID)
	if err != nil {
		recordSpanError(span, err)
		return 0, wrapGatewayError("get league season year", err)
	}
	if !found {
		seasonYear = today.Year()
	}

	weeks, err := s.repo.ListWeeks(ctx, seasonYear, false)
	if err != nil {
		recordSpanError(span, err)
		return 0, wrapGatewayError("list fantasy weeks", err)
	}
	if week, ok := schedule.FindWeekContaining(weeks, today); ok {
		return week.WeekNumber, nil
	}

	weekNumber, found, err := s.repo.EarliestScheduledWeek(ctx, leagueID)
	if err != nil {
		recordSpanError(span, err)
		return 0, wrapGatewayError("get earliest scheduled week", err)
	}
	if found {
		return weekNumber, nil
	}

	return defaultCurrentWeek, nil
}

// ListMatchups returns the league's matchups ordered by date, optionally for one week.
func (s *MatchupService) ListMatchups(ctx context.Context, leagueID string, weekNumber *int) ([]schedule.WeeklyMatchup, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if weekNumber != nil && *weekNumber < 0 {
		return nil, fmt.Errorf("%w: week number must be >= 0", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ListMatchups")
	defer span.End()

	items, err := s.repo.ListMatchups(ctx, schedule.MatchupFilter{LeagueID: leagueID, WeekNumber: weekNumber})
	if err != nil {
		recordSpanError(span, err)
		return nil, wrapGatewayError("list weekly matchups", err)
	}
	if items == nil {
		items = []schedule.WeeklyMatchup{}
	}
	return items, nil
}

// CurrentFantasyWeek resolves today's active week and season phase.
func (s *MatchupService) CurrentFantasyWeek(ctx context.Context, seasonYear int) (CurrentFantasyWeek, error) {
	if seasonYear <= 0 {
		return CurrentFantasyWeek{}, fmt.Errorf("%w: season year must be > 0", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.CurrentFantasyWeek")
	defer span.End()

	weeks, err := s.repo.ListWeeks(ctx, seasonYear, true)
	if err != nil {
		recordSpanError(span, err)
		return CurrentFantasyWeek{}, wrapGatewayError("list fantasy weeks", err)
	}

	week, phase := schedule.ResolvePhase(weeks, s.now().UTC())
	return CurrentFantasyWeek{Week: week, Phase: phase}, nil
}
