package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
)

type ScheduleRepository struct {
	store *Store
}

func NewScheduleRepository(store *Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

func (r *ScheduleRepository) GetLeagueSeasonYear(ctx context.Context, leagueID string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.leagues[leagueID]
	if !ok || record.seasonYear <= 0 {
		return 0, false, nil
	}
	return record.seasonYear, true, nil
}

func (r *ScheduleRepository) ListWeeks(ctx context.Context, seasonYear int, activeOnly bool) ([]schedule.FantasyWeek, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]schedule.FantasyWeek, 0)
	for _, week := range r.store.weeks {
		if week.SeasonYear != seasonYear {
			continue
		}
		if activeOnly && !week.IsActive {
			continue
		}
		week.PlayoffRound = cloneInt(week.PlayoffRound)
		out = append(out, week)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekNumber < out[j].WeekNumber
	})
	return out, nil
}

func (r *ScheduleRepository) ListMatchups(ctx context.Context, filter schedule.MatchupFilter) ([]schedule.WeeklyMatchup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]schedule.WeeklyMatchup, 0)
	for _, item := range r.store.matchups {
		if item.LeagueID != filter.LeagueID {
			continue
		}
		if filter.WeekNumber != nil && item.WeekNumber != *filter.WeekNumber {
			continue
		}
		item.Team1Score = cloneFloat(item.Team1Score)
		item.Team2Score = cloneFloat(item.Team2Score)
		item.Team1 = r.store.matchupTeam(item.Team1ID)
		item.Team2 = r.store.matchupTeam(item.Team2ID)
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchupDate.Before(out[j].MatchupDate)
	})
	return out, nil
}

func (r *ScheduleRepository) EarliestScheduledWeek(ctx context.Context, leagueID string) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	earliest, found := 0, false
	for _, item := range r.store.matchups {
		if item.LeagueID != leagueID || item.Status != schedule.MatchupStatusScheduled {
			continue
		}
		if !found || item.WeekNumber < earliest {
			earliest, found = item.WeekNumber, true
		}
	}
	return earliest, found, nil
}
