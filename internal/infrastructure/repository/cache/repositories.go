package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
)

type PositionRepository struct {
	next  lineup.PositionRepository
	cache *basecache.Cache
}

func NewPositionRepository(next lineup.PositionRepository, cache *basecache.Cache) *PositionRepository {
	return &PositionRepository{next: next, cache: cache}
}

func (r *PositionRepository) ListPositions(ctx context.Context, leagueID, teamID string, zone lineup.Zone) ([]lineup.Position, error) {
	key := basecache.NewKey(FamilyLineupPositions, leagueID, teamID, zone)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]lineup.Position, error) {
		items, err := r.next.ListPositions(ctx, leagueID, teamID, zone)
		if err != nil {
			return nil, err
		}
		return append([]lineup.Position(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]lineup.Position(nil), items...), nil
}

func (r *PositionRepository) UpsertPosition(ctx context.Context, item lineup.PositionUpsert) error {
	if err := r.next.UpsertPosition(ctx, item); err != nil {
		return err
	}
	invalidate(r.cache, MutationUpsertPosition, Scope{LeagueID: item.LeagueID, TeamID: item.TeamID})
	return nil
}

func (r *PositionRepository) RemovePosition(ctx context.Context, leagueID, teamID, playerID string, zone lineup.Zone) error {
	if err := r.next.RemovePosition(ctx, leagueID, teamID, playerID, zone); err != nil {
		return err
	}
	invalidate(r.cache, MutationRemovePosition, Scope{LeagueID: leagueID, TeamID: teamID})
	return nil
}

func (r *PositionRepository) ClearZone(ctx context.Context, leagueID, teamID string, zone lineup.Zone) error {
	if err := r.next.ClearZone(ctx, leagueID, teamID, zone); err != nil {
		return err
	}
	invalidate(r.cache, MutationClearZone, Scope{LeagueID: leagueID, TeamID: teamID})
	return nil
}

type WeeklyRepository struct {
	next  lineup.WeeklyRepository
	cache *basecache.Cache
}

func NewWeeklyRepository(next lineup.WeeklyRepository, cache *basecache.Cache) *WeeklyRepository {
	return &WeeklyRepository{next: next, cache: cache}
}

type cachedWeeklyLineup struct {
	value  lineup.WeeklyLineup
	exists bool
}

func (r *WeeklyRepository) GetWeekly(ctx context.Context, key lineup.WeekKey) (lineup.WeeklyLineup, bool, error) {
	cacheKey := basecache.NewKey(FamilyWeeklyLineup, key.TeamID, key.WeekNumber, key.SeasonYear)
	cached, err := basecache.Fetch(ctx, r.cache, cacheKey, func(ctx context.Context) (cachedWeeklyLineup, error) {
		item, exists, err := r.next.GetWeekly(ctx, key)
		if err != nil {
			return cachedWeeklyLineup{}, err
		}
		return cachedWeeklyLineup{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return lineup.WeeklyLineup{}, false, err
	}
	return cached.value.Clone(), cached.exists, nil
}

func (r *WeeklyRepository) SaveWeekly(ctx context.Context, key lineup.WeekKey, item lineup.WeeklyLineup) error {
	if err := r.next.SaveWeekly(ctx, key, item); err != nil {
		return err
	}
	invalidate(r.cache, MutationSaveWeekly, weekScope(key))
	return nil
}

func (r *WeeklyRepository) SetWeeklyLock(ctx context.Context, key lineup.WeekKey, locked bool, lockedAt *time.Time) (bool, error) {
	found, err := r.next.SetWeeklyLock(ctx, key, locked, lockedAt)
	if err != nil {
		return false, err
	}
	if found {
		invalidate(r.cache, MutationLockWeekly, weekScope(key))
	}
	return found, nil
}

func weekScope(key lineup.WeekKey) Scope {
	return Scope{TeamID: key.TeamID, WeekNumber: key.WeekNumber, SeasonYear: key.SeasonYear}
}

// Assigner invalidates the team's board once the external assignment succeeds.
type Assigner struct {
	next  lineup.Assigner
	cache *basecache.Cache
}

func NewAssigner(next lineup.Assigner, cache *basecache.Cache) *Assigner {
	return &Assigner{next: next, cache: cache}
}

func (a *Assigner) AutoAssign(ctx context.Context, req lineup.AutoAssignRequest) (lineup.AutoAssignResult, error) {
	result, err := a.next.AutoAssign(ctx, req)
	if err != nil {
		return lineup.AutoAssignResult{}, err
	}
	invalidate(a.cache, MutationAutoAssign, Scope{LeagueID: req.LeagueID, TeamID: req.TeamID})
	return result, nil
}

type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Cache
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Cache) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

type cachedNumber struct {
	value  int
	exists bool
}

func (r *ScheduleRepository) GetLeagueSeasonYear(ctx context.Context, leagueID string) (int, bool, error) {
	key := basecache.NewKey(FamilyLeagueSeason, leagueID)
	cached, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) (cachedNumber, error) {
		year, exists, err := r.next.GetLeagueSeasonYear(ctx, leagueID)
		if err != nil {
			return cachedNumber{}, err
		}
		return cachedNumber{value: year, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}
	return cached.value, cached.exists, nil
}

// ListWeeks caches for longer than the default window since weeks never change
// once published.
func (r *ScheduleRepository) ListWeeks(ctx context.Context, seasonYear int, activeOnly bool) ([]schedule.FantasyWeek, error) {
	key := basecache.NewKey(FamilyFantasyWeeks, seasonYear, activeOnly)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]schedule.FantasyWeek, error) {
		items, err := r.next.ListWeeks(ctx, seasonYear, activeOnly)
		if err != nil {
			return nil, err
		}
		return append([]schedule.FantasyWeek(nil), items...), nil
	}, basecache.StaleAfter(30*time.Minute))
	if err != nil {
		return nil, err
	}
	return append([]schedule.FantasyWeek(nil), items...), nil
}

func (r *ScheduleRepository) ListMatchups(ctx context.Context, filter schedule.MatchupFilter) ([]schedule.WeeklyMatchup, error) {
	key := basecache.NewKey(FamilyWeeklyMatchups, filter.LeagueID, filter.WeekNumber)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]schedule.WeeklyMatchup, error) {
		items, err := r.next.ListMatchups(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]schedule.WeeklyMatchup(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]schedule.WeeklyMatchup(nil), items...), nil
}

func (r *ScheduleRepository) EarliestScheduledWeek(ctx context.Context, leagueID string) (int, bool, error) {
	key := basecache.NewKey(FamilyScheduledWeek, leagueID)
	cached, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) (cachedNumber, error) {
		week, exists, err := r.next.EarliestScheduledWeek(ctx, leagueID)
		if err != nil {
			return cachedNumber{}, err
		}
		return cachedNumber{value: week, exists: exists}, nil
	})
	if err != nil {
		return 0, false, err
	}
	return cached.value, cached.exists, nil
}

type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Cache
}

func NewScoreRepository(next score.Repository, cache *basecache.Cache) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) CalculateWeeklyTeamScore(ctx context.Context, leagueID, teamID string, weekNumber int) ([]score.WeeklyTeamScore, error) {
	key := basecache.NewKey(FamilyWeeklyTeamScore, leagueID, teamID, weekNumber)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]score.WeeklyTeamScore, error) {
		items, err := r.next.CalculateWeeklyTeamScore(ctx, leagueID, teamID, weekNumber)
		if err != nil {
			return nil, err
		}
		return append([]score.WeeklyTeamScore(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]score.WeeklyTeamScore(nil), items...), nil
}

type TradeRepository struct {
	next  trade.Repository
	cache *basecache.Cache
}

func NewTradeRepository(next trade.Repository, cache *basecache.Cache) *TradeRepository {
	return &TradeRepository{next: next, cache: cache}
}

func (r *TradeRepository) ListPendingDraftTrades(ctx context.Context, teamID, leagueID string) ([]trade.PendingTrade, error) {
	key := basecache.NewKey(FamilyPendingTrades, leagueID, teamID)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]trade.PendingTrade, error) {
		items, err := r.next.ListPendingDraftTrades(ctx, teamID, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]trade.PendingTrade(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]trade.PendingTrade(nil), items...), nil
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Cache
}

func NewRosterRepository(next roster.Repository, cache *basecache.Cache) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListPlayerSpots(ctx context.Context, playerID, leagueID string) ([]roster.Spot, error) {
	key := basecache.NewKey(FamilyPlayerRosterStatus, leagueID, playerID)
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]roster.Spot, error) {
		items, err := r.next.ListPlayerSpots(ctx, playerID, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]roster.Spot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]roster.Spot(nil), items...), nil
}

// LeagueRepository passes league writes through and clears any cached season
// lookup for the new league id.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Cache
}

func NewLeagueRepository(next league.Repository, cache *basecache.Cache) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	return r.next.InviteCodeExists(ctx, code)
}

func (r *LeagueRepository) Create(ctx context.Context, blueprint league.Blueprint) (league.Created, error) {
	created, err := r.next.Create(ctx, blueprint)
	if err != nil {
		return league.Created{}, err
	}
	invalidate(r.cache, MutationCreateLeague, Scope{LeagueID: created.League.ID})
	return created, nil
}
