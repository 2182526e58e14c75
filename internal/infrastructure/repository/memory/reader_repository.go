package memory

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
)

type ScoreRepository struct {
	store *Store
}

func NewScoreRepository(store *Store) *ScoreRepository {
	return &ScoreRepository{store: store}
}

// CalculateWeeklyTeamScore returns the stored breakdown as a single row, or no
// rows when nothing was scored for the week.
func (r *ScoreRepository) CalculateWeeklyTeamScore(ctx context.Context, leagueID, teamID string, weekNumber int) ([]score.WeeklyTeamScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.scores[scoreKey{leagueID: leagueID, teamID: teamID, weekNumber: weekNumber}]
	if !ok {
		return []score.WeeklyTeamScore{}, nil
	}
	return []score.WeeklyTeamScore{item}, nil
}

type TradeRepository struct {
	store *Store
}

func NewTradeRepository(store *Store) *TradeRepository {
	return &TradeRepository{store: store}
}

// ListPendingDraftTrades returns pending offers made to or by the team.
func (r *TradeRepository) ListPendingDraftTrades(ctx context.Context, teamID, leagueID string) ([]trade.PendingTrade, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := r.store.now().UTC()
	out := make([]trade.PendingTrade, 0)
	for _, item := range r.store.trades {
		if item.LeagueID != leagueID || item.Status != trade.StatusPending {
			continue
		}
		if item.FromTeamID != teamID && item.ToTeamID != teamID {
			continue
		}
		out = append(out, cloneTrade(item, now))
	}
	return out, nil
}

func cloneTrade(item trade.PendingTrade, now time.Time) trade.PendingTrade {
	out := item
	out.OfferedPlayers = append([]trade.Player(nil), item.OfferedPlayers...)
	out.RequestedPlayers = append([]trade.Player(nil), item.RequestedPlayers...)
	out.OfferedPicks = append([]trade.Pick(nil), item.OfferedPicks...)
	out.RequestedPicks = append([]trade.Pick(nil), item.RequestedPicks...)
	if item.RespondedAt != nil {
		respondedAt := *item.RespondedAt
		out.RespondedAt = &respondedAt
	}
	out.IsExpired = !item.ExpiresAt.IsZero() && now.After(item.ExpiresAt)
	return out
}

type RosterRepository struct {
	store *Store
}

func NewRosterRepository(store *Store) *RosterRepository {
	return &RosterRepository{store: store}
}

func (r *RosterRepository) ListPlayerSpots(ctx context.Context, playerID, leagueID string) ([]roster.Spot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]roster.Spot, 0)
	for _, spot := range r.store.roster {
		if spot.playerID != playerID {
			continue
		}
		team, ok := r.store.teams[spot.teamID]
		if !ok || team.leagueID != leagueID {
			continue
		}
		out = append(out, roster.Spot{
			PlayerID: spot.playerID,
			TeamID:   team.id,
			TeamName: team.name,
			UserID:   cloneString(team.userID),
			LeagueID: team.leagueID,
		})
	}
	return out, nil
}
