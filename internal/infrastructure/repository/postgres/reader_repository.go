package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	qb "github.com/riskibarqy/fantasy-basketball/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) CalculateWeeklyTeamScore(ctx context.Context, leagueID, teamID string, weekNumber int) ([]score.WeeklyTeamScore, error) {
	query, args, err := qb.Call("calculate_weekly_team_score").
		Arg("p_league_id", leagueID).
		Arg("p_fantasy_team_id", teamID).
		Arg("p_week_number", weekNumber).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build calculate weekly team score query: %w", err)
	}

	var rows []weeklyTeamScoreRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("calculate weekly team score: %w", err)
	}

	out := make([]score.WeeklyTeamScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, score.WeeklyTeamScore(row))
	}
	return out, nil
}

type TradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) ListPendingDraftTrades(ctx context.Context, teamID, leagueID string) ([]trade.PendingTrade, error) {
	query, args, err := qb.Call("get_pending_draft_trades").
		Arg("p_team_id", teamID).
		Arg("p_league_id", leagueID).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get pending draft trades query: %w", err)
	}

	var rows []pendingTradeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get pending draft trades: %w", err)
	}

	out := make([]trade.PendingTrade, 0, len(rows))
	for _, row := range rows {
		item, err := pendingTradeFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode pending trade %s: %w", row.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func pendingTradeFromRow(row pendingTradeRow) (trade.PendingTrade, error) {
	item := trade.PendingTrade{
		ID:               row.ID,
		LeagueID:         row.LeagueID,
		FromTeamID:       row.FromTeamID,
		FromTeamName:     row.FromTeamName,
		ToTeamID:         row.ToTeamID,
		ToTeamName:       row.ToTeamName,
		OfferedPlayers:   []trade.Player{},
		OfferedPicks:     []trade.Pick{},
		RequestedPlayers: []trade.Player{},
		RequestedPicks:   []trade.Pick{},
		Status:           trade.Status(row.Status),
		CreatedAt:        row.CreatedAt.UTC(),
		ExpiresAt:        row.ExpiresAt.UTC(),
		IsExpired:        row.IsExpired,
	}
	if row.RespondedAt.Valid {
		respondedAt := row.RespondedAt.Time.UTC()
		item.RespondedAt = &respondedAt
	}

	if err := decodeJSON(row.OfferedPlayers, &item.OfferedPlayers); err != nil {
		return trade.PendingTrade{}, fmt.Errorf("offered players: %w", err)
	}
	if err := decodeJSON(row.OfferedPicks, &item.OfferedPicks); err != nil {
		return trade.PendingTrade{}, fmt.Errorf("offered picks: %w", err)
	}
	if err := decodeJSON(row.RequestedPlayers, &item.RequestedPlayers); err != nil {
		return trade.PendingTrade{}, fmt.Errorf("requested players: %w", err)
	}
	if err := decodeJSON(row.RequestedPicks, &item.RequestedPicks); err != nil {
		return trade.PendingTrade{}, fmt.Errorf("requested picks: %w", err)
	}
	return item, nil
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListPlayerSpots(ctx context.Context, playerID, leagueID string) ([]roster.Spot, error) {
	query, args, err := qb.Select("s.player_id", "s.fantasy_team_id", "t.team_name", "t.user_id", "t.league_id").
		From("fantasy_roster_spots s INNER JOIN fantasy_teams t ON t.id = s.fantasy_team_id").
		Where(
			qb.Eq("s.player_id", playerID),
			qb.Eq("t.league_id", leagueID),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player roster spots query: %w", err)
	}

	var rows []rosterSpotRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player roster spots: %w", err)
	}

	out := make([]roster.Spot, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Spot{
			PlayerID: row.PlayerID,
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
			UserID:   stringPtr(row.UserID),
			LeagueID: row.LeagueID,
		})
	}
	return out, nil
}
