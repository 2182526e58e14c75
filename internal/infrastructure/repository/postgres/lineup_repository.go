package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	qb "github.com/riskibarqy/fantasy-basketball/internal/platform/querybuilder"
)

type PositionRepository struct {
	db *sqlx.DB
}

func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) ListPositions(ctx context.Context, leagueID, teamID string, zone lineup.Zone) ([]lineup.Position, error) {
	query, args, err := qb.Call("get_lineup_positions").
		Arg("p_league_id", leagueID).
		Arg("p_fantasy_team_id", teamID).
		OptionalArg("p_lineup_type", zone.String(), zone != "").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get lineup positions query: %w", err)
	}

	var rows []lineupPositionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get lineup positions: %w", err)
	}

	out := make([]lineup.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineup.Position{
			ID:             row.ID,
			LeagueID:       leagueID,
			TeamID:         teamID,
			PlayerID:       row.PlayerID,
			Zone:           lineup.Zone(row.LineupType),
			X:              row.PositionX,
			Y:              row.PositionY,
			PlayerName:     row.PlayerName.String,
			PlayerTeam:     row.PlayerTeam.String,
			PlayerPosition: row.PlayerPosition.String,
			PlayerAvatar:   row.PlayerAvatar.String,
			NBAPlayerID:    row.NBAPlayerID.Int64,
		})
	}
	return out, nil
}

func (r *PositionRepository) UpsertPosition(ctx context.Context, item lineup.PositionUpsert) error {
	query, args, err := qb.Call("upsert_lineup_position").
		Arg("p_league_id", item.LeagueID).
		Arg("p_fantasy_team_id", item.TeamID).
		Arg("p_player_id", item.PlayerID).
		Arg("p_lineup_type", item.Zone.String()).
		Arg("p_position_x", item.X).
		Arg("p_position_y", item.Y).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert lineup position query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup position: %w", err)
	}
	return nil
}

func (r *PositionRepository) RemovePosition(ctx context.Context, leagueID, teamID, playerID string, zone lineup.Zone) error {
	query, args, err := qb.Call("remove_lineup_position").
		Arg("p_league_id", leagueID).
		Arg("p_fantasy_team_id", teamID).
		Arg("p_player_id", playerID).
		Arg("p_lineup_type", zone.String()).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove lineup position query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove lineup position: %w", err)
	}
	return nil
}

func (r *PositionRepository) ClearZone(ctx context.Context, leagueID, teamID string, zone lineup.Zone) error {
	query, args, err := qb.DeleteFrom("lineup_positions").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("fantasy_team_id", teamID),
			qb.Eq("lineup_type", zone.String()),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear lineup zone query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear lineup zone: %w", err)
	}
	return nil
}

type WeeklyRepository struct {
	db *sqlx.DB
}

func NewWeeklyRepository(db *sqlx.DB) *WeeklyRepository {
	return &WeeklyRepository{db: db}
}

func (r *WeeklyRepository) GetWeekly(ctx context.Context, key lineup.WeekKey) (lineup.WeeklyLineup, bool, error) {
	query, args, err := qb.CallScalar("get_weekly_lineup").
		Arg("team_id_param", key.TeamID).
		Arg("week_num", key.WeekNumber).
		Arg("season_year_param", key.SeasonYear).
		ToSQL()
	if err != nil {
		return lineup.WeeklyLineup{}, false, fmt.Errorf("build get weekly lineup query: %w", err)
	}

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.WeeklyLineup{}, false, nil
		}
		return lineup.WeeklyLineup{}, false, fmt.Errorf("get weekly lineup: %w", err)
	}
	if raw == nil {
		return lineup.WeeklyLineup{}, false, nil
	}

	var doc *weeklyLineupDocument
	if err := decodeJSON(raw, &doc); err != nil {
		return lineup.WeeklyLineup{}, false, fmt.Errorf("decode weekly lineup: %w", err)
	}
	if doc == nil {
		return lineup.WeeklyLineup{}, false, nil
	}
	return weeklyFromDocument(*doc), true, nil
}

// SaveWeekly replaces starters and bench in one procedure call.
func (r *WeeklyRepository) SaveWeekly(ctx context.Context, key lineup.WeekKey, item lineup.WeeklyLineup) error {
	payload, err := encodeJSON(weeklyToDocument(item))
	if err != nil {
		return fmt.Errorf("encode weekly lineup: %w", err)
	}

	query, args, err := qb.CallScalar("save_weekly_lineup").
		Arg("team_id_param", key.TeamID).
		Arg("week_num", key.WeekNumber).
		Arg("season_year_param", key.SeasonYear).
		ArgCast("lineup_data_param", payload, "jsonb").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save weekly lineup query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save weekly lineup: %w", err)
	}
	return nil
}

func (r *WeeklyRepository) SetWeeklyLock(ctx context.Context, key lineup.WeekKey, locked bool, lockedAt *time.Time) (bool, error) {
	query, args, err := qb.Update("weekly_lineups").
		Set("is_locked", locked).
		Set("locked_at", lockedAt).
		Where(
			qb.Eq("fantasy_team_id", key.TeamID),
			qb.Eq("week_number", key.WeekNumber),
			qb.Eq("season_year", key.SeasonYear),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build set weekly lineup lock query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("set weekly lineup lock: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected set weekly lineup lock: %w", err)
	}
	return affected > 0, nil
}

func weeklyFromDocument(doc weeklyLineupDocument) lineup.WeeklyLineup {
	out := lineup.WeeklyLineup{
		Starters: slotsFromDocument(doc.Starters),
		Bench:    slotsFromDocument(doc.Bench),
		IsLocked: doc.IsLocked,
	}
	if doc.LockedAt != nil {
		lockedAt := doc.LockedAt.UTC()
		out.LockedAt = &lockedAt
	}
	return out
}

func slotsFromDocument(in []weeklySlotDocument) []lineup.Slot {
	out := make([]lineup.Slot, 0, len(in))
	for _, slot := range in {
		item := lineup.Slot{
			ID:        slot.ID,
			Position:  slot.Position,
			X:         slot.X,
			Y:         slot.Y,
			IsStarter: slot.IsStarter,
		}
		if p := slot.Player; p != nil {
			player := lineup.SlotPlayer(*p)
			item.Player = &player
		}
		out = append(out, item)
	}
	return out
}

func weeklyToDocument(item lineup.WeeklyLineup) weeklyLineupDocument {
	return weeklyLineupDocument{
		Starters: slotsToDocument(item.Starters),
		Bench:    slotsToDocument(item.Bench),
		IsLocked: item.IsLocked,
		LockedAt: item.LockedAt,
	}
}

func slotsToDocument(in []lineup.Slot) []weeklySlotDocument {
	out := make([]weeklySlotDocument, 0, len(in))
	for _, slot := range in {
		item := weeklySlotDocument{
			ID:        slot.ID,
			Position:  slot.Position,
			X:         slot.X,
			Y:         slot.Y,
			IsStarter: slot.IsStarter,
		}
		if p := slot.Player; p != nil {
			player := slotPlayerDocument(*p)
			item.Player = &player
		}
		out = append(out, item)
	}
	return out
}
