package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-basketball/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Exists(ctx context.Context, nbaPlayerID int64) (bool, error) {
	query, args, err := qb.Select("id").
		From("players").
		Where(qb.Eq("nba_player_id", nbaPlayerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build player exists query: %w", err)
	}

	var id string
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check player exists: %w", err)
	}
	return true, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate player: %w", err)
	}

	query, args, err := qb.CallScalar("upsert_player").
		Arg("p_nba_player_id", item.NBAPlayerID).
		Arg("p_name", item.Name).
		Arg("p_first_name", item.FirstName).
		Arg("p_last_name", item.LastName).
		Arg("p_position", item.Position).
		Arg("p_team_id", item.TeamID).
		Arg("p_team_name", item.TeamName).
		Arg("p_team_abbreviation", item.TeamAbbreviation).
		Arg("p_jersey_number", item.JerseyNumber).
		Arg("p_height", item.Height).
		Arg("p_weight", item.Weight).
		Arg("p_birth_date", item.BirthDate).
		Arg("p_birth_country", item.BirthCountry).
		Arg("p_college", item.College).
		Arg("p_draft_year", item.DraftYear).
		Arg("p_draft_round", item.DraftRound).
		Arg("p_draft_number", item.DraftNumber).
		Arg("p_salary", 0).
		Arg("p_is_active", item.IsActive).
		Arg("p_is_rookie", item.IsRookie).
		Arg("p_years_pro", item.YearsPro).
		Arg("p_from_year", item.FromYear).
		Arg("p_to_year", item.ToYear).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player %d: %w", item.NBAPlayerID, err)
	}
	return nil
}
