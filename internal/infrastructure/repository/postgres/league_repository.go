package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	qb "github.com/riskibarqy/fantasy-basketball/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	query, args, err := qb.Select("id").
		From("fantasy_leagues").
		Where(qb.Eq("invite_code", code)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build invite code exists query: %w", err)
	}

	var id string
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check invite code: %w", err)
	}
	return true, nil
}

// Create writes league, season, teams, roster spots, draft order and draft
// state in one transaction.
func (r *LeagueRepository) Create(ctx context.Context, blueprint league.Blueprint) (created league.Created, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return league.Created{}, fmt.Errorf("begin create league tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	leagueRow := blueprint.League
	leagueRow.ID, err = insertReturningID(ctx, tx, "fantasy_leagues", leagueInsertFrom(leagueRow))
	if err != nil {
		if isUniqueViolation(err, "invite_code") {
			return league.Created{}, league.ErrDuplicateInviteCode
		}
		return league.Created{}, fmt.Errorf("insert league: %w", err)
	}

	season := blueprint.Season
	season.LeagueID = leagueRow.ID
	seasonModel, err := seasonInsertFrom(season)
	if err != nil {
		return league.Created{}, err
	}
	season.ID, err = insertReturningID(ctx, tx, "fantasy_league_seasons", seasonModel)
	if err != nil {
		return league.Created{}, fmt.Errorf("insert league season: %w", err)
	}

	teams := make([]league.Team, 0, len(blueprint.Teams))
	spots := make([]rosterSpotInsertModel, 0, len(blueprint.Teams)*season.RosterSize())
	for _, team := range blueprint.Teams {
		team.LeagueID = leagueRow.ID
		team.SeasonID = season.ID
		team.ID, err = insertReturningID(ctx, tx, "fantasy_teams", teamInsertModel{
			LeagueID:       team.LeagueID,
			SeasonID:       team.SeasonID,
			UserID:         nullableString(team.UserID),
			TeamName:       team.TeamName,
			IsCommissioner: team.IsCommissioner,
		})
		if err != nil {
			return league.Created{}, fmt.Errorf("insert team %q: %w", team.TeamName, err)
		}
		teams = append(teams, team)

		for _, spot := range league.RosterSpotsFor(season, team.ID) {
			spots = append(spots, rosterSpotInsertModel{
				SeasonID:         spot.SeasonID,
				TeamID:           spot.TeamID,
				IsInjuredReserve: spot.IsInjuredReserve,
			})
		}
	}

	if len(spots) > 0 {
		query, args, buildErr := qb.InsertModels("fantasy_roster_spots", spots, "")
		if buildErr != nil {
			return league.Created{}, fmt.Errorf("build insert roster spots query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return league.Created{}, fmt.Errorf("insert roster spots: %w", err)
		}
	}

	picks, err := insertDraftOrder(ctx, tx, season, teams, blueprint.DraftOrder)
	if err != nil {
		return league.Created{}, err
	}

	// The draft state stays inactive until the draft starts.
	if len(picks) > 0 {
		state := blueprint.DraftState
		query, args, buildErr := qb.InsertModel("fantasy_draft_current_state", draftStateInsertModel{
			LeagueID:          leagueRow.ID,
			SeasonID:          season.ID,
			CurrentPickID:     firstPickID(picks),
			CurrentPickNumber: state.CurrentPickNumber,
			CurrentRound:      state.CurrentRound,
			DraftStatus:       state.DraftStatus,
			DraftType:         string(state.DraftType),
			TotalRounds:       state.TotalRounds,
			TotalPicks:        state.TotalPicks,
		}, "")
		if buildErr != nil {
			return league.Created{}, fmt.Errorf("build insert draft state query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return league.Created{}, fmt.Errorf("insert draft state: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return league.Created{}, fmt.Errorf("commit create league tx: %w", err)
	}

	return league.Created{
		League:     leagueRow,
		Season:     season,
		Teams:      teams,
		DraftPicks: picks,
	}, nil
}

func insertReturningID(ctx context.Context, q queryer, table string, model any) (string, error) {
	query, args, err := qb.InsertModel(table, model, "RETURNING id")
	if err != nil {
		return "", fmt.Errorf("build insert %s query: %w", table, err)
	}

	var id string
	if err := q.GetContext(ctx, &id, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

// insertDraftOrder maps each pick's TeamPosition to its team and returns the
// picks in blueprint order with their generated ids.
func insertDraftOrder(ctx context.Context, q queryer, season league.Season, teams []league.Team, order []league.DraftPick) ([]league.DraftPick, error) {
	if len(order) == 0 {
		return []league.DraftPick{}, nil
	}

	models := make([]draftOrderInsertModel, 0, len(order))
	for _, pick := range order {
		if pick.TeamPosition < 1 || pick.TeamPosition > len(teams) {
			return nil, fmt.Errorf("draft pick %d references team position %d", pick.PickNumber, pick.TeamPosition)
		}
		models = append(models, draftOrderInsertModel{
			LeagueID:     season.LeagueID,
			SeasonID:     season.ID,
			PickNumber:   pick.PickNumber,
			Round:        pick.Round,
			TeamPosition: pick.TeamPosition,
			TeamID:       teams[pick.TeamPosition-1].ID,
		})
	}

	query, args, err := qb.InsertModels("fantasy_draft_order", models, "RETURNING id, pick_number, round, team_position, fantasy_team_id")
	if err != nil {
		return nil, fmt.Errorf("build insert draft order query: %w", err)
	}

	var rows []draftOrderRow
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("insert draft order: %w", err)
	}

	byNumber := make(map[int]draftOrderRow, len(rows))
	for _, row := range rows {
		byNumber[row.PickNumber] = row
	}

	picks := make([]league.DraftPick, 0, len(models))
	for _, model := range models {
		row, ok := byNumber[model.PickNumber]
		if !ok {
			return nil, fmt.Errorf("draft pick %d was not returned", model.PickNumber)
		}
		picks = append(picks, league.DraftPick{
			ID:           row.ID,
			PickNumber:   row.PickNumber,
			Round:        row.Round,
			TeamPosition: row.TeamPosition,
			TeamID:       row.TeamID,
		})
	}
	return picks, nil
}

func firstPickID(picks []league.DraftPick) string {
	first := picks[0]
	for _, pick := range picks[1:] {
		if pick.PickNumber < first.PickNumber {
			first = pick
		}
	}
	return first.ID
}

func leagueInsertFrom(item league.League) leagueInsertModel {
	return leagueInsertModel{
		Name:                 item.Name,
		Description:          nullableString(&item.Description),
		CommissionerID:       item.CommissionerID,
		MaxTeams:             item.MaxTeams,
		InviteCode:           item.InviteCode,
		PublicLeague:         item.PublicLeague,
		LeagueType:           item.LeagueType,
		ScoringType:          item.ScoringType,
		FantasyScoringFormat: item.FantasyScoringFormat,
		DraftType:            string(item.DraftType),
		DraftRounds:          item.DraftRounds,
		SalaryCapEnabled:     item.SalaryCapEnabled,
		TradesEnabled:        item.TradesEnabled,
	}
}

// seasonInsertFrom stores the roster configuration as a {"G":4,...} object.
func seasonInsertFrom(item league.Season) (seasonInsertModel, error) {
	positions := make(map[string]int, len(item.RosterPositions))
	for _, slot := range item.RosterPositions {
		positions[strings.ToUpper(strings.TrimSpace(slot.Position))] += slot.Count
	}
	rosterPositions, err := encodeJSON(positions)
	if err != nil {
		return seasonInsertModel{}, fmt.Errorf("encode roster positions: %w", err)
	}
	assignments, err := encodeJSON(item.PositionUnitAssignments)
	if err != nil {
		return seasonInsertModel{}, fmt.Errorf("encode position unit assignments: %w", err)
	}

	return seasonInsertModel{
		LeagueID:                item.LeagueID,
		SeasonYear:              item.SeasonYear,
		IsActive:                item.IsActive,
		SalaryCapAmount:         item.SalaryCapAmount,
		RosterPositions:         rosterPositions,
		StartersCount:           item.StartersCount,
		RotationCount:           item.RotationCount,
		BenchCount:              item.BenchCount,
		StartersMultiplier:      item.StartersMultiplier,
		RotationMultiplier:      item.RotationMultiplier,
		BenchMultiplier:         item.BenchMultiplier,
		PositionUnitAssignments: assignments,
		PlayoffTeams:            item.PlayoffTeams,
		PlayoffWeeks:            item.PlayoffWeeks,
		DraftDate:               nullableString(item.DraftDate),
		TradeDeadline:           nullableString(item.TradeDeadline),
	}, nil
}
