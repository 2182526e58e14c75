package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	qb "github.com/riskibarqy/fantasy-basketball/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) GetLeagueSeasonYear(ctx context.Context, leagueID string) (int, bool, error) {
	query, args, err := qb.Select("season_year").
		From("fantasy_league_seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("is_active", true),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build get league season year query: %w", err)
	}

	var year int
	if err := r.db.GetContext(ctx, &year, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get league season year: %w", err)
	}
	return year, true, nil
}

func (r *ScheduleRepository) ListWeeks(ctx context.Context, seasonYear int, activeOnly bool) ([]schedule.FantasyWeek, error) {
	conditions := []qb.Condition{qb.Eq("season_year", seasonYear)}
	if activeOnly {
		conditions = append(conditions, qb.Eq("is_active", true))
	}

	query, args, err := qb.Select(
		"id", "season_year", "week_number", "week_name", "start_date", "end_date",
		"is_regular_season", "is_playoff_week", "playoff_round", "is_active",
	).
		From("fantasy_season_weeks").
		Where(conditions...).
		OrderBy("week_number ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy weeks query: %w", err)
	}

	var rows []fantasyWeekRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy weeks: %w", err)
	}

	out := make([]schedule.FantasyWeek, 0, len(rows))
	for _, row := range rows {
		week := schedule.FantasyWeek{
			ID:              row.ID,
			SeasonYear:      row.SeasonYear,
			WeekNumber:      row.WeekNumber,
			WeekName:        row.WeekName,
			StartDate:       row.StartDate.UTC(),
			EndDate:         row.EndDate.UTC(),
			IsRegularSeason: row.IsRegularSeason,
			IsPlayoffWeek:   row.IsPlayoffWeek,
			IsActive:        row.IsActive,
		}
		if row.PlayoffRound.Valid {
			round := int(row.PlayoffRound.Int64)
			week.PlayoffRound = &round
		}
		out = append(out, week)
	}
	return out, nil
}

const matchupsFrom = `weekly_matchups m
LEFT JOIN fantasy_teams t1 ON t1.id = m.fantasy_team1_id
LEFT JOIN fantasy_teams t2 ON t2.id = m.fantasy_team2_id`

func (r *ScheduleRepository) ListMatchups(ctx context.Context, filter schedule.MatchupFilter) ([]schedule.WeeklyMatchup, error) {
	conditions := []qb.Condition{qb.Eq("m.league_id", filter.LeagueID)}
	if filter.WeekNumber != nil {
		conditions = append(conditions, qb.Eq("m.week_number", *filter.WeekNumber))
	}

	query, args, err := qb.Select(
		"m.id", "m.league_id", "m.week_number", "m.matchup_date", "m.status", "m.season_type",
		"m.fantasy_team1_id", "m.fantasy_team2_id", "m.fantasy_team1_score", "m.fantasy_team2_score",
		"t1.team_name AS team1_name", "t1.user_id AS team1_user_id", "t1.wins AS team1_wins", "t1.losses AS team1_losses",
		"t2.team_name AS team2_name", "t2.user_id AS team2_user_id", "t2.wins AS team2_wins", "t2.losses AS team2_losses",
	).
		From(matchupsFrom).
		Where(conditions...).
		OrderBy("m.matchup_date ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weekly matchups query: %w", err)
	}

	var rows []weeklyMatchupRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weekly matchups: %w", err)
	}

	out := make([]schedule.WeeklyMatchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.WeeklyMatchup{
			ID:          row.ID,
			LeagueID:    row.LeagueID,
			WeekNumber:  row.WeekNumber,
			MatchupDate: row.MatchupDate.UTC(),
			Status:      schedule.MatchupStatus(row.Status),
			SeasonType:  schedule.SeasonType(row.SeasonType),
			Team1ID:     row.Team1ID,
			Team2ID:     row.Team2ID,
			Team1Score:  floatPtr(row.Team1Score),
			Team2Score:  floatPtr(row.Team2Score),
			Team1: schedule.MatchupTeam{
				ID:       row.Team1ID,
				TeamName: row.Team1Name.String,
				UserID:   stringPtr(row.Team1UserID),
				Wins:     int(row.Team1Wins.Int64),
				Losses:   int(row.Team1Losses.Int64),
			},
			Team2: schedule.MatchupTeam{
				ID:       row.Team2ID,
				TeamName: row.Team2Name.String,
				UserID:   stringPtr(row.Team2UserID),
				Wins:     int(row.Team2Wins.Int64),
				Losses:   int(row.Team2Losses.Int64),
			},
		})
	}
	return out, nil
}

func (r *ScheduleRepository) EarliestScheduledWeek(ctx context.Context, leagueID string) (int, bool, error) {
	query, args, err := qb.Select("week_number").
		From("weekly_matchups").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("status", string(schedule.MatchupStatusScheduled)),
		).
		OrderBy("week_number ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build earliest scheduled week query: %w", err)
	}

	var week int
	if err := r.db.GetContext(ctx, &week, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get earliest scheduled week: %w", err)
	}
	return week, true, nil
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	out := value.Float64
	return &out
}
