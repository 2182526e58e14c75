package postgres

import (
	"database/sql"
	"time"
)

type lineupPositionRow struct {
	ID             string         `db:"id"`
	PlayerID       string         `db:"player_id"`
	LineupType     string         `db:"lineup_type"`
	PositionX      float64        `db:"position_x"`
	PositionY      float64        `db:"position_y"`
	PlayerName     sql.NullString `db:"player_name"`
	PlayerTeam     sql.NullString `db:"player_team"`
	PlayerPosition sql.NullString `db:"player_position"`
	PlayerAvatar   sql.NullString `db:"player_avatar"`
	NBAPlayerID    sql.NullInt64  `db:"nba_player_id"`
}

// weeklyLineupDocument is the jsonb shape read and written by the weekly
// lineup procedures.
type weeklyLineupDocument struct {
	Starters []weeklySlotDocument `json:"starters"`
	Bench    []weeklySlotDocument `json:"bench"`
	IsLocked bool                 `json:"isLocked"`
	LockedAt *time.Time           `json:"lockedAt,omitempty"`
}

type weeklySlotDocument struct {
	ID        string              `json:"id"`
	Position  string              `json:"position"`
	Player    *slotPlayerDocument `json:"player"`
	X         float64             `json:"x"`
	Y         float64             `json:"y"`
	IsStarter bool                `json:"isStarter"`
}

type slotPlayerDocument struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Pos           string  `json:"pos"`
	Status        string  `json:"status"`
	Game          string  `json:"game"`
	GameTime      string  `json:"gameTime"`
	ProjPts       float64 `json:"projPts"`
	ActualPts     float64 `json:"actualPts"`
	StartPct      float64 `json:"startPct"`
	RosPct        float64 `json:"rosPct"`
	MatchupRating string  `json:"matchupRating"`
	Avatar        string  `json:"avatar"`
	NBAPlayerID   int64   `json:"nba_player_id"`
}

type fantasyWeekRow struct {
	ID              string        `db:"id"`
	SeasonYear      int           `db:"season_year"`
	WeekNumber      int           `db:"week_number"`
	WeekName        string        `db:"week_name"`
	StartDate       time.Time     `db:"start_date"`
	EndDate         time.Time     `db:"end_date"`
	IsRegularSeason bool          `db:"is_regular_season"`
	IsPlayoffWeek   bool          `db:"is_playoff_week"`
	PlayoffRound    sql.NullInt64 `db:"playoff_round"`
	IsActive        bool          `db:"is_active"`
}

type weeklyMatchupRow struct {
	ID            string          `db:"id"`
	LeagueID      string          `db:"league_id"`
	WeekNumber    int             `db:"week_number"`
	MatchupDate   time.Time       `db:"matchup_date"`
	Status        string          `db:"status"`
	SeasonType    string          `db:"season_type"`
	Team1ID       string          `db:"fantasy_team1_id"`
	Team2ID       string          `db:"fantasy_team2_id"`
	Team1Score    sql.NullFloat64 `db:"fantasy_team1_score"`
	Team2Score    sql.NullFloat64 `db:"fantasy_team2_score"`
	Team1Name     sql.NullString  `db:"team1_name"`
	Team1UserID   sql.NullString  `db:"team1_user_id"`
	Team1Wins     sql.NullInt64   `db:"team1_wins"`
	Team1Losses   sql.NullInt64   `db:"team1_losses"`
	Team2Name     sql.NullString  `db:"team2_name"`
	Team2UserID   sql.NullString  `db:"team2_user_id"`
	Team2Wins     sql.NullInt64   `db:"team2_wins"`
	Team2Losses   sql.NullInt64   `db:"team2_losses"`
}

type weeklyTeamScoreRow struct {
	TotalScore    float64 `db:"total_score"`
	StartersScore float64 `db:"starters_score"`
	RotationScore float64 `db:"rotation_score"`
	BenchScore    float64 `db:"bench_score"`
	PlayerCount   int     `db:"player_count"`
}

type pendingTradeRow struct {
	ID               string       `db:"id"`
	LeagueID         string       `db:"league_id"`
	FromTeamID       string       `db:"from_team_id"`
	FromTeamName     string       `db:"from_team_name"`
	ToTeamID         string       `db:"to_team_id"`
	ToTeamName       string       `db:"to_team_name"`
	OfferedPlayers   []byte       `db:"offered_players"`
	OfferedPicks     []byte       `db:"offered_picks"`
	RequestedPlayers []byte       `db:"requested_players"`
	RequestedPicks   []byte       `db:"requested_picks"`
	Status           string       `db:"status"`
	CreatedAt        time.Time    `db:"created_at"`
	ExpiresAt        time.Time    `db:"expires_at"`
	RespondedAt      sql.NullTime `db:"responded_at"`
	IsExpired        bool         `db:"is_expired"`
}

type rosterSpotRow struct {
	PlayerID string         `db:"player_id"`
	TeamID   string         `db:"fantasy_team_id"`
	TeamName string         `db:"team_name"`
	UserID   sql.NullString `db:"user_id"`
	LeagueID string         `db:"league_id"`
}

type leagueInsertModel struct {
	Name                 string         `db:"name"`
	Description          sql.NullString `db:"description"`
	CommissionerID       string         `db:"commissioner_id"`
	MaxTeams             int            `db:"max_teams"`
	InviteCode           string         `db:"invite_code"`
	PublicLeague         bool           `db:"public_league"`
	LeagueType           string         `db:"league_type"`
	ScoringType          string         `db:"scoring_type"`
	FantasyScoringFormat string         `db:"fantasy_scoring_format"`
	DraftType            string         `db:"draft_type"`
	DraftRounds          int            `db:"draft_rounds"`
	SalaryCapEnabled     bool           `db:"salary_cap_enabled"`
	TradesEnabled        bool           `db:"trades_enabled"`
}

type seasonInsertModel struct {
	LeagueID                string         `db:"league_id"`
	SeasonYear              int            `db:"season_year"`
	IsActive                bool           `db:"is_active"`
	SalaryCapAmount         int64          `db:"salary_cap_amount"`
	RosterPositions         string         `db:"roster_positions"`
	StartersCount           int            `db:"starters_count"`
	RotationCount           int            `db:"rotation_count"`
	BenchCount              int            `db:"bench_count"`
	StartersMultiplier      float64        `db:"starters_multiplier"`
	RotationMultiplier      float64        `db:"rotation_multiplier"`
	BenchMultiplier         float64        `db:"bench_multiplier"`
	PositionUnitAssignments string         `db:"position_unit_assignments"`
	PlayoffTeams            int            `db:"playoff_teams"`
	PlayoffWeeks            int            `db:"playoff_weeks"`
	DraftDate               sql.NullString `db:"draft_date"`
	TradeDeadline           sql.NullString `db:"trade_deadline"`
}

type teamInsertModel struct {
	LeagueID       string         `db:"league_id"`
	SeasonID       string         `db:"season_id"`
	UserID         sql.NullString `db:"user_id"`
	TeamName       string         `db:"team_name"`
	IsCommissioner bool           `db:"is_commissioner"`
	Wins           int            `db:"wins"`
	Losses         int            `db:"losses"`
	Ties           int            `db:"ties"`
}

type rosterSpotInsertModel struct {
	SeasonID         string `db:"season_id"`
	TeamID           string `db:"fantasy_team_id"`
	IsInjuredReserve bool   `db:"is_injured_reserve"`
}

type draftOrderInsertModel struct {
	LeagueID     string `db:"league_id"`
	SeasonID     string `db:"season_id"`
	PickNumber   int    `db:"pick_number"`
	Round        int    `db:"round"`
	TeamPosition int    `db:"team_position"`
	TeamID       string `db:"fantasy_team_id"`
	IsCompleted  bool   `db:"is_completed"`
	IsTraded     bool   `db:"is_traded"`
}

type draftOrderRow struct {
	ID           string `db:"id"`
	PickNumber   int    `db:"pick_number"`
	Round        int    `db:"round"`
	TeamPosition int    `db:"team_position"`
	TeamID       string `db:"fantasy_team_id"`
}

type draftStateInsertModel struct {
	LeagueID          string `db:"league_id"`
	SeasonID          string `db:"season_id"`
	CurrentPickID     string `db:"current_pick_id"`
	CurrentPickNumber int    `db:"current_pick_number"`
	CurrentRound      int    `db:"current_round"`
	DraftStatus       string `db:"draft_status"`
	DraftType         string `db:"draft_type"`
	TotalRounds       int    `db:"total_rounds"`
	TotalPicks        int    `db:"total_picks"`
	PicksCompleted    int    `db:"picks_completed"`
	IsActive          bool   `db:"is_active"`
}
