package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const dateLayout = "2006-01-02"

type lineupPositionDTO struct {
	ID             string  `json:"id"`
	LeagueID       string  `json:"league_id"`
	TeamID         string  `json:"team_id"`
	PlayerID       string  `json:"player_id"`
	Zone           string  `json:"zone"`
	PositionX      float64 `json:"position_x"`
	PositionY      float64 `json:"position_y"`
	PlayerName     string  `json:"player_name,omitempty"`
	PlayerTeam     string  `json:"player_team,omitempty"`
	PlayerPosition string  `json:"player_position,omitempty"`
	PlayerAvatar   string  `json:"player_avatar,omitempty"`
	NBAPlayerID    int64   `json:"nba_player_id,omitempty"`
}

type upsertLineupPositionRequest struct {
	PlayerID  string   `json:"player_id" validate:"required"`
	Zone      string   `json:"zone" validate:"required"`
	PositionX *float64 `json:"position_x" validate:"required"`
	PositionY *float64 `json:"position_y" validate:"required"`
}

type slotPlayerDTO struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Pos           string  `json:"pos"`
	Status        string  `json:"status,omitempty"`
	Game          string  `json:"game,omitempty"`
	GameTime      string  `json:"game_time,omitempty"`
	ProjPts       float64 `json:"proj_pts"`
	ActualPts     float64 `json:"actual_pts"`
	StartPct      float64 `json:"start_pct"`
	RosPct        float64 `json:"ros_pct"`
	MatchupRating string  `json:"matchup_rating,omitempty"`
	Avatar        string  `json:"avatar,omitempty"`
	NBAPlayerID   int64   `json:"nba_player_id,omitempty"`
}

type slotDTO struct {
	ID        string         `json:"id" validate:"required"`
	Position  string         `json:"position" validate:"required"`
	Player    *slotPlayerDTO `json:"player" validate:"omitempty"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	IsStarter bool           `json:"is_starter"`
}

type weeklyLineupDTO struct {
	Starters []slotDTO `json:"starters"`
	Bench    []slotDTO `json:"bench"`
	IsLocked bool      `json:"is_locked"`
	LockedAt *string   `json:"locked_at"`
}

type saveWeeklyLineupRequest struct {
	Starters []slotDTO `json:"starters" validate:"dive"`
	Bench    []slotDTO `json:"bench" validate:"dive"`
}

type autoLineupRequest struct {
	WeekNumber *int   `json:"week_number" validate:"required,min=0"`
	SeasonYear int    `json:"season_year" validate:"required,gt=0"`
	SeasonID   string `json:"season_id" validate:"required"`
	MatchupID  string `json:"matchup_id" validate:"required"`
}

type autoLineupDTO struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	LineupEntries  int    `json:"lineup_entries"`
	RemovedInvalid int    `json:"removed_invalid"`
}

type currentWeekDTO struct {
	LeagueID   string `json:"league_id"`
	WeekNumber int    `json:"week_number"`
}

type matchupTeamDTO struct {
	ID       string  `json:"id"`
	TeamName string  `json:"team_name"`
	UserID   *string `json:"user_id"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
}

type matchupDTO struct {
	ID          string         `json:"id"`
	LeagueID    string         `json:"league_id"`
	WeekNumber  int            `json:"week_number"`
	MatchupDate string         `json:"matchup_date"`
	Status      string         `json:"status"`
	SeasonType  string         `json:"season_type"`
	Team1Score  *float64       `json:"team1_score"`
	Team2Score  *float64       `json:"team2_score"`
	Team1       matchupTeamDTO `json:"team1"`
	Team2       matchupTeamDTO `json:"team2"`
}

type fantasyWeekDTO struct {
	ID              string `json:"id"`
	SeasonYear      int    `json:"season_year"`
	WeekNumber      int    `json:"week_number"`
	WeekName        string `json:"week_name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	IsRegularSeason bool   `json:"is_regular_season"`
	IsPlayoffWeek   bool   `json:"is_playoff_week"`
	PlayoffRound    *int   `json:"playoff_round"`
}

type currentFantasyWeekDTO struct {
	Week  *fantasyWeekDTO `json:"week"`
	Phase string          `json:"phase"`
}

type weeklyTeamScoreDTO struct {
	TotalScore    float64 `json:"total_score"`
	StartersScore float64 `json:"starters_score"`
	RotationScore float64 `json:"rotation_score"`
	BenchScore    float64 `json:"bench_score"`
	PlayerCount   int     `json:"player_count"`
}

type matchupScoreDTO struct {
	MatchupID  string              `json:"matchup_id"`
	WeekNumber int                 `json:"week_number"`
	Team1ID    string              `json:"team1_id"`
	Team2ID    string              `json:"team2_id"`
	Team1Score *weeklyTeamScoreDTO `json:"team1_score"`
	Team2Score *weeklyTeamScoreDTO `json:"team2_score"`
	LeaderID   string              `json:"leader_id,omitempty"`
}

type tradePlayerDTO struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Position         string  `json:"position"`
	TeamAbbreviation string  `json:"team_abbreviation"`
	NBAPlayerID      int64   `json:"nba_player_id"`
	Salary           float64 `json:"salary"`
}

type tradePickDTO struct {
	PickNumber   int  `json:"pick_number"`
	Round        int  `json:"round"`
	TeamPosition int  `json:"team_position"`
	IsCompleted  bool `json:"is_completed"`
}

type pendingTradeDTO struct {
	ID               string           `json:"id"`
	LeagueID         string           `json:"league_id"`
	FromTeamID       string           `json:"from_team_id"`
	FromTeamName     string           `json:"from_team_name"`
	ToTeamID         string           `json:"to_team_id"`
	ToTeamName       string           `json:"to_team_name"`
	OfferedPlayers   []tradePlayerDTO `json:"offered_players"`
	OfferedPicks     []tradePickDTO   `json:"offered_picks"`
	RequestedPlayers []tradePlayerDTO `json:"requested_players"`
	RequestedPicks   []tradePickDTO   `json:"requested_picks"`
	Status           string           `json:"status"`
	CreatedAt        string           `json:"created_at"`
	ExpiresAt        string           `json:"expires_at"`
	RespondedAt      *string          `json:"responded_at"`
	IsExpired        bool             `json:"is_expired"`
}

type countDTO struct {
	Count int `json:"count"`
}

type rosterStatusDTO struct {
	IsOnRoster   bool   `json:"is_on_roster"`
	TeamID       string `json:"team_id,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	IsOnUserTeam bool   `json:"is_on_user_team"`
}

func positionToDTO(v lineup.Position) lineupPositionDTO {
	return lineupPositionDTO{
		ID:             v.ID,
		LeagueID:       v.LeagueID,
		TeamID:         v.TeamID,
		PlayerID:       v.PlayerID,
		Zone:           v.Zone.String(),
		PositionX:      v.X,
		PositionY:      v.Y,
		PlayerName:     v.PlayerName,
		PlayerTeam:     v.PlayerTeam,
		PlayerPosition: v.PlayerPosition,
		PlayerAvatar:   v.PlayerAvatar,
		NBAPlayerID:    v.NBAPlayerID,
	}
}

func weeklyLineupToDTO(v lineup.WeeklyLineup) weeklyLineupDTO {
	return weeklyLineupDTO{
		Starters: slotsToDTO(v.Starters),
		Bench:    slotsToDTO(v.Bench),
		IsLocked: v.IsLocked,
		LockedAt: formatOptionalTime(v.LockedAt),
	}
}

func slotsToDTO(in []lineup.Slot) []slotDTO {
	out := make([]slotDTO, 0, len(in))
	for _, slot := range in {
		item := slotDTO{
			ID:        slot.ID,
			Position:  slot.Position,
			X:         slot.X,
			Y:         slot.Y,
			IsStarter: slot.IsStarter,
		}
		if p := slot.Player; p != nil {
			item.Player = &slotPlayerDTO{
				ID:            p.ID,
				Name:          p.Name,
				Team:          p.Team,
				Pos:           p.Pos,
				Status:        p.Status,
				Game:          p.Game,
				GameTime:      p.GameTime,
				ProjPts:       p.ProjPts,
				ActualPts:     p.ActualPts,
				StartPct:      p.StartPct,
				RosPct:        p.RosPct,
				MatchupRating: p.MatchupRating,
				Avatar:        p.Avatar,
				NBAPlayerID:   p.NBAPlayerID,
			}
		}
		out = append(out, item)
	}
	return out
}

func (req saveWeeklyLineupRequest) toDomain() lineup.WeeklyLineup {
	return lineup.WeeklyLineup{
		Starters: slotsFromDTO(req.Starters),
		Bench:    slotsFromDTO(req.Bench),
	}
}

func slotsFromDTO(in []slotDTO) []lineup.Slot {
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
			item.Player = &lineup.SlotPlayer{
				ID:            p.ID,
				Name:          p.Name,
				Team:          p.Team,
				Pos:           p.Pos,
				Status:        p.Status,
				Game:          p.Game,
				GameTime:      p.GameTime,
				ProjPts:       p.ProjPts,
				ActualPts:     p.ActualPts,
				StartPct:      p.StartPct,
				RosPct:        p.RosPct,
				MatchupRating: p.MatchupRating,
				Avatar:        p.Avatar,
				NBAPlayerID:   p.NBAPlayerID,
			}
		}
		out = append(out, item)
	}
	return out
}

func matchupToDTO(v schedule.WeeklyMatchup) matchupDTO {
	return matchupDTO{
		ID:          v.ID,
		LeagueID:    v.LeagueID,
		WeekNumber:  v.WeekNumber,
		MatchupDate: formatDate(v.MatchupDate),
		Status:      string(v.Status),
		SeasonType:  string(v.SeasonType),
		Team1Score:  v.Team1Score,
		Team2Score:  v.Team2Score,
		Team1:       matchupTeamToDTO(v.Team1),
		Team2:       matchupTeamToDTO(v.Team2),
	}
}

func matchupTeamToDTO(v schedule.MatchupTeam) matchupTeamDTO {
	return matchupTeamDTO{
		ID:       v.ID,
		TeamName: v.TeamName,
		UserID:   v.UserID,
		Wins:     v.Wins,
		Losses:   v.Losses,
	}
}

func currentFantasyWeekToDTO(v usecase.CurrentFantasyWeek) currentFantasyWeekDTO {
	out := currentFantasyWeekDTO{Phase: string(v.Phase)}
	if w := v.Week; w != nil {
		out.Week = &fantasyWeekDTO{
			ID:              w.ID,
			SeasonYear:      w.SeasonYear,
			WeekNumber:      w.WeekNumber,
			WeekName:        w.WeekName,
			StartDate:       formatDate(w.StartDate),
			EndDate:         formatDate(w.EndDate),
			IsRegularSeason: w.IsRegularSeason,
			IsPlayoffWeek:   w.IsPlayoffWeek,
			PlayoffRound:    w.PlayoffRound,
		}
	}
	return out
}

func weeklyTeamScoreToDTO(v score.WeeklyTeamScore) weeklyTeamScoreDTO {
	return weeklyTeamScoreDTO{
		TotalScore:    v.TotalScore,
		StartersScore: v.StartersScore,
		RotationScore: v.RotationScore,
		BenchScore:    v.BenchScore,
		PlayerCount:   v.PlayerCount,
	}
}

func optionalScoreToDTO(v *score.WeeklyTeamScore) *weeklyTeamScoreDTO {
	if v == nil {
		return nil
	}
	out := weeklyTeamScoreToDTO(*v)
	return &out
}

func matchupScoreToDTO(v score.MatchupScore) matchupScoreDTO {
	return matchupScoreDTO{
		MatchupID:  v.MatchupID,
		WeekNumber: v.WeekNumber,
		Team1ID:    v.Team1ID,
		Team2ID:    v.Team2ID,
		Team1Score: optionalScoreToDTO(v.Team1Score),
		Team2Score: optionalScoreToDTO(v.Team2Score),
		LeaderID:   v.Leader(),
	}
}

func pendingTradeToDTO(v trade.PendingTrade) pendingTradeDTO {
	return pendingTradeDTO{
		ID:               v.ID,
		LeagueID:         v.LeagueID,
		FromTeamID:       v.FromTeamID,
		FromTeamName:     v.FromTeamName,
		ToTeamID:         v.ToTeamID,
		ToTeamName:       v.ToTeamName,
		OfferedPlayers:   tradePlayersToDTO(v.OfferedPlayers),
		OfferedPicks:     tradePicksToDTO(v.OfferedPicks),
		RequestedPlayers: tradePlayersToDTO(v.RequestedPlayers),
		RequestedPicks:   tradePicksToDTO(v.RequestedPicks),
		Status:           string(v.Status),
		CreatedAt:        v.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:        v.ExpiresAt.UTC().Format(time.RFC3339),
		RespondedAt:      formatOptionalTime(v.RespondedAt),
		IsExpired:        v.IsExpired,
	}
}

func tradePlayersToDTO(in []trade.Player) []tradePlayerDTO {
	out := make([]tradePlayerDTO, 0, len(in))
	for _, p := range in {
		out = append(out, tradePlayerDTO{
			ID:               p.ID,
			Name:             p.Name,
			Position:         p.Position,
			TeamAbbreviation: p.TeamAbbreviation,
			NBAPlayerID:      p.NBAPlayerID,
			Salary:           p.Salary,
		})
	}
	return out
}

func tradePicksToDTO(in []trade.Pick) []tradePickDTO {
	out := make([]tradePickDTO, 0, len(in))
	for _, p := range in {
		out = append(out, tradePickDTO{
			PickNumber:   p.PickNumber,
			Round:        p.Round,
			TeamPosition: p.TeamPosition,
			IsCompleted:  p.IsCompleted,
		})
	}
	return out
}

func rosterStatusToDTO(v roster.PlayerStatus) rosterStatusDTO {
	return rosterStatusDTO{
		IsOnRoster:   v.IsOnRoster,
		TeamID:       v.TeamID,
		TeamName:     v.TeamName,
		IsOnUserTeam: v.IsOnUserTeam,
	}
}

func formatOptionalTime(v *time.Time) *string {
	if v == nil {
		return nil
	}
	out := v.UTC().Format(time.RFC3339)
	return &out
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(dateLayout)
}
