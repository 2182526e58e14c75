package memory

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the fixture dataset loaded into a Store.
type Seed struct {
	Leagues       []SeedLeague    `yaml:"leagues"`
	Teams         []SeedTeam      `yaml:"teams"`
	Players       []SeedPlayer    `yaml:"players"`
	RosterSpots   []SeedSpot      `yaml:"roster_spots"`
	Weeks         []SeedWeek      `yaml:"weeks"`
	Matchups      []SeedMatchup   `yaml:"matchups"`
	TeamScores    []SeedTeamScore `yaml:"team_scores"`
	PendingTrades []SeedTrade     `yaml:"pending_trades"`
}

type SeedLeague struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	SeasonYear int    `yaml:"season_year"`
	InviteCode string `yaml:"invite_code"`
}

type SeedTeam struct {
	ID       string `yaml:"id"`
	LeagueID string `yaml:"league_id"`
	Name     string `yaml:"name"`
	UserID   string `yaml:"user_id"`
	Wins     int    `yaml:"wins"`
	Losses   int    `yaml:"losses"`
}

type SeedPlayer struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Team        string `yaml:"team"`
	Position    string `yaml:"position"`
	Avatar      string `yaml:"avatar"`
	NBAPlayerID int64  `yaml:"nba_player_id"`
}

type SeedSpot struct {
	PlayerID string `yaml:"player_id"`
	TeamID   string `yaml:"team_id"`
}

type SeedWeek struct {
	ID              string `yaml:"id"`
	SeasonYear      int    `yaml:"season_year"`
	WeekNumber      int    `yaml:"week_number"`
	WeekName        string `yaml:"week_name"`
	StartDate       string `yaml:"start_date"`
	EndDate         string `yaml:"end_date"`
	IsRegularSeason bool   `yaml:"is_regular_season"`
	IsPlayoffWeek   bool   `yaml:"is_playoff_week"`
	PlayoffRound    *int   `yaml:"playoff_round"`
	IsActive        bool   `yaml:"is_active"`
}

type SeedMatchup struct {
	ID          string   `yaml:"id"`
	LeagueID    string   `yaml:"league_id"`
	WeekNumber  int      `yaml:"week_number"`
	MatchupDate string   `yaml:"matchup_date"`
	Status      string   `yaml:"status"`
	SeasonType  string   `yaml:"season_type"`
	Team1ID     string   `yaml:"team1_id"`
	Team2ID     string   `yaml:"team2_id"`
	Team1Score  *float64 `yaml:"team1_score"`
	Team2Score  *float64 `yaml:"team2_score"`
}

type SeedTeamScore struct {
	LeagueID      string  `yaml:"league_id"`
	TeamID        string  `yaml:"team_id"`
	WeekNumber    int     `yaml:"week_number"`
	TotalScore    float64 `yaml:"total_score"`
	StartersScore float64 `yaml:"starters_score"`
	RotationScore float64 `yaml:"rotation_score"`
	BenchScore    float64 `yaml:"bench_score"`
	PlayerCount   int     `yaml:"player_count"`
}

type SeedPick struct {
	PickNumber   int  `yaml:"pick_number"`
	Round        int  `yaml:"round"`
	TeamPosition int  `yaml:"team_position"`
	IsCompleted  bool `yaml:"is_completed"`
}

type SeedTrade struct {
	ID             string     `yaml:"id"`
	LeagueID       string     `yaml:"league_id"`
	FromTeamID     string     `yaml:"from_team_id"`
	ToTeamID       string     `yaml:"to_team_id"`
	Status         string     `yaml:"status"`
	CreatedAt      time.Time  `yaml:"created_at"`
	ExpiresAt      time.Time  `yaml:"expires_at"`
	OfferedPicks   []SeedPick `yaml:"offered_picks"`
	RequestedPicks []SeedPick `yaml:"requested_picks"`
}

// LoadSeed parses the embedded fixture dataset.
func LoadSeed() (Seed, error) {
	return ParseSeed(seedYAML)
}

func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

func (s *Store) apply(seed Seed) error {
	for _, item := range seed.Leagues {
		s.leagues[item.ID] = leagueRecord{
			league:     league.League{ID: item.ID, Name: item.Name, InviteCode: item.InviteCode},
			seasonID:   item.ID + "-season",
			seasonYear: item.SeasonYear,
		}
		if item.InviteCode != "" {
			s.inviteCodes[item.InviteCode] = item.ID
		}
	}

	for _, item := range seed.Teams {
		team := teamRecord{
			id:       item.ID,
			leagueID: item.LeagueID,
			name:     item.Name,
			wins:     item.Wins,
			losses:   item.Losses,
		}
		if userID := strings.TrimSpace(item.UserID); userID != "" {
			team.userID = &userID
		}
		s.teams[item.ID] = team
	}

	for _, item := range seed.Players {
		if _, ok := s.catalog[item.ID]; ok {
			return fmt.Errorf("duplicate seed player %s", item.ID)
		}
		s.catalog[item.ID] = catalogPlayer{
			id:          item.ID,
			name:        item.Name,
			team:        item.Team,
			position:    item.Position,
			avatar:      item.Avatar,
			nbaPlayerID: item.NBAPlayerID,
		}
	}

	for _, item := range seed.RosterSpots {
		if _, ok := s.teams[item.TeamID]; !ok {
			return fmt.Errorf("roster spot references unknown team %s", item.TeamID)
		}
		s.roster = append(s.roster, rosterRecord{playerID: item.PlayerID, teamID: item.TeamID})
	}

	for _, item := range seed.Weeks {
		start, err := time.Parse(time.DateOnly, item.StartDate)
		if err != nil {
			return fmt.Errorf("parse start date of week %s: %w", item.ID, err)
		}
		end, err := time.Parse(time.DateOnly, item.EndDate)
		if err != nil {
			return fmt.Errorf("parse end date of week %s: %w", item.ID, err)
		}
		s.weeks = append(s.weeks, schedule.FantasyWeek{
			ID:              item.ID,
			SeasonYear:      item.SeasonYear,
			WeekNumber:      item.WeekNumber,
			WeekName:        item.WeekName,
			StartDate:       start,
			EndDate:         end,
			IsRegularSeason: item.IsRegularSeason,
			IsPlayoffWeek:   item.IsPlayoffWeek,
			PlayoffRound:    cloneInt(item.PlayoffRound),
			IsActive:        item.IsActive,
		})
	}

	for _, item := range seed.Matchups {
		day, err := time.Parse(time.DateOnly, item.MatchupDate)
		if err != nil {
			return fmt.Errorf("parse date of matchup %s: %w", item.ID, err)
		}
		s.matchups = append(s.matchups, schedule.WeeklyMatchup{
			ID:          item.ID,
			LeagueID:    item.LeagueID,
			WeekNumber:  item.WeekNumber,
			MatchupDate: day,
			Status:      schedule.MatchupStatus(item.Status),
			SeasonType:  schedule.SeasonType(item.SeasonType),
			Team1ID:     item.Team1ID,
			Team2ID:     item.Team2ID,
			Team1Score:  cloneFloat(item.Team1Score),
			Team2Score:  cloneFloat(item.Team2Score),
		})
	}

	for _, item := range seed.TeamScores {
		s.scores[scoreKey{leagueID: item.LeagueID, teamID: item.TeamID, weekNumber: item.WeekNumber}] = score.WeeklyTeamScore{
			TotalScore:    item.TotalScore,
			StartersScore: item.StartersScore,
			RotationScore: item.RotationScore,
			BenchScore:    item.BenchScore,
			PlayerCount:   item.PlayerCount,
		}
	}

	for _, item := range seed.PendingTrades {
		s.trades = append(s.trades, trade.PendingTrade{
			ID:             item.ID,
			LeagueID:       item.LeagueID,
			FromTeamID:     item.FromTeamID,
			FromTeamName:   s.teams[item.FromTeamID].name,
			ToTeamID:       item.ToTeamID,
			ToTeamName:     s.teams[item.ToTeamID].name,
			OfferedPicks:   seedPicks(item.OfferedPicks),
			RequestedPicks: seedPicks(item.RequestedPicks),
			Status:         trade.Status(item.Status),
			CreatedAt:      item.CreatedAt.UTC(),
			ExpiresAt:      item.ExpiresAt.UTC(),
		})
	}

	return nil
}

func seedPicks(in []SeedPick) []trade.Pick {
	out := make([]trade.Pick, 0, len(in))
	for _, pick := range in {
		out = append(out, trade.Pick{
			PickNumber:   pick.PickNumber,
			Round:        pick.Round,
			TeamPosition: pick.TeamPosition,
			IsCompleted:  pick.IsCompleted,
		})
	}
	return out
}
