package league

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateInviteCode = errors.New("duplicate invite code")
)

type DraftType string

const (
	DraftTypeSnake  DraftType = "snake"
	DraftTypeLinear DraftType = "linear"
)

const DefaultSalaryCap int64 = 200000000

const (
	DefaultScoringFormat = "FanDuel"
	DefaultDraftRounds   = 15
	DefaultSeasonYear    = 2025
	DefaultUnitCount     = 5
	DefaultPlayoffWeeks  = 3
	DefaultLeagueType    = "redraft"

	DefaultStartersMultiplier = 1.0
	DefaultRotationMultiplier = 0.75
	DefaultBenchMultiplier    = 0.5
)

// RosterSlot is one entry of a season's roster configuration.
type RosterSlot struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// DefaultRosterPositions returns G4 F4 C1 UTIL5 in a stable order.
func DefaultRosterPositions() []RosterSlot {
	return []RosterSlot{
		{Position: "G", Count: 4},
		{Position: "F", Count: 4},
		{Position: "C", Count: 1},
		{Position: "UTIL", Count: 5},
	}
}

// DefaultUnitAssignments returns the default per-zone position split.
func DefaultUnitAssignments() map[string]map[string]int {
	return map[string]map[string]int{
		"starters": {"G": 2, "F": 2, "C": 1},
		"rotation": {"G": 1, "F": 1, "UTIL": 3},
		"bench":    {"UTIL": 2},
	}
}

// League is a fantasy league row.
type League struct {
	ID                   string
	Name                 string
	Description          string
	CommissionerID       string
	MaxTeams             int
	InviteCode           string
	PublicLeague         bool
	LeagueType           string
	ScoringType          string
	FantasyScoringFormat string
	DraftType            DraftType
	DraftRounds          int
	SalaryCapEnabled     bool
	TradesEnabled        bool
}

type Season struct {
	ID                      string
	LeagueID                string
	SeasonYear              int
	IsActive                bool
	SalaryCapAmount         int64
	RosterPositions         []RosterSlot
	StartersCount           int
	RotationCount           int
	BenchCount              int
	StartersMultiplier      float64
	RotationMultiplier      float64
	BenchMultiplier         float64
	PositionUnitAssignments map[string]map[string]int
	PlayoffTeams            int
	PlayoffWeeks            int
	DraftDate               *string
	TradeDeadline           *string
}

// RosterSize is the number of roster spots created per team.
func (s Season) RosterSize() int {
	total := 0
	for _, slot := range s.RosterPositions {
		if slot.Count > 0 {
			total += slot.Count
		}
	}
	return total
}

type Team struct {
	ID             string
	LeagueID       string
	SeasonID       string
	UserID         *string
	TeamName       string
	IsCommissioner bool
}

type RosterSpot struct {
	SeasonID         string
	TeamID           string
	IsInjuredReserve bool
}

type DraftPick struct {
	ID           string
	PickNumber   int
	Round        int
	TeamPosition int
	TeamID       string
}

type DraftState struct {
	CurrentPickNumber int
	CurrentRound      int
	DraftStatus       string
	DraftType         DraftType
	TotalRounds       int
	TotalPicks        int
}

// Blueprint is everything written when a league is created.
type Blueprint struct {
	League     League
	Season     Season
	Teams      []Team
	DraftOrder []DraftPick
	DraftState DraftState
}

// Created is the persisted result of a blueprint, with generated ids filled.
type Created struct {
	League     League
	Season     Season
	Teams      []Team
	DraftPicks []DraftPick
}

// CreateInput is the caller-provided part of a new league.
type CreateInput struct {
	Name                    string
	Description             string
	MaxTeams                int
	ScoringType             string
	TeamName                string
	FantasyScoringFormat    string
	DraftType               DraftType
	DraftRounds             int
	RosterPositions         []RosterSlot
	DraftDate               *string
	TradeDeadline           *string
	SalaryCapAmount         int64
	StartersCount           int
	StartersMultiplier      float64
	RotationCount           int
	RotationMultiplier      float64
	BenchCount              int
	BenchMultiplier         float64
	PositionUnitAssignments map[string]map[string]int
}

func (in CreateInput) Validate() error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.TeamName) == "" {
		missing = append(missing, "teamName")
	}
	if in.MaxTeams <= 0 {
		missing = append(missing, "maxTeams")
	}
	if strings.TrimSpace(in.ScoringType) == "" {
		missing = append(missing, "scoringType")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	switch in.DraftType {
	case "", DraftTypeSnake, DraftTypeLinear:
	default:
		return fmt.Errorf("invalid draft type: %s", in.DraftType)
	}
	if in.DraftRounds < 0 {
		return fmt.Errorf("draft rounds must be >= 0")
	}
	for _, slot := range in.RosterPositions {
		if strings.TrimSpace(slot.Position) == "" || slot.Count < 0 {
			return fmt.Errorf("invalid roster position: %+v", slot)
		}
	}

	return nil
}

// NewBlueprint applies league defaults to the input. ids are left empty for the
// gateway to assign. Draft picks reference teams through TeamPosition until
// persisted. Roster spots are expanded per team by the gateway with
// RosterSpotsFor once team ids exist.
func NewBlueprint(in CreateInput, commissionerID, inviteCode string) Blueprint {
	scoringFormat := firstNonEmpty(in.FantasyScoringFormat, DefaultScoringFormat)
	draftType := in.DraftType
	if draftType == "" {
		draftType = DraftTypeSnake
	}
	rounds := positiveOr(in.DraftRounds, DefaultDraftRounds)

	leagueRow := League{
		Name:                 strings.TrimSpace(in.Name),
		Description:          strings.TrimSpace(in.Description),
		CommissionerID:       commissionerID,
		MaxTeams:             in.MaxTeams,
		InviteCode:           inviteCode,
		LeagueType:           DefaultLeagueType,
		ScoringType:          in.ScoringType,
		FantasyScoringFormat: scoringFormat,
		DraftType:            draftType,
		DraftRounds:          rounds,
		SalaryCapEnabled:     true,
		TradesEnabled:        true,
	}

	rosterPositions := in.RosterPositions
	if len(rosterPositions) == 0 {
		rosterPositions = DefaultRosterPositions()
	}
	assignments := in.PositionUnitAssignments
	if len(assignments) == 0 {
		assignments = DefaultUnitAssignments()
	}
	salaryCap := in.SalaryCapAmount
	if salaryCap <= 0 {
		salaryCap = DefaultSalaryCap
	}

	season := Season{
		SeasonYear:              DefaultSeasonYear,
		IsActive:                true,
		SalaryCapAmount:         salaryCap,
		RosterPositions:         rosterPositions,
		StartersCount:           positiveOr(in.StartersCount, DefaultUnitCount),
		RotationCount:           positiveOr(in.RotationCount, DefaultUnitCount),
		BenchCount:              positiveOr(in.BenchCount, DefaultUnitCount),
		StartersMultiplier:      positiveFloatOr(in.StartersMultiplier, DefaultStartersMultiplier),
		RotationMultiplier:      positiveFloatOr(in.RotationMultiplier, DefaultRotationMultiplier),
		BenchMultiplier:         positiveFloatOr(in.BenchMultiplier, DefaultBenchMultiplier),
		PositionUnitAssignments: assignments,
		PlayoffTeams:            in.MaxTeams / 2,
		PlayoffWeeks:            DefaultPlayoffWeeks,
		DraftDate:               in.DraftDate,
		TradeDeadline:           in.TradeDeadline,
	}

	commissioner := commissionerID
	teams := make([]Team, 0, in.MaxTeams)
	teams = append(teams, Team{
		UserID:         &commissioner,
		TeamName:       strings.TrimSpace(in.TeamName),
		IsCommissioner: true,
	})
	for i := 2; i <= in.MaxTeams; i++ {
		teams = append(teams, Team{TeamName: fmt.Sprintf("Team %d", i)})
	}

	order := BuildDraftOrder(len(teams), rounds, draftType)

	return Blueprint{
		League:     leagueRow,
		Season:     season,
		Teams:      teams,
		DraftOrder: order,
		DraftState: DraftState{
			CurrentPickNumber: 1,
			CurrentRound:      1,
			DraftStatus:       "scheduled",
			DraftType:         draftType,
			TotalRounds:       rounds,
			TotalPicks:        len(order),
		},
	}
}

// RosterSpotsFor expands the season roster configuration for one team.
// Positions named IR create injured reserve spots.
func RosterSpotsFor(season Season, teamID string) []RosterSpot {
	spots := make([]RosterSpot, 0, season.RosterSize())
	for _, slot := range season.RosterPositions {
		for i := 0; i < slot.Count; i++ {
			spots = append(spots, RosterSpot{
				SeasonID:         season.ID,
				TeamID:           teamID,
				IsInjuredReserve: strings.EqualFold(slot.Position, "IR"),
			})
		}
	}
	return spots
}

// BuildDraftOrder lays out every pick for teamCount teams over rounds rounds.
// TeamPosition is 1-based and maps to the team at index TeamPosition-1. In a
// snake draft even rounds run in reverse.
func BuildDraftOrder(teamCount, rounds int, draftType DraftType) []DraftPick {
	if teamCount <= 0 || rounds <= 0 {
		return nil
	}

	picks := make([]DraftPick, 0, teamCount*rounds)
	for round := 1; round <= rounds; round++ {
		for position := 1; position <= teamCount; position++ {
			slot := position
			if draftType == DraftTypeSnake && round%2 == 0 {
				slot = teamCount - position + 1
			}
			picks = append(picks, DraftPick{
				PickNumber:   (round-1)*teamCount + slot,
				Round:        round,
				TeamPosition: position,
			})
		}
	}
	return picks
}

func firstNonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func positiveFloatOr(value, fallback float64) float64 {
	if value <= 0 {
		return fallback
	}
	return value
}
