package lineup

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidZone = errors.New("invalid lineup zone")
)

// Zone is a named board category a player can be placed in.
type Zone string

const (
	ZoneStarters Zone = "starters"
	ZoneRotation Zone = "rotation"
	ZoneBench    Zone = "bench"
)

var AllZones = []Zone{ZoneStarters, ZoneRotation, ZoneBench}

func (z Zone) Valid() bool {
	switch z {
	case ZoneStarters, ZoneRotation, ZoneBench:
		return true
	default:
		return false
	}
}

func (z Zone) String() string {
	return string(z)
}

// ParseZone accepts an optional zone; empty input returns the empty zone.
func ParseZone(raw string) (Zone, error) {
	zone := Zone(strings.ToLower(strings.TrimSpace(raw)))
	if zone == "" {
		return "", nil
	}
	if !zone.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidZone, raw)
	}
	return zone, nil
}

// Position is a player placed on a team's board. Coordinates are layout space
// values and are stored as provided.
type Position struct {
	ID             string
	LeagueID       string
	TeamID         string
	PlayerID       string
	Zone           Zone
	X              float64
	Y              float64
	PlayerName     string
	PlayerTeam     string
	PlayerPosition string
	PlayerAvatar   string
	NBAPlayerID    int64
}

// PositionUpsert carries the fields the gateway needs to place a player.
type PositionUpsert struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Zone     Zone
	X        float64
	Y        float64
}

// WeekKey identifies one weekly lineup aggregate.
type WeekKey struct {
	TeamID     string
	WeekNumber int
	SeasonYear int
}

func (k WeekKey) Validate() error {
	if strings.TrimSpace(k.TeamID) == "" {
		return fmt.Errorf("team id is required")
	}
	if k.WeekNumber < 0 {
		return fmt.Errorf("week number must be >= 0")
	}
	if k.SeasonYear <= 0 {
		return fmt.Errorf("season year must be > 0")
	}
	return nil
}

// SlotPlayer is the player card rendered inside a weekly lineup slot.
type SlotPlayer struct {
	ID            string
	Name          string
	Team          string
	Pos           string
	Status        string
	Game          string
	GameTime      string
	ProjPts       float64
	ActualPts     float64
	StartPct      float64
	RosPct        float64
	MatchupRating string
	Avatar        string
	NBAPlayerID   int64
}

type Slot struct {
	ID        string
	Position  string
	Player    *SlotPlayer
	X         float64
	Y         float64
	IsStarter bool
}

// WeeklyLineup is the starters/bench composition of a team for one week.
type WeeklyLineup struct {
	Starters []Slot
	Bench    []Slot
	IsLocked bool
	LockedAt *time.Time
}

func (l WeeklyLineup) Clone() WeeklyLineup {
	out := l
	out.Starters = cloneSlots(l.Starters)
	out.Bench = cloneSlots(l.Bench)
	if l.LockedAt != nil {
		lockedAt := *l.LockedAt
		out.LockedAt = &lockedAt
	}
	return out
}

// DuplicatePlayers reports player ids that appear in more than one slot.
func (l WeeklyLineup) DuplicatePlayers() []string {
	seen := make(map[string]struct{}, len(l.Starters)+len(l.Bench))
	var dupes []string
	for _, slots := range [][]Slot{l.Starters, l.Bench} {
		for _, slot := range slots {
			if slot.Player == nil || slot.Player.ID == "" {
				continue
			}
			if _, ok := seen[slot.Player.ID]; ok {
				dupes = append(dupes, slot.Player.ID)
				continue
			}
			seen[slot.Player.ID] = struct{}{}
		}
	}
	return dupes
}

func cloneSlots(in []Slot) []Slot {
	if in == nil {
		return nil
	}
	out := make([]Slot, len(in))
	for i, slot := range in {
		out[i] = slot
		if slot.Player != nil {
			player := *slot.Player
			out[i].Player = &player
		}
	}
	return out
}

// AutoAssignRequest asks the external assignment function to fill a lineup.
type AutoAssignRequest struct {
	LeagueID   string
	TeamID     string
	WeekNumber int
	SeasonYear int
	SeasonID   string
	MatchupID  string
}

func (r AutoAssignRequest) Validate() error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(r.LeagueID) == "" {
		missing = append(missing, "leagueId")
	}
	if strings.TrimSpace(r.TeamID) == "" {
		missing = append(missing, "teamId")
	}
	if strings.TrimSpace(r.SeasonID) == "" {
		missing = append(missing, "seasonId")
	}
	if strings.TrimSpace(r.MatchupID) == "" {
		missing = append(missing, "matchupId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if r.WeekNumber < 0 {
		return fmt.Errorf("weekNumber must be >= 0")
	}
	if r.SeasonYear <= 0 {
		return fmt.Errorf("seasonYear must be > 0")
	}
	return nil
}

// AutoAssignResult is reported back unchanged from the assignment function.
type AutoAssignResult struct {
	Success        bool
	Message        string
	LineupEntries  int
	RemovedInvalid int
}
