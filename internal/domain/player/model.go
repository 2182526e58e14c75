package player

import (
	"fmt"
	"strings"
)

// ActiveSinceYear is the last season year a player must reach to count as active.
const ActiveSinceYear = 2024

// Player is an NBA player record imported from the stats provider.
type Player struct {
	NBAPlayerID      int64
	Name             string
	FirstName        string
	LastName         string
	Position         string
	TeamID           int64
	TeamName         string
	TeamAbbreviation string
	JerseyNumber     string
	Height           string
	Weight           *int
	BirthDate        *string
	BirthCountry     string
	College          string
	DraftYear        *int
	DraftRound       *int
	DraftNumber      *int
	IsActive         bool
	IsRookie         bool
	YearsPro         int
	FromYear         *int
	ToYear           *int
}

func (p Player) Validate() error {
	if p.NBAPlayerID <= 0 {
		return fmt.Errorf("nba player id must be > 0")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// SplitName returns the first word as first name and the rest as last name.
func SplitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// IsActiveThrough reports whether a player whose career ended in toYear is
// still active. A missing end year means active.
func IsActiveThrough(toYear *int) bool {
	return toYear == nil || *toYear >= ActiveSinceYear
}
