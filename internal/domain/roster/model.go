package roster

// Spot is a filled roster slot joined with its owning team.
type Spot struct {
	PlayerID string
	TeamID   string
	TeamName string
	UserID   *string
	LeagueID string
}

// PlayerStatus is a derived view of whether a player is rostered in a league.
type PlayerStatus struct {
	IsOnRoster   bool
	TeamID       string
	TeamName     string
	IsOnUserTeam bool
}

// StatusFromSpots derives the roster status from the first spot found.
func StatusFromSpots(spots []Spot, userTeamID string) PlayerStatus {
	if len(spots) == 0 {
		return PlayerStatus{}
	}

	first := spots[0]
	return PlayerStatus{
		IsOnRoster:   true,
		TeamID:       first.TeamID,
		TeamName:     first.TeamName,
		IsOnUserTeam: userTeamID != "" && first.TeamID == userTeamID,
	}
}
