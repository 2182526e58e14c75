package trade

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

type Player struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Position         string  `json:"position"`
	TeamAbbreviation string  `json:"team_abbreviation"`
	NBAPlayerID      int64   `json:"nba_player_id"`
	Salary           float64 `json:"salary_2025_26"`
}

type Pick struct {
	PickNumber   int  `json:"pick_number"`
	Round        int  `json:"round"`
	TeamPosition int  `json:"team_position"`
	IsCompleted  bool `json:"is_completed"`
}

// PendingTrade is a draft trade offer awaiting a response.
type PendingTrade struct {
	ID               string
	LeagueID         string
	FromTeamID       string
	FromTeamName     string
	ToTeamID         string
	ToTeamName       string
	OfferedPlayers   []Player
	OfferedPicks     []Pick
	RequestedPlayers []Player
	RequestedPicks   []Pick
	Status           Status
	CreatedAt        time.Time
	ExpiresAt        time.Time
	RespondedAt      *time.Time
	IsExpired        bool
}
