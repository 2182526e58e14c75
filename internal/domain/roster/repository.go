package roster

import "context"

type Repository interface {
	ListPlayerSpots(ctx context.Context, playerID, leagueID string) ([]Spot, error)
}
