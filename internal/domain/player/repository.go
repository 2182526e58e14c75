package player

import "context"

// Repository stores imported players.
type Repository interface {
	Exists(ctx context.Context, nbaPlayerID int64) (bool, error)
	Upsert(ctx context.Context, item Player) error
}

// Source fetches the provider's player list for a season such as "2024-25".
type Source interface {
	FetchPlayers(ctx context.Context, season string) ([]Player, error)
}
