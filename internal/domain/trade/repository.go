package trade

import "context"

type Repository interface {
	ListPendingDraftTrades(ctx context.Context, teamID, leagueID string) ([]PendingTrade, error)
}
