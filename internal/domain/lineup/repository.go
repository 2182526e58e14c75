package lineup

import (
	"context"
	"time"
)

// PositionRepository exposes board position operations. An empty zone lists
// every zone.
type PositionRepository interface {
	ListPositions(ctx context.Context, leagueID, teamID string, zone Zone) ([]Position, error)
	UpsertPosition(ctx context.Context, item PositionUpsert) error
	RemovePosition(ctx context.Context, leagueID, teamID, playerID string, zone Zone) error
	ClearZone(ctx context.Context, leagueID, teamID string, zone Zone) error
}

// WeeklyRepository exposes the weekly lineup aggregate. SetWeeklyLock reports
// false when no lineup has been saved for the key.
type WeeklyRepository interface {
	GetWeekly(ctx context.Context, key WeekKey) (WeeklyLineup, bool, error)
	SaveWeekly(ctx context.Context, key WeekKey, item WeeklyLineup) error
	SetWeeklyLock(ctx context.Context, key WeekKey, locked bool, lockedAt *time.Time) (bool, error)
}

// Assigner delegates lineup assignment to an external capability.
type Assigner interface {
	AutoAssign(ctx context.Context, req AutoAssignRequest) (AutoAssignResult, error)
}
