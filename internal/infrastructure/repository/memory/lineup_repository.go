package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

type PositionRepository struct {
	store *Store
}

func NewPositionRepository(store *Store) *PositionRepository {
	return &PositionRepository{store: store}
}

func (r *PositionRepository) ListPositions(ctx context.Context, leagueID, teamID string, zone lineup.Zone) ([]lineup.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]storedPosition, 0)
	for key, row := range r.store.positions {
		if key.leagueID != leagueID || key.teamID != teamID {
			continue
		}
		if zone != "" && key.zone != zone {
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		zi, zj := zoneRank(rows[i].item.Zone), zoneRank(rows[j].item.Zone)
		if zi != zj {
			return zi < zj
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]lineup.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.item)
	}
	return out, nil
}

// UpsertPosition keeps the row id and ordering of an existing triple and only
// moves its coordinates. Moving a player into another zone drops the rows it
// held in the team's other zones.
func (r *PositionRepository) UpsertPosition(ctx context.Context, item lineup.PositionUpsert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := positionKey{leagueID: item.LeagueID, teamID: item.TeamID, playerID: item.PlayerID, zone: item.Zone}
	if existing, ok := r.store.positions[key]; ok {
		existing.item.X = item.X
		existing.item.Y = item.Y
		r.store.positions[key] = existing
		return nil
	}

	rowID, err := r.store.ids.NewID()
	if err != nil {
		return err
	}

	for other := range r.store.positions {
		if other.leagueID == item.LeagueID && other.teamID == item.TeamID && other.playerID == item.PlayerID {
			delete(r.store.positions, other)
		}
	}

	position := lineup.Position{
		ID:       rowID,
		LeagueID: item.LeagueID,
		TeamID:   item.TeamID,
		PlayerID: item.PlayerID,
		Zone:     item.Zone,
		X:        item.X,
		Y:        item.Y,
	}
	if card, ok := r.store.catalog[item.PlayerID]; ok {
		position.PlayerName = card.name
		position.PlayerTeam = card.team
		position.PlayerPosition = card.position
		position.PlayerAvatar = card.avatar
		position.NBAPlayerID = card.nbaPlayerID
	}

	r.store.positions[key] = storedPosition{seq: r.store.nextSeq(), item: position}
	return nil
}

func (r *PositionRepository) RemovePosition(ctx context.Context, leagueID, teamID, playerID string, zone lineup.Zone) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.positions, positionKey{leagueID: leagueID, teamID: teamID, playerID: playerID, zone: zone})
	return nil
}

func (r *PositionRepository) ClearZone(ctx context.Context, leagueID, teamID string, zone lineup.Zone) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for key := range r.store.positions {
		if key.leagueID == leagueID && key.teamID == teamID && key.zone == zone {
			delete(r.store.positions, key)
		}
	}
	return nil
}

func zoneRank(zone lineup.Zone) int {
	for i, candidate := range lineup.AllZones {
		if candidate == zone {
			return i
		}
	}
	return len(lineup.AllZones)
}

type WeeklyRepository struct {
	store *Store
}

func NewWeeklyRepository(store *Store) *WeeklyRepository {
	return &WeeklyRepository{store: store}
}

func (r *WeeklyRepository) GetWeekly(ctx context.Context, key lineup.WeekKey) (lineup.WeeklyLineup, bool, error) {
	if err := ctx.Err(); err != nil {
		return lineup.WeeklyLineup{}, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.weekly[key]
	if !ok {
		return lineup.WeeklyLineup{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *WeeklyRepository) SaveWeekly(ctx context.Context, key lineup.WeekKey, item lineup.WeeklyLineup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.weekly[key] = item.Clone()
	return nil
}

func (r *WeeklyRepository) SetWeeklyLock(ctx context.Context, key lineup.WeekKey, locked bool, lockedAt *time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.weekly[key]
	if !ok {
		return false, nil
	}
	item.IsLocked = locked
	item.LockedAt = nil
	if lockedAt != nil {
		at := lockedAt.UTC()
		item.LockedAt = &at
	}
	r.store.weekly[key] = item
	return true, nil
}
