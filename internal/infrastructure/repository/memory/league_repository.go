package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.inviteCodes[code]
	return ok, nil
}

// Create assigns ids to every row of the blueprint and writes them under one
// lock so a failure leaves nothing behind.
func (r *LeagueRepository) Create(ctx context.Context, blueprint league.Blueprint) (league.Created, error) {
	if err := ctx.Err(); err != nil {
		return league.Created{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.inviteCodes[blueprint.League.InviteCode]; taken {
		return league.Created{}, league.ErrDuplicateInviteCode
	}

	newID := func(kind string) (string, error) {
		value, err := r.store.ids.NewID()
		if err != nil {
			return "", fmt.Errorf("generate %s id: %w", kind, err)
		}
		return value, nil
	}

	leagueRow := blueprint.League
	leagueID, err := newID("league")
	if err != nil {
		return league.Created{}, err
	}
	leagueRow.ID = leagueID

	season := blueprint.Season
	seasonID, err := newID("season")
	if err != nil {
		return league.Created{}, err
	}
	season.ID = seasonID
	season.LeagueID = leagueID

	teams := make([]league.Team, 0, len(blueprint.Teams))
	for _, team := range blueprint.Teams {
		teamID, err := newID("team")
		if err != nil {
			return league.Created{}, err
		}
		team.ID = teamID
		team.LeagueID = leagueID
		team.SeasonID = seasonID
		team.UserID = cloneString(team.UserID)
		teams = append(teams, team)
	}

	picks := make([]league.DraftPick, 0, len(blueprint.DraftOrder))
	for _, pick := range blueprint.DraftOrder {
		if pick.TeamPosition < 1 || pick.TeamPosition > len(teams) {
			return league.Created{}, fmt.Errorf("draft pick %d references team position %d", pick.PickNumber, pick.TeamPosition)
		}
		pickID, err := newID("draft pick")
		if err != nil {
			return league.Created{}, err
		}
		pick.ID = pickID
		pick.TeamID = teams[pick.TeamPosition-1].ID
		picks = append(picks, pick)
	}

	r.store.leagues[leagueID] = leagueRecord{league: leagueRow, seasonID: seasonID, seasonYear: season.SeasonYear}
	r.store.inviteCodes[leagueRow.InviteCode] = leagueID
	for _, team := range teams {
		r.store.teams[team.ID] = teamRecord{
			id:       team.ID,
			leagueID: leagueID,
			name:     team.TeamName,
			userID:   cloneString(team.UserID),
		}
		for range league.RosterSpotsFor(season, team.ID) {
			r.store.roster = append(r.store.roster, rosterRecord{teamID: team.ID})
		}
	}

	created := league.Created{
		League:     leagueRow,
		Season:     season,
		Teams:      teams,
		DraftPicks: picks,
	}
	r.store.created = append(r.store.created, created)
	return created, nil
}

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Exists(ctx context.Context, nbaPlayerID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.nbaPlayers[nbaPlayerID]
	return ok, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nbaPlayers[item.NBAPlayerID] = item
	return nil
}

// Player returns a stored import record.
func (r *PlayerRepository) Player(nbaPlayerID int64) (player.Player, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.nbaPlayers[nbaPlayerID]
	return item, ok
}
