package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
)

type sequenceIDs struct {
	n int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

func newSeededStore(t *testing.T) *Store {
	t.Helper()

	now := time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)
	store, err := NewSeededStore(WithIDGenerator(&sequenceIDs{}), WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new seeded store: %v", err)
	}
	return store
}

func TestLoadSeed_PlayerIDsAreUnique(t *testing.T) {
	t.Parallel()

	seed, err := LoadSeed()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if len(seed.Players) == 0 || len(seed.Weeks) == 0 || len(seed.Matchups) == 0 {
		t.Fatalf("seed is missing fixtures: %+v", seed)
	}

	seen := make(map[string]struct{}, len(seed.Players))
	for _, item := range seed.Players {
		if _, ok := seen[item.ID]; ok {
			t.Fatalf("duplicate player id %s", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}

func TestNewStore_RejectsDuplicatePlayers(t *testing.T) {
	t.Parallel()

	_, err := NewStore(Seed{Players: []SeedPlayer{{ID: "p1"}, {ID: "p1"}}})
	if err == nil {
		t.Fatalf("expected duplicate player error")
	}
}

func TestPositionRepository_UpsertKeepsRowAndOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPositionRepository(newSeededStore(t))

	items := []lineup.PositionUpsert{
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-wemby", Zone: lineup.ZoneBench, X: 1, Y: 1},
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-sga", Zone: lineup.ZoneStarters, X: 2, Y: 2},
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-jokic", Zone: lineup.ZoneStarters, X: 3, Y: 3},
	}
	for _, item := range items {
		if err := repo.UpsertPosition(ctx, item); err != nil {
			t.Fatalf("upsert position: %v", err)
		}
	}

	before, err := repo.ListPositions(ctx, "league-hardwood", "team-glass", lineup.ZoneStarters)
	if err != nil {
		t.Fatalf("list positions: %v", err)
	}

	moved := items[1]
	moved.X, moved.Y = -40.5, 900
	if err := repo.UpsertPosition(ctx, moved); err != nil {
		t.Fatalf("move position: %v", err)
	}

	all, err := repo.ListPositions(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list all positions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(all))
	}
	if all[0].PlayerID != "p-sga" || all[1].PlayerID != "p-jokic" || all[2].Zone != lineup.ZoneBench {
		t.Fatalf("unexpected ordering: %+v", all)
	}
	if all[0].ID != before[0].ID || all[0].X != -40.5 || all[0].Y != 900 {
		t.Fatalf("expected in-place update, got %+v", all[0])
	}
	if all[0].PlayerName != "Shai Gilgeous-Alexander" || all[0].NBAPlayerID != 1628983 {
		t.Fatalf("expected player card fields, got %+v", all[0])
	}
}

func TestPositionRepository_UpsertMovesPlayerBetweenZones(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPositionRepository(newSeededStore(t))

	for _, item := range []lineup.PositionUpsert{
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-sga", Zone: lineup.ZoneStarters, X: 10, Y: 10},
		{LeagueID: "league-hardwood", TeamID: "team-rim", PlayerID: "p-sga", Zone: lineup.ZoneStarters, X: 5, Y: 5},
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-sga", Zone: lineup.ZoneBench, X: 20, Y: 30},
	} {
		if err := repo.UpsertPosition(ctx, item); err != nil {
			t.Fatalf("upsert position: %v", err)
		}
	}

	items, err := repo.ListPositions(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list positions: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("player must hold one zone per team, got %+v", items)
	}
	if items[0].Zone != lineup.ZoneBench || items[0].X != 20 || items[0].Y != 30 {
		t.Fatalf("expected the bench row, got %+v", items[0])
	}

	other, err := repo.ListPositions(ctx, "league-hardwood", "team-rim", "")
	if err != nil {
		t.Fatalf("list other team: %v", err)
	}
	if len(other) != 1 || other[0].Zone != lineup.ZoneStarters {
		t.Fatalf("other team's row must be untouched, got %+v", other)
	}
}

func TestPositionRepository_RemoveAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPositionRepository(newSeededStore(t))

	for _, playerID := range []string{"p-sga", "p-jokic"} {
		if err := repo.UpsertPosition(ctx, lineup.PositionUpsert{LeagueID: "l1", TeamID: "t1", PlayerID: playerID, Zone: lineup.ZoneBench}); err != nil {
			t.Fatalf("upsert position: %v", err)
		}
	}

	if err := repo.RemovePosition(ctx, "l1", "t1", "p-wemby", lineup.ZoneBench); err != nil {
		t.Fatalf("remove absent position: %v", err)
	}
	if err := repo.RemovePosition(ctx, "l1", "t1", "p-sga", lineup.ZoneBench); err != nil {
		t.Fatalf("remove position: %v", err)
	}
	items, _ := repo.ListPositions(ctx, "l1", "t1", "")
	if len(items) != 1 || items[0].PlayerID != "p-jokic" {
		t.Fatalf("unexpected positions after remove: %+v", items)
	}

	if err := repo.ClearZone(ctx, "l1", "t1", lineup.ZoneBench); err != nil {
		t.Fatalf("clear zone: %v", err)
	}
	items, _ = repo.ListPositions(ctx, "l1", "t1", "")
	if len(items) != 0 {
		t.Fatalf("expected empty board, got %+v", items)
	}
}

func TestWeeklyRepository_LockRequiresSavedLineup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewWeeklyRepository(newSeededStore(t))
	key := lineup.WeekKey{TeamID: "team-glass", WeekNumber: 0, SeasonYear: 2025}
	at := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)

	found, err := repo.SetWeeklyLock(ctx, key, true, &at)
	if err != nil || found {
		t.Fatalf("expected missing lineup, got found=%v err=%v", found, err)
	}

	starters := []lineup.Slot{{ID: "s1", Position: "G", Player: &lineup.SlotPlayer{ID: "p-sga"}, IsStarter: true}}
	if err := repo.SaveWeekly(ctx, key, lineup.WeeklyLineup{Starters: starters}); err != nil {
		t.Fatalf("save weekly: %v", err)
	}
	starters[0].Player.ID = "mutated"

	found, err = repo.SetWeeklyLock(ctx, key, true, &at)
	if err != nil || !found {
		t.Fatalf("expected lock to apply, got found=%v err=%v", found, err)
	}

	got, ok, err := repo.GetWeekly(ctx, key)
	if err != nil || !ok {
		t.Fatalf("get weekly: ok=%v err=%v", ok, err)
	}
	if !got.IsLocked || got.LockedAt == nil || !got.LockedAt.Equal(at) {
		t.Fatalf("unexpected lock state: %+v", got)
	}
	if got.Starters[0].Player.ID != "p-sga" {
		t.Fatalf("stored lineup shares caller memory")
	}
}

func TestScheduleRepository_Reads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScheduleRepository(newSeededStore(t))

	year, found, err := repo.GetLeagueSeasonYear(ctx, "league-hardwood")
	if err != nil || !found || year != 2025 {
		t.Fatalf("unexpected season year: %d %v %v", year, found, err)
	}
	if _, found, _ := repo.GetLeagueSeasonYear(ctx, "missing"); found {
		t.Fatalf("expected unknown league to be absent")
	}

	weeks, err := repo.ListWeeks(ctx, 2025, true)
	if err != nil {
		t.Fatalf("list weeks: %v", err)
	}
	for i := 1; i < len(weeks); i++ {
		if weeks[i-1].WeekNumber > weeks[i].WeekNumber {
			t.Fatalf("weeks are not ordered: %+v", weeks)
		}
	}

	week := 2
	matchups, err := repo.ListMatchups(ctx, schedule.MatchupFilter{LeagueID: "league-hardwood", WeekNumber: &week})
	if err != nil {
		t.Fatalf("list matchups: %v", err)
	}
	if len(matchups) != 2 || matchups[0].Team1.TeamName == "" {
		t.Fatalf("unexpected matchups: %+v", matchups)
	}

	earliest, found, err := repo.EarliestScheduledWeek(ctx, "league-hardwood")
	if err != nil || !found || earliest != 2 {
		t.Fatalf("unexpected earliest scheduled week: %d %v %v", earliest, found, err)
	}
}

func TestRosterAndTradeRepositories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)

	spots, err := NewRosterRepository(store).ListPlayerSpots(ctx, "p-jokic", "league-hardwood")
	if err != nil {
		t.Fatalf("list player spots: %v", err)
	}
	if len(spots) != 1 || spots[0].TeamName != "Glass Cleaners" || spots[0].UserID == nil {
		t.Fatalf("unexpected spots: %+v", spots)
	}

	trades, err := NewTradeRepository(store).ListPendingDraftTrades(ctx, "team-glass", "league-hardwood")
	if err != nil {
		t.Fatalf("list pending trades: %v", err)
	}
	if len(trades) != 1 || trades[0].FromTeamName != "Rim Runners" || trades[0].IsExpired {
		t.Fatalf("unexpected trades: %+v", trades)
	}
}

func TestLeagueRepository_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)
	repo := NewLeagueRepository(store)

	exists, err := repo.InviteCodeExists(ctx, "HOOPS1")
	if err != nil || !exists {
		t.Fatalf("expected seeded invite code, got %v %v", exists, err)
	}

	blueprint := league.NewBlueprint(league.CreateInput{
		Name:        "Bench Mob",
		TeamName:    "Owners",
		MaxTeams:    4,
		ScoringType: "points",
	}, "user-ava", "NEWONE")

	created, err := repo.Create(ctx, blueprint)
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if created.League.ID == "" || created.Season.LeagueID != created.League.ID {
		t.Fatalf("ids were not assigned: %+v", created)
	}
	if len(created.Teams) != 4 || len(created.DraftPicks) != 60 {
		t.Fatalf("unexpected counts: teams=%d picks=%d", len(created.Teams), len(created.DraftPicks))
	}
	if created.DraftPicks[0].TeamID != created.Teams[0].ID {
		t.Fatalf("first pick should belong to the commissioner team")
	}

	if _, err := repo.Create(ctx, blueprint); !errors.Is(err, league.ErrDuplicateInviteCode) {
		t.Fatalf("expected duplicate invite code, got %v", err)
	}
	if len(store.Created()) != 1 {
		t.Fatalf("expected one created league")
	}
}
