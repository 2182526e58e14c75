package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	cachedrepo "github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
)

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()

	store, err := memory.NewSeededStore(memory.WithClock(func() time.Time {
		return time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("new seeded store: %v", err)
	}
	return store
}

func newTestQueryCache(t *testing.T) *basecache.Cache {
	t.Helper()

	c, err := basecache.New(basecache.Config{
		MaxEntries: 256,
		StaleAfter: time.Hour,
		Now:        func() time.Time { return time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return c
}

func TestLineupPositionService_UpsertThenListReflectsCoordinates(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	repo := cachedrepo.NewPositionRepository(memory.NewPositionRepository(newTestStore(t)), newTestQueryCache(t))
	svc := NewLineupPositionService(repo)

	items, err := svc.List(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list empty board: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil board, got %+v", items)
	}

	input := UpsertPositionInput{
		LeagueID: "league-hardwood",
		TeamID:   "team-glass",
		PlayerID: "p-sga",
		Zone:     "starters",
		X:        120,
		Y:        40,
	}
	if err := svc.Upsert(ctx, input); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	input.X, input.Y = 64.25, -8
	if err := svc.Upsert(ctx, input); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	items, err = svc.List(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one position for the triple, got %d", len(items))
	}
	got := items[0]
	if got.X != 64.25 || got.Y != -8 || got.Zone != lineup.ZoneStarters {
		t.Fatalf("unexpected position: %+v", got)
	}
	if got.PlayerName == "" || got.NBAPlayerID != 1628983 {
		t.Fatalf("expected player card fields, got %+v", got)
	}
}

func TestLineupPositionService_ZoneChangeThroughCacheKeepsOneRow(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	repo := cachedrepo.NewPositionRepository(memory.NewPositionRepository(newTestStore(t)), newTestQueryCache(t))
	svc := NewLineupPositionService(repo)

	input := UpsertPositionInput{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-sga", Zone: "starters", X: 1, Y: 2}
	if err := svc.Upsert(ctx, input); err != nil {
		t.Fatalf("upsert starters: %v", err)
	}
	if _, err := svc.List(ctx, "league-hardwood", "team-glass", "starters"); err != nil {
		t.Fatalf("prime starters: %v", err)
	}

	input.Zone = "bench"
	if err := svc.Upsert(ctx, input); err != nil {
		t.Fatalf("upsert bench: %v", err)
	}

	items, err := svc.List(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Zone != lineup.ZoneBench {
		t.Fatalf("expected a single bench row, got %+v", items)
	}

	starters, err := svc.List(ctx, "league-hardwood", "team-glass", "starters")
	if err != nil {
		t.Fatalf("list starters: %v", err)
	}
	if len(starters) != 0 {
		t.Fatalf("starters must be empty after the move, got %+v", starters)
	}
}

func TestLineupPositionService_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	svc := NewLineupPositionService(memory.NewPositionRepository(newTestStore(t)))

	if err := svc.Remove(ctx, "league-hardwood", "team-glass", "p-jokic", "bench"); err != nil {
		t.Fatalf("remove absent position: %v", err)
	}

	if err := svc.Upsert(ctx, UpsertPositionInput{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-jokic", Zone: "bench"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.Remove(ctx, "league-hardwood", "team-glass", "p-jokic", "bench"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, "league-hardwood", "team-glass", "p-jokic", "bench"); err != nil {
		t.Fatalf("remove twice: %v", err)
	}

	items, err := svc.List(ctx, "league-hardwood", "team-glass", "bench")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty bench, got %+v", items)
	}
}

func TestLineupPositionService_ClearZoneKeepsOtherZones(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	svc := NewLineupPositionService(memory.NewPositionRepository(newTestStore(t)))

	for _, in := range []UpsertPositionInput{
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-sga", Zone: "starters"},
		{LeagueID: "league-hardwood", TeamID: "team-glass", PlayerID: "p-jokic", Zone: "bench"},
	} {
		if err := svc.Upsert(ctx, in); err != nil {
			t.Fatalf("upsert %s: %v", in.PlayerID, err)
		}
	}

	if err := svc.Clear(ctx, "league-hardwood", "team-glass", "bench"); err != nil {
		t.Fatalf("clear bench: %v", err)
	}

	items, err := svc.List(ctx, "league-hardwood", "team-glass", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].PlayerID != "p-sga" {
		t.Fatalf("expected only the starter to remain, got %+v", items)
	}
}

func TestLineupPositionService_ValidatesInput(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	svc := NewLineupPositionService(memory.NewPositionRepository(newTestStore(t)))

	cases := map[string]error{
		"missing team":  svc.Upsert(ctx, UpsertPositionInput{LeagueID: "l1", PlayerID: "p1", Zone: "bench"}),
		"missing zone":  svc.Upsert(ctx, UpsertPositionInput{LeagueID: "l1", TeamID: "t1", PlayerID: "p1"}),
		"bad zone":      svc.Remove(ctx, "l1", "t1", "p1", "sideline"),
		"clear no zone": svc.Clear(ctx, "l1", "t1", ""),
	}
	for name, err := range cases {
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}

	if _, err := svc.List(ctx, "l1", "t1", "paint"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid list zone, got %v", err)
	}
}
