package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
	lineupmock "github.com/riskibarqy/fantasy-basketball/internal/mocks/domain/lineup"
)

func newWeeklyService(t *testing.T, now time.Time) *WeeklyLineupService {
	t.Helper()

	svc := NewWeeklyLineupService(memory.NewWeeklyRepository(newTestStore(t)))
	svc.now = func() time.Time { return now }
	return svc
}

func sampleWeeklyLineup() lineup.WeeklyLineup {
	return lineup.WeeklyLineup{
		Starters: []lineup.Slot{
			{ID: "s-pg", Position: "PG", IsStarter: true, Player: &lineup.SlotPlayer{ID: "p-sga", Name: "Shai Gilgeous-Alexander"}},
			{ID: "s-c", Position: "C", IsStarter: true, Player: &lineup.SlotPlayer{ID: "p-jokic", Name: "Nikola Jokic"}},
			{ID: "s-util", Position: "UTIL", IsStarter: true},
		},
		Bench: []lineup.Slot{
			{ID: "b-1", Position: "BN", Player: &lineup.SlotPlayer{ID: "p-wemby", Name: "Victor Wembanyama"}},
		},
	}
}

func TestWeeklyLineupService_SaveReadRoundTripsOrder(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	svc := newWeeklyService(t, time.Date(2025, 10, 21, 17, 0, 0, 0, time.UTC))
	key := lineup.WeekKey{TeamID: "team-glass", WeekNumber: 1, SeasonYear: 2025}

	if _, exists, err := svc.Read(ctx, key); err != nil || exists {
		t.Fatalf("expected nothing saved yet, got exists=%v err=%v", exists, err)
	}

	in := sampleWeeklyLineup()
	in.IsLocked = true
	if err := svc.Save(ctx, key, in); err != nil {
		t.Fatalf("save weekly lineup: %v", err)
	}

	got, exists, err := svc.Read(ctx, key)
	if err != nil || !exists {
		t.Fatalf("read weekly lineup: exists=%v err=%v", exists, err)
	}
	if len(got.Starters) != 3 || len(got.Bench) != 1 {
		t.Fatalf("unexpected lineup shape: %+v", got)
	}
	for i, want := range []string{"s-pg", "s-c", "s-util"} {
		if got.Starters[i].ID != want {
			t.Fatalf("starter %d: got %s want %s", i, got.Starters[i].ID, want)
		}
	}
	if got.Starters[2].Player != nil {
		t.Fatalf("empty slot should stay empty")
	}
	if got.IsLocked {
		t.Fatalf("save must not set the lock")
	}
}

func TestWeeklyLineupService_LockUnlock(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	now := time.Date(2025, 10, 21, 23, 30, 0, 0, time.FixedZone("PT", -7*3600))
	svc := newWeeklyService(t, now)
	key := lineup.WeekKey{TeamID: "team-rim", WeekNumber: 2, SeasonYear: 2025}

	if err := svc.Lock(ctx, key); err != nil {
		t.Fatalf("lock before save should be a no-op, got %v", err)
	}
	if _, found, err := svc.Read(ctx, key); err != nil || found {
		t.Fatalf("lock before save must not create a lineup: found=%v err=%v", found, err)
	}

	if err := svc.Save(ctx, key, sampleWeeklyLineup()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Lock(ctx, key); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if err := svc.Lock(ctx, key); err != nil {
		t.Fatalf("lock is idempotent: %v", err)
	}

	got, _, err := svc.Read(ctx, key)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !got.IsLocked || got.LockedAt == nil {
		t.Fatalf("expected locked lineup, got %+v", got)
	}
	if got.LockedAt.Location() != time.UTC || !got.LockedAt.Equal(now) {
		t.Fatalf("expected locked_at in UTC, got %v", got.LockedAt)
	}

	if err := svc.Save(ctx, key, sampleWeeklyLineup()); !errors.Is(err, ErrLineupLocked) {
		t.Fatalf("expected locked save to fail, got %v", err)
	}

	if err := svc.Unlock(ctx, key); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	got, _, _ = svc.Read(ctx, key)
	if got.IsLocked || got.LockedAt != nil {
		t.Fatalf("expected unlocked lineup, got %+v", got)
	}
	if err := svc.Save(ctx, key, sampleWeeklyLineup()); err != nil {
		t.Fatalf("save after unlock: %v", err)
	}
}

func TestWeeklyLineupService_RejectsDuplicatePlayers(t *testing.T) {
	t.Parallel()

	svc := newWeeklyService(t, time.Now())
	in := sampleWeeklyLineup()
	in.Bench = append(in.Bench, lineup.Slot{ID: "b-2", Player: &lineup.SlotPlayer{ID: "p-sga"}})

	err := svc.Save(t.Context(), lineup.WeekKey{TeamID: "team-glass", WeekNumber: 1, SeasonYear: 2025}, in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestWeeklyLineupService_GatewayFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	repo := lineupmock.NewWeeklyRepository(t)
	svc := NewWeeklyLineupService(repo)
	key := lineup.WeekKey{TeamID: "team-glass", WeekNumber: 3, SeasonYear: 2025}

	repo.
		On("GetWeekly", mock.Anything, key).
		Return(lineup.WeeklyLineup{}, false, errors.New("function get_weekly_lineup does not exist")).
		Once()

	_, _, err := svc.Read(ctx, key)
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if gwErr.Message != "function get_weekly_lineup does not exist" {
		t.Fatalf("upstream message must be kept, got %q", gwErr.Message)
	}

	if _, _, err := svc.Read(ctx, lineup.WeekKey{TeamID: " ", WeekNumber: 1, SeasonYear: 2025}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestWeeklyLineupService_UnlockMissingLineupUsingMockery(t *testing.T) {
	t.Parallel()

	repo := lineupmock.NewWeeklyRepository(t)
	svc := NewWeeklyLineupService(repo)
	key := lineup.WeekKey{TeamID: "team-zone", WeekNumber: 1, SeasonYear: 2025}

	repo.
		On("SetWeeklyLock", mock.Anything, key, false, (*time.Time)(nil)).
		Return(false, nil).
		Once()

	if err := svc.Unlock(t.Context(), key); err != nil {
		t.Fatalf("unlock of an unsaved week should succeed, got %v", err)
	}
}
