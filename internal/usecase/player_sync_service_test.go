package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

type stubPlayerSource struct {
	players []player.Player
	err     error
	season  string
}

func (s *stubPlayerSource) FetchPlayers(_ context.Context, season string) ([]player.Player, error) {
	s.season = season
	return s.players, s.err
}

func TestPlayerSyncService_CountsImportsUpdatesAndErrors(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	source := &stubPlayerSource{players: []player.Player{
		{NBAPlayerID: 1628983, Name: "Shai Gilgeous-Alexander", IsActive: true},
		{NBAPlayerID: 203999, Name: "Nikola Jokic", IsActive: true},
		{NBAPlayerID: 1641705, Name: "Victor Wembanyama", IsActive: true, IsRookie: true},
		{NBAPlayerID: 0, Name: "Missing Id"},
	}}
	repo := memory.NewPlayerRepository(newTestStore(t))
	svc := NewPlayerSyncService(source, repo, PlayerSyncConfig{BatchSize: 2, Workers: 2}, logging.NewNop())

	got, err := svc.Sync(ctx, "")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if source.season != DefaultSyncSeason {
		t.Fatalf("expected default season, got %q", source.season)
	}
	if got.Total != 4 || got.Imported != 3 || got.Updated != 0 || got.Errors != 1 {
		t.Fatalf("unexpected first sync result: %+v", got)
	}
	if stored, ok := repo.Player(1641705); !ok || !stored.IsRookie {
		t.Fatalf("expected stored rookie, got %+v ok=%v", stored, ok)
	}

	got, err = svc.Sync(ctx, "2025-26")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if got.Imported != 0 || got.Updated != 3 || got.Errors != 1 {
		t.Fatalf("unexpected second sync result: %+v", got)
	}
	if source.season != "2025-26" {
		t.Fatalf("expected requested season, got %q", source.season)
	}
}

func TestPlayerSyncService_SourceFailures(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(newTestStore(t))

	empty := NewPlayerSyncService(&stubPlayerSource{}, repo, PlayerSyncConfig{}, logging.NewNop())
	if _, err := empty.Sync(t.Context(), "2024-25"); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected no data error, got %v", err)
	}

	upstream := errors.New("stats.nba.com timeout")
	failing := NewPlayerSyncService(&stubPlayerSource{err: upstream}, repo, PlayerSyncConfig{}, logging.NewNop())
	if _, err := failing.Sync(t.Context(), "2024-25"); !errors.Is(err, upstream) {
		t.Fatalf("expected source error, got %v", err)
	}

	if _, err := NewPlayerSyncService(nil, repo, PlayerSyncConfig{}, logging.NewNop()).Sync(t.Context(), ""); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected unconfigured source error, got %v", err)
	}
}
