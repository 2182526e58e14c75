package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	cachedrepo "github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
)

type fakeAssigner struct {
	calls  atomic.Int32
	result lineup.AutoAssignResult
	err    error
}

func (f *fakeAssigner) AutoAssign(context.Context, lineup.AutoAssignRequest) (lineup.AutoAssignResult, error) {
	f.calls.Add(1)
	return f.result, f.err
}

func validAutoAssignRequest() lineup.AutoAssignRequest {
	return lineup.AutoAssignRequest{
		LeagueID:   "league-hardwood",
		TeamID:     "team-glass",
		WeekNumber: 2,
		SeasonYear: 2025,
		SeasonID:   "season-2025",
		MatchupID:  "m-2-a",
	}
}

func TestAutoLineupService_InvalidatesBoardOnceAndPassesCounts(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newTestStore(t)
	qc := newTestQueryCache(t)
	positions := NewLineupPositionService(cachedrepo.NewPositionRepository(memory.NewPositionRepository(store), qc))

	if _, err := positions.List(ctx, "league-hardwood", "team-glass", ""); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	assigner := &fakeAssigner{result: lineup.AutoAssignResult{Success: true, Message: "ok", LineupEntries: 13, RemovedInvalid: 1}}
	svc := NewAutoLineupService(cachedrepo.NewAssigner(assigner, qc))

	got, err := svc.Run(ctx, validAutoAssignRequest())
	if err != nil {
		t.Fatalf("run auto lineup: %v", err)
	}
	if got.LineupEntries != 13 || got.RemovedInvalid != 1 || !got.Success {
		t.Fatalf("counts must pass through unchanged: %+v", got)
	}
	if assigner.calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", assigner.calls.Load())
	}
	if invalidations := qc.Stats().Invalidations; invalidations != 1 {
		t.Fatalf("expected exactly one invalidation, got %d", invalidations)
	}
}

func TestAutoLineupService_UpstreamFailure(t *testing.T) {
	t.Parallel()

	qc := newTestQueryCache(t)
	upstream := &GatewayError{Op: "auto-lineup", Message: "No active roster found"}
	assigner := &fakeAssigner{err: upstream}
	svc := NewAutoLineupService(cachedrepo.NewAssigner(assigner, qc))

	_, err := svc.Run(t.Context(), validAutoAssignRequest())
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) || gwErr.Message != "No active roster found" {
		t.Fatalf("expected upstream gateway error, got %v", err)
	}
	if assigner.calls.Load() != 1 {
		t.Fatalf("failures must not be retried, got %d calls", assigner.calls.Load())
	}
	if qc.Stats().Invalidations != 0 {
		t.Fatalf("failed assignment must not invalidate")
	}
}

func TestAutoLineupService_ValidatesBeforeCalling(t *testing.T) {
	t.Parallel()

	assigner := &fakeAssigner{}
	svc := NewAutoLineupService(assigner)

	req := validAutoAssignRequest()
	req.MatchupID = " "
	if _, err := svc.Run(t.Context(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	req = validAutoAssignRequest()
	req.SeasonYear = 0
	if _, err := svc.Run(t.Context(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid season year, got %v", err)
	}
	if assigner.calls.Load() != 0 {
		t.Fatalf("invalid requests must not reach the function")
	}

	if _, err := NewAutoLineupService(nil).Run(t.Context(), validAutoAssignRequest()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected unavailable dependency, got %v", err)
	}
}
