package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

// WeeklyLineupService runs the weekly lineup workflow. A locked lineup
// refuses saves; lock and unlock are unconditional.
type WeeklyLineupService struct {
	repo lineup.WeeklyRepository
	now  func() time.Time
}

func NewWeeklyLineupService(repo lineup.WeeklyRepository) *WeeklyLineupService {
	return &WeeklyLineupService{
		repo: repo,
		now:  time.Now,
	}
}

// Read reports false when nothing has been saved for the week yet.
func (s *WeeklyLineupService) Read(ctx context.Context, key lineup.WeekKey) (lineup.WeeklyLineup, bool, error) {
	key, err := normalizeWeekKey(key)
	if err != nil {
		return lineup.WeeklyLineup{}, false, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyLineupService.Read")
	defer span.End()

	item, exists, err := s.repo.GetWeekly(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return lineup.WeeklyLineup{}, false, wrapGatewayError("get weekly lineup", err)
	}
	return item, exists, nil
}

// Save replaces starters and bench in one gateway write.
func (s *WeeklyLineupService) Save(ctx context.Context, key lineup.WeekKey, item lineup.WeeklyLineup) error {
	key, err := normalizeWeekKey(key)
	if err != nil {
		return err
	}
	if dupes := item.DuplicatePlayers(); len(dupes) > 0 {
		return fmt.Errorf("%w: players placed more than once: %s", ErrInvalidInput, strings.Join(dupes, ", "))
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyLineupService.Save")
	defer span.End()

	current, exists, err := s.repo.GetWeekly(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("get weekly lineup", err)
	}
	if exists && current.IsLocked {
		return fmt.Errorf("%w: team %s week %d season %d", ErrLineupLocked, key.TeamID, key.WeekNumber, key.SeasonYear)
	}

	// Lock state is owned by Lock and Unlock.
	item.IsLocked = false
	item.LockedAt = nil

	if err := s.repo.SaveWeekly(ctx, key, item); err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("save weekly lineup", err)
	}
	return nil
}

// Lock is idempotent. Locking again refreshes locked_at.
func (s *WeeklyLineupService) Lock(ctx context.Context, key lineup.WeekKey) error {
	lockedAt := s.now().UTC()
	return s.setLock(ctx, "usecase.WeeklyLineupService.Lock", key, true, &lockedAt)
}

func (s *WeeklyLineupService) Unlock(ctx context.Context, key lineup.WeekKey) error {
	return s.setLock(ctx, "usecase.WeeklyLineupService.Unlock", key, false, nil)
}

func (s *WeeklyLineupService) setLock(ctx context.Context, spanName string, key lineup.WeekKey, locked bool, lockedAt *time.Time) error {
	key, err := normalizeWeekKey(key)
	if err != nil {
		return err
	}

	ctx, span := startUsecaseSpan(ctx, spanName)
	defer span.End()

	// A week with no saved lineup has nothing to flip; the transition still succeeds.
	if _, err := s.repo.SetWeeklyLock(ctx, key, locked, lockedAt); err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("set weekly lineup lock", err)
	}
	return nil
}

func normalizeWeekKey(key lineup.WeekKey) (lineup.WeekKey, error) {
	key.TeamID = strings.TrimSpace(key.TeamID)
	if err := key.Validate(); err != nil {
		return lineup.WeekKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return key, nil
}
