package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

const (
	DefaultSyncSeason    = "2024-25"
	defaultSyncBatchSize = 50
	defaultSyncWorkers   = 8
)

type PlayerSyncConfig struct {
	BatchSize  int
	Workers    int
	BatchPause time.Duration
}

type PlayerSyncResult struct {
	Total    int
	Imported int
	Updated  int
	Errors   int
}

// PlayerSyncService imports the provider's player list into the gateway. A
// failed player is counted and skipped.
type PlayerSyncService struct {
	source player.Source
	repo   player.Repository
	cfg    PlayerSyncConfig
	logger *logging.Logger
}

func NewPlayerSyncService(source player.Source, repo player.Repository, cfg PlayerSyncConfig, logger *logging.Logger) *PlayerSyncService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultSyncBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultSyncWorkers
	}
	if cfg.BatchPause < 0 {
		cfg.BatchPause = 0
	}
	return &PlayerSyncService{
		source: source,
		repo:   repo,
		cfg:    cfg,
		logger: logging.OrDefault(logger),
	}
}

func (s *PlayerSyncService) Sync(ctx context.Context, season string) (PlayerSyncResult, error) {
	season = strings.TrimSpace(season)
	if season == "" {
		season = DefaultSyncSeason
	}
	if s.source == nil {
		return PlayerSyncResult{}, fmt.Errorf("%w: player source is not configured", ErrDependencyUnavailable)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSyncService.Sync")
	defer span.End()

	players, err := s.source.FetchPlayers(ctx, season)
	if err != nil {
		recordSpanError(span, err)
		return PlayerSyncResult{}, fmt.Errorf("fetch players for season %s: %w", season, err)
	}
	if len(players) == 0 {
		err := fmt.Errorf("%w: no player data received for season %s", ErrDependencyUnavailable, season)
		recordSpanError(span, err)
		return PlayerSyncResult{}, err
	}

	workerPool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return PlayerSyncResult{}, fmt.Errorf("create sync worker pool: %w", err)
	}
	defer workerPool.Release()

	var imported, updated, failed atomic.Int64
	for start := 0; start < len(players); start += s.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return PlayerSyncResult{}, err
		}

		end := min(start+s.cfg.BatchSize, len(players))
		var wg sync.WaitGroup
		for _, item := range players[start:end] {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				existed, err := s.syncOne(ctx, item)
				switch {
				case err != nil:
					failed.Add(1)
					s.logger.WarnContext(ctx, "sync player failed", "nba_player_id", item.NBAPlayerID, "name", item.Name, "error", err)
				case existed:
					updated.Add(1)
				default:
					imported.Add(1)
				}
			}
			if err := workerPool.Submit(task); err != nil {
				wg.Done()
				failed.Add(1)
				s.logger.WarnContext(ctx, "submit sync task failed", "nba_player_id", item.NBAPlayerID, "error", err)
			}
		}
		wg.Wait()

		if s.cfg.BatchPause > 0 && end < len(players) {
			select {
			case <-ctx.Done():
				return PlayerSyncResult{}, ctx.Err()
			case <-time.After(s.cfg.BatchPause):
			}
		}
	}

	result := PlayerSyncResult{
		Total:    len(players),
		Imported: int(imported.Load()),
		Updated:  int(updated.Load()),
		Errors:   int(failed.Load()),
	}
	s.logger.InfoContext(ctx, "player sync completed",
		"season", season,
		"total", result.Total,
		"imported", result.Imported,
		"updated", result.Updated,
		"errors", result.Errors,
	)
	return result, nil
}

// syncOne reports whether the player existed before the upsert.
func (s *PlayerSyncService) syncOne(ctx context.Context, item player.Player) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	existed, err := s.repo.Exists(ctx, item.NBAPlayerID)
	if err != nil {
		return false, fmt.Errorf("check player exists: %w", err)
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return false, fmt.Errorf("upsert player: %w", err)
	}
	return existed, nil
}
