package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-basketball/external/autolineup"
	"github.com/riskibarqy/fantasy-basketball/external/nbastats"
	"github.com/riskibarqy/fantasy-basketball/internal/config"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/account/jwtauth"
	cachedrepo "github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-basketball/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-basketball/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/scheduler"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const (
	metricsNamespace = "fantasy_basketball"
	playerSyncJob    = "player-sync"
)

// gateways is the set of data gateways every service reads through.
type gateways struct {
	positions lineup.PositionRepository
	weekly    lineup.WeeklyRepository
	schedule  schedule.Repository
	scores    score.Repository
	trades    trade.Repository
	roster    roster.Repository
	leagues   league.Repository
	players   player.Repository
}

// App owns the HTTP server and every background resource it depends on.
type App struct {
	cfg       config.Config
	logger    *logging.Logger
	server    *http.Server
	scheduler *scheduler.Service
	db        *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	logger = logging.OrDefault(logger)
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}

	gw, err := a.openGateways()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	assigner, err := newAssigner(cfg, logger)
	if err != nil {
		a.closeDB()
		return nil, err
	}

	if cfg.CacheEnabled {
		cache, err := basecache.New(basecache.Config{
			MaxEntries: cfg.CacheMaxEntries,
			StaleAfter: cfg.CacheStaleAfter,
			Refresh:    cfg.CacheRefreshPolicy,
			Logger:     logger,
		})
		if err != nil {
			a.closeDB()
			return nil, fmt.Errorf("build cache: %w", err)
		}
		registry.MustRegister(basecache.NewCollector(cache, metricsNamespace))
		gw = decorateGateways(gw, cache)
		if assigner != nil {
			assigner = cachedrepo.NewAssigner(assigner, cache)
		}
		logger.Info("read cache enabled",
			"max_entries", cfg.CacheMaxEntries,
			"stale_after", cfg.CacheStaleAfter.String(),
			"refresh_policy", string(cfg.CacheRefreshPolicy),
		)
	}

	scores := usecase.NewScoreService(gw.scores, gw.schedule)
	scores.SetConcurrency(cfg.ScoreboardConcurrency)

	handler := httpapi.NewHandler(httpapi.Services{
		Positions:  usecase.NewLineupPositionService(gw.positions),
		Weekly:     usecase.NewWeeklyLineupService(gw.weekly),
		AutoLineup: usecase.NewAutoLineupService(assigner),
		Matchups:   usecase.NewMatchupService(gw.schedule),
		Scores:     scores,
		Trades:     usecase.NewTradeService(gw.trades, logger),
		Roster:     usecase.NewRosterStatusService(gw.roster),
	}, logger)

	playerSync := usecase.NewPlayerSyncService(newPlayerSource(cfg, logger), gw.players, usecase.PlayerSyncConfig{
		BatchSize:  cfg.PlayerSyncBatchSize,
		Workers:    cfg.PlayerSyncWorkers,
		BatchPause: cfg.PlayerSyncBatchPause,
	}, logger)
	edge := httpapi.NewEdgeHandler(usecase.NewLeagueCreationService(gw.leagues, nil, logger), playerSync, logger)

	verifier, err := newVerifier(cfg, logger)
	if err != nil {
		a.closeDB()
		return nil, err
	}

	routerCfg := httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceKey:         cfg.FunctionsServiceKey,
	}
	if cfg.MetricsEnabled {
		metrics, err := httpapi.NewHTTPMetrics(metricsNamespace, registry)
		if err != nil {
			a.closeDB()
			return nil, fmt.Errorf("build http metrics: %w", err)
		}
		routerCfg.Metrics = metrics
		routerCfg.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, edge, verifier, logger, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if cfg.PlayerSyncCron != "" {
		if err := a.schedulePlayerSync(playerSync); err != nil {
			a.closeDB()
			return nil, err
		}
	}

	return a, nil
}

// Handler exposes the assembled router.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP until ctx is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	if a.scheduler != nil {
		a.scheduler.Start()
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr, "gateway", a.cfg.GatewayDriver)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

func (a *App) shutdown(ctx context.Context) error {
	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("scheduler shutdown: %w", err))
		}
	}
	if err := a.closeDB(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}
	a.logger.Info("http server stopped")

	return errors.Join(errs...)
}

func (a *App) closeDB() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) openGateways() (gateways, error) {
	switch a.cfg.GatewayDriver {
	case config.GatewayPostgres:
		db, err := openDB(a.cfg)
		if err != nil {
			return gateways{}, err
		}
		a.db = db
		a.logger.Info("postgres gateway ready", "db", resolveDBTarget(a.cfg.DBURL, false).Redacted)

		return gateways{
			positions: postgres.NewPositionRepository(db),
			weekly:    postgres.NewWeeklyRepository(db),
			schedule:  postgres.NewScheduleRepository(db),
			scores:    postgres.NewScoreRepository(db),
			trades:    postgres.NewTradeRepository(db),
			roster:    postgres.NewRosterRepository(db),
			leagues:   postgres.NewLeagueRepository(db),
			players:   postgres.NewPlayerRepository(db),
		}, nil
	default:
		store, err := memory.NewSeededStore()
		if err != nil {
			return gateways{}, fmt.Errorf("seed memory store: %w", err)
		}
		a.logger.Warn("using in-memory gateway", "reason", "GATEWAY_DRIVER=memory")

		return gateways{
			positions: memory.NewPositionRepository(store),
			weekly:    memory.NewWeeklyRepository(store),
			schedule:  memory.NewScheduleRepository(store),
			scores:    memory.NewScoreRepository(store),
			trades:    memory.NewTradeRepository(store),
			roster:    memory.NewRosterRepository(store),
			leagues:   memory.NewLeagueRepository(store),
			players:   memory.NewPlayerRepository(store),
		}, nil
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	target := resolveDBTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
	attrs := []attribute.KeyValue{attribute.String("db.system", "postgresql")}

	db, err := otelsqlx.Open("postgres", target.DSN,
		otelsql.WithAttributes(attrs...),
		otelsql.WithDBName(target.Name),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithAttributes(attrs...))

	return db, nil
}

func decorateGateways(gw gateways, cache *basecache.Cache) gateways {
	return gateways{
		positions: cachedrepo.NewPositionRepository(gw.positions, cache),
		weekly:    cachedrepo.NewWeeklyRepository(gw.weekly, cache),
		schedule:  cachedrepo.NewScheduleRepository(gw.schedule, cache),
		scores:    cachedrepo.NewScoreRepository(gw.scores, cache),
		trades:    cachedrepo.NewTradeRepository(gw.trades, cache),
		roster:    cachedrepo.NewRosterRepository(gw.roster, cache),
		leagues:   cachedrepo.NewLeagueRepository(gw.leagues, cache),
		players:   gw.players,
	}
}

// newAssigner returns nil when no functions base URL is configured; auto
// lineup then answers dependencyUnavailable.
func newAssigner(cfg config.Config, logger *logging.Logger) (lineup.Assigner, error) {
	if cfg.FunctionsBaseURL == "" {
		logger.Warn("auto lineup disabled", "reason", "FUNCTIONS_BASE_URL empty")
		return nil, nil
	}

	client, err := autolineup.NewClient(autolineup.ClientConfig{
		BaseURL:        cfg.FunctionsBaseURL,
		ServiceKey:     cfg.FunctionsServiceKey,
		Timeout:        cfg.AutoLineupTimeout,
		CircuitBreaker: cfg.AutoLineupCircuit,
	}, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newPlayerSource(cfg config.Config, logger *logging.Logger) player.Source {
	return nbastats.NewClient(nbastats.ClientConfig{
		BaseURL:        cfg.NBAStatsBaseURL,
		Timeout:        cfg.NBAStatsTimeout,
		MaxRetries:     cfg.NBAStatsMaxRetries,
		RetryBackoff:   cfg.NBAStatsRetryBackoff,
		CircuitBreaker: cfg.NBAStatsCircuit,
		Logger:         logger,
	})
}

func newVerifier(cfg config.Config, logger *logging.Logger) (httpapi.TokenVerifier, error) {
	if cfg.AuthMode == config.AuthModeJWT {
		var opts []jwtauth.Option
		if cfg.JWTAudience != "" {
			opts = append(opts, jwtauth.WithAudience(cfg.JWTAudience))
		}
		verifier, err := jwtauth.NewVerifier(cfg.JWTSecret, opts...)
		if err != nil {
			return nil, fmt.Errorf("build jwt verifier: %w", err)
		}
		return verifier, nil
	}

	return anubis.NewClient(&http.Client{Timeout: cfg.AnubisTimeout}, anubis.Config{
		BaseURL:         cfg.AnubisBaseURL,
		IntrospectPath:  cfg.AnubisIntrospectPath,
		AdminKey:        cfg.AnubisAdminKey,
		Timeout:         cfg.AnubisTimeout,
		CacheTTL:        cfg.AnubisCacheTTL,
		CacheMaxEntries: cfg.AnubisCacheMaxEntries,
		CircuitBreaker:  cfg.AnubisCircuit,
	}, logger), nil
}

func (a *App) schedulePlayerSync(sync *usecase.PlayerSyncService) error {
	sched, err := scheduler.New(a.logger)
	if err != nil {
		return fmt.Errorf("build scheduler: %w", err)
	}

	season := a.cfg.PlayerSyncSeason
	_, err = sched.AddCronJob(playerSyncJob, a.cfg.PlayerSyncCron, a.cfg.PlayerSyncTimeout, func(ctx context.Context) error {
		result, err := sync.Sync(ctx, season)
		if err != nil {
			return err
		}
		a.logger.InfoContext(ctx, "scheduled player sync finished",
			"season", season,
			"total", result.Total,
			"imported", result.Imported,
			"updated", result.Updated,
			"errors", result.Errors,
		)
		return nil
	})
	if err != nil {
		_ = sched.Stop()
		return fmt.Errorf("schedule player sync: %w", err)
	}

	a.scheduler = sched
	return nil
}
