package config

import (
	"testing"
	"time"

	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `x-other=1, uptrace-dsn="https://token@api.uptrace.dev"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_GatewayDriverDefaultsByEnv(t *testing.T) {
	t.Run("dev uses memory", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("GATEWAY_DRIVER", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.GatewayDriver != GatewayMemory {
			t.Fatalf("expected memory gateway in dev, got %q", cfg.GatewayDriver)
		}
	})

	t.Run("prod requires db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("GATEWAY_DRIVER", "")
		t.Setenv("DB_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when postgres gateway has no DB_URL")
		}
	})

	t.Run("prod with db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("GATEWAY_DRIVER", "")
		t.Setenv("DB_URL", "postgres://app@localhost:5432/hoops?sslmode=disable")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.GatewayDriver != GatewayPostgres {
			t.Fatalf("expected postgres gateway in prod, got %q", cfg.GatewayDriver)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("GATEWAY_DRIVER", "sqlite")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown GATEWAY_DRIVER")
		}
	})
}

func TestLoad_AuthModeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("jwt requires secret", func(t *testing.T) {
		t.Setenv("AUTH_MODE", AuthModeJWT)
		t.Setenv("AUTH_JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when AUTH_MODE=jwt without AUTH_JWT_SECRET")
		}
	})

	t.Run("jwt with secret", func(t *testing.T) {
		t.Setenv("AUTH_MODE", "JWT")
		t.Setenv("AUTH_JWT_SECRET", "shh")
		t.Setenv("AUTH_JWT_AUDIENCE", "authenticated")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.AuthMode != AuthModeJWT || cfg.JWTAudience != "authenticated" {
			t.Fatalf("unexpected auth config: mode=%q audience=%q", cfg.AuthMode, cfg.JWTAudience)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("AUTH_MODE", "basic")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown AUTH_MODE")
		}
	})
}

func TestLoad_CircuitBreakerParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.AutoLineupCircuit.Enabled || cfg.AutoLineupCircuit.FailureThreshold != 5 {
			t.Fatalf("unexpected default auto lineup circuit: %+v", cfg.AutoLineupCircuit)
		}
		if cfg.NBAStatsCircuit.OpenTimeout != 15*time.Second {
			t.Fatalf("unexpected default nba stats open timeout: %s", cfg.NBAStatsCircuit.OpenTimeout)
		}
	})

	t.Run("overrides per prefix", func(t *testing.T) {
		t.Setenv("ANUBIS_CIRCUIT_ENABLED", "false")
		t.Setenv("NBA_STATS_CIRCUIT_FAILURE_COUNT", "2")
		t.Setenv("NBA_STATS_CIRCUIT_OPEN_TIMEOUT", "1m")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.AnubisCircuit.Enabled {
			t.Fatalf("expected anubis circuit disabled")
		}
		if cfg.NBAStatsCircuit.FailureThreshold != 2 || cfg.NBAStatsCircuit.OpenTimeout != time.Minute {
			t.Fatalf("unexpected nba stats circuit: %+v", cfg.NBAStatsCircuit)
		}
		if !cfg.AutoLineupCircuit.Enabled {
			t.Fatalf("auto lineup circuit should keep its default")
		}
	})

	t.Run("invalid failure count", func(t *testing.T) {
		t.Setenv("AUTO_LINEUP_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for AUTO_LINEUP_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fantasy-basketball-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-basketball-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://hoops.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://hoops.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_STALE_AFTER", "")
		t.Setenv("CACHE_REFRESH_POLICY", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheStaleAfter != 2*time.Minute {
			t.Fatalf("unexpected default cache stale after: %s", cfg.CacheStaleAfter)
		}
		if cfg.CacheRefreshPolicy != basecache.RefreshBlocking {
			t.Fatalf("unexpected default refresh policy: %q", cfg.CacheRefreshPolicy)
		}
	})

	t.Run("background policy", func(t *testing.T) {
		t.Setenv("CACHE_REFRESH_POLICY", "background")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheRefreshPolicy != basecache.RefreshBackground {
			t.Fatalf("unexpected refresh policy: %q", cfg.CacheRefreshPolicy)
		}
	})

	t.Run("invalid stale after", func(t *testing.T) {
		t.Setenv("CACHE_STALE_AFTER", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_STALE_AFTER")
		}
	})

	t.Run("invalid max entries", func(t *testing.T) {
		t.Setenv("CACHE_MAX_ENTRIES", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CACHE_MAX_ENTRIES=0")
		}
	})
}

func TestLoad_PlayerSyncConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.PlayerSyncCron != "" {
			t.Fatalf("expected player sync cron disabled by default, got %q", cfg.PlayerSyncCron)
		}
		if cfg.PlayerSyncBatchSize != 50 || cfg.PlayerSyncWorkers != 8 {
			t.Fatalf("unexpected player sync sizing: batch=%d workers=%d", cfg.PlayerSyncBatchSize, cfg.PlayerSyncWorkers)
		}
		if cfg.PlayerSyncBatchPause != 100*time.Millisecond {
			t.Fatalf("unexpected batch pause: %s", cfg.PlayerSyncBatchPause)
		}
	})

	t.Run("zero pause allowed", func(t *testing.T) {
		t.Setenv("PLAYER_SYNC_BATCH_PAUSE", "0s")
		t.Setenv("PLAYER_SYNC_CRON", "0 6 * * *")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.PlayerSyncBatchPause != 0 || cfg.PlayerSyncCron != "0 6 * * *" {
			t.Fatalf("unexpected player sync config: pause=%s cron=%q", cfg.PlayerSyncBatchPause, cfg.PlayerSyncCron)
		}
	})

	t.Run("invalid workers", func(t *testing.T) {
		t.Setenv("PLAYER_SYNC_WORKERS", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for PLAYER_SYNC_WORKERS=-1")
		}
	})
}
