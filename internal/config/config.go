package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	basecache "github.com/riskibarqy/fantasy-basketball/internal/platform/cache"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	GatewayMemory   = "memory"
	GatewayPostgres = "postgres"
)

const (
	AuthModeAnubis = "anubis"
	AuthModeJWT    = "jwt"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	GatewayDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool

	CacheEnabled       bool
	CacheStaleAfter    time.Duration
	CacheMaxEntries    int
	CacheRefreshPolicy basecache.RefreshPolicy

	AuthMode              string
	AnubisBaseURL         string
	AnubisIntrospectPath  string
	AnubisAdminKey        string
	AnubisTimeout         time.Duration
	AnubisCacheTTL        time.Duration
	AnubisCacheMaxEntries int
	AnubisCircuit         resilience.CircuitBreakerConfig
	JWTSecret             string
	JWTAudience           string

	FunctionsBaseURL    string
	FunctionsServiceKey string
	AutoLineupTimeout   time.Duration
	AutoLineupCircuit   resilience.CircuitBreakerConfig

	NBAStatsBaseURL      string
	NBAStatsTimeout      time.Duration
	NBAStatsMaxRetries   int
	NBAStatsRetryBackoff time.Duration
	NBAStatsCircuit      resilience.CircuitBreakerConfig

	PlayerSyncCron       string
	PlayerSyncSeason     string
	PlayerSyncTimeout    time.Duration
	PlayerSyncBatchSize  int
	PlayerSyncWorkers    int
	PlayerSyncBatchPause time.Duration

	ScoreboardConcurrency int

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "fantasy-basketball-api"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBURL:                strings.TrimSpace(getEnv("DB_URL", "")),
		AnubisBaseURL:        strings.TrimSpace(getEnv("ANUBIS_BASE_URL", "http://localhost:8081")),
		AnubisIntrospectPath: strings.TrimSpace(getEnv("ANUBIS_INTROSPECT_PATH", "/v1/auth/introspect")),
		AnubisAdminKey:       strings.TrimSpace(getEnv("ANUBIS_ADMIN_KEY", "")),
		JWTSecret:            strings.TrimSpace(getEnv("AUTH_JWT_SECRET", "")),
		JWTAudience:          strings.TrimSpace(getEnv("AUTH_JWT_AUDIENCE", "")),
		FunctionsBaseURL:     strings.TrimSpace(getEnv("FUNCTIONS_BASE_URL", "")),
		FunctionsServiceKey:  strings.TrimSpace(getEnv("FUNCTIONS_SERVICE_KEY", "")),
		NBAStatsBaseURL:      strings.TrimSpace(getEnv("NBA_STATS_BASE_URL", "https://stats.nba.com")),
		PlayerSyncCron:       strings.TrimSpace(getEnv("PLAYER_SYNC_CRON", "")),
		PlayerSyncSeason:     strings.TrimSpace(getEnv("PLAYER_SYNC_SEASON", "2024-25")),
		PprofAddr:            strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),

		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadHTTP(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadGateway(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadCache(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadAuth(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadFunctions(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadPlayerSync(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadHTTP(cfg *Config) error {
	var err error
	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return err
	}
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = getEnvAsPositiveDuration("APP_SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return err
	}
	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", true); err != nil {
		return err
	}
	return nil
}

// loadGateway defaults to the in-memory gateway only in dev.
func loadGateway(cfg *Config) error {
	driverDefault := GatewayPostgres
	if cfg.AppEnv == EnvDev {
		driverDefault = GatewayMemory
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("GATEWAY_DRIVER", driverDefault)))
	switch driver {
	case GatewayMemory, GatewayPostgres:
	default:
		return fmt.Errorf("invalid GATEWAY_DRIVER %q: valid values are %s, %s", driver, GatewayMemory, GatewayPostgres)
	}
	cfg.GatewayDriver = driver
	if driver == GatewayPostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when GATEWAY_DRIVER=postgres")
	}

	var err error
	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true); err != nil {
		return err
	}
	return nil
}

func loadCache(cfg *Config) error {
	var err error
	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return err
	}
	if cfg.CacheStaleAfter, err = getEnvAsPositiveDuration("CACHE_STALE_AFTER", "2m"); err != nil {
		return err
	}
	if cfg.CacheMaxEntries, err = getEnvAsInt("CACHE_MAX_ENTRIES", basecache.DefaultMaxEntries); err != nil {
		return fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cfg.CacheMaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be > 0")
	}
	if cfg.CacheRefreshPolicy, err = basecache.ParseRefreshPolicy(getEnv("CACHE_REFRESH_POLICY", string(basecache.RefreshBlocking))); err != nil {
		return fmt.Errorf("parse CACHE_REFRESH_POLICY: %w", err)
	}
	return nil
}

func loadAuth(cfg *Config) error {
	mode := strings.ToLower(strings.TrimSpace(getEnv("AUTH_MODE", AuthModeAnubis)))
	switch mode {
	case AuthModeAnubis:
		if cfg.AnubisBaseURL == "" {
			return fmt.Errorf("ANUBIS_BASE_URL is required when AUTH_MODE=anubis")
		}
	case AuthModeJWT:
		if cfg.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_MODE=jwt")
		}
	default:
		return fmt.Errorf("invalid AUTH_MODE %q: valid values are %s, %s", mode, AuthModeAnubis, AuthModeJWT)
	}
	cfg.AuthMode = mode

	var err error
	if cfg.AnubisTimeout, err = getEnvAsPositiveDuration("ANUBIS_TIMEOUT", "3s"); err != nil {
		return err
	}
	if cfg.AnubisCacheTTL, err = getEnvAsPositiveDuration("ANUBIS_CACHE_TTL", "30s"); err != nil {
		return err
	}
	if cfg.AnubisCacheMaxEntries, err = getEnvAsInt("ANUBIS_CACHE_MAX_ENTRIES", 4096); err != nil {
		return fmt.Errorf("parse ANUBIS_CACHE_MAX_ENTRIES: %w", err)
	}
	if cfg.AnubisCacheMaxEntries < 0 {
		return fmt.Errorf("ANUBIS_CACHE_MAX_ENTRIES must be >= 0")
	}
	if cfg.AnubisCircuit, err = loadCircuitBreaker("ANUBIS"); err != nil {
		return err
	}
	return nil
}

func loadFunctions(cfg *Config) error {
	var err error
	if cfg.AutoLineupTimeout, err = getEnvAsPositiveDuration("AUTO_LINEUP_TIMEOUT", "30s"); err != nil {
		return err
	}
	if cfg.AutoLineupCircuit, err = loadCircuitBreaker("AUTO_LINEUP"); err != nil {
		return err
	}

	if cfg.NBAStatsTimeout, err = getEnvAsPositiveDuration("NBA_STATS_TIMEOUT", "30s"); err != nil {
		return err
	}
	if cfg.NBAStatsMaxRetries, err = getEnvAsInt("NBA_STATS_MAX_RETRIES", 2); err != nil {
		return fmt.Errorf("parse NBA_STATS_MAX_RETRIES: %w", err)
	}
	if cfg.NBAStatsMaxRetries < 0 {
		return fmt.Errorf("NBA_STATS_MAX_RETRIES must be >= 0")
	}
	if cfg.NBAStatsRetryBackoff, err = getEnvAsPositiveDuration("NBA_STATS_RETRY_BACKOFF", "1s"); err != nil {
		return err
	}
	if cfg.NBAStatsCircuit, err = loadCircuitBreaker("NBA_STATS"); err != nil {
		return err
	}
	return nil
}

func loadPlayerSync(cfg *Config) error {
	if cfg.PlayerSyncSeason == "" {
		return fmt.Errorf("PLAYER_SYNC_SEASON cannot be empty")
	}

	var err error
	if cfg.PlayerSyncTimeout, err = getEnvAsPositiveDuration("PLAYER_SYNC_TIMEOUT", "10m"); err != nil {
		return err
	}
	if cfg.PlayerSyncBatchSize, err = getEnvAsInt("PLAYER_SYNC_BATCH_SIZE", 50); err != nil {
		return fmt.Errorf("parse PLAYER_SYNC_BATCH_SIZE: %w", err)
	}
	if cfg.PlayerSyncBatchSize <= 0 {
		return fmt.Errorf("PLAYER_SYNC_BATCH_SIZE must be > 0")
	}
	if cfg.PlayerSyncWorkers, err = getEnvAsInt("PLAYER_SYNC_WORKERS", 8); err != nil {
		return fmt.Errorf("parse PLAYER_SYNC_WORKERS: %w", err)
	}
	if cfg.PlayerSyncWorkers <= 0 {
		return fmt.Errorf("PLAYER_SYNC_WORKERS must be > 0")
	}
	pause, err := time.ParseDuration(getEnv("PLAYER_SYNC_BATCH_PAUSE", "100ms"))
	if err != nil {
		return fmt.Errorf("parse PLAYER_SYNC_BATCH_PAUSE: %w", err)
	}
	if pause < 0 {
		return fmt.Errorf("PLAYER_SYNC_BATCH_PAUSE must be >= 0")
	}
	cfg.PlayerSyncBatchPause = pause

	if cfg.ScoreboardConcurrency, err = getEnvAsInt("SCOREBOARD_CONCURRENCY", 4); err != nil {
		return fmt.Errorf("parse SCOREBOARD_CONCURRENCY: %w", err)
	}
	if cfg.ScoreboardConcurrency <= 0 {
		return fmt.Errorf("SCOREBOARD_CONCURRENCY must be > 0")
	}
	return nil
}

func loadObservability(cfg *Config) error {
	var err error
	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	return nil
}

// loadCircuitBreaker reads <PREFIX>_CIRCUIT_{ENABLED,FAILURE_COUNT,OPEN_TIMEOUT,HALF_OPEN_MAX_REQ}.
func loadCircuitBreaker(prefix string) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()

	enabled, err := getEnvAsBool(prefix+"_CIRCUIT_ENABLED", defaults.Enabled)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}

	failureKey := prefix + "_CIRCUIT_FAILURE_COUNT"
	failures, err := getEnvAsInt(failureKey, defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s: %w", failureKey, err)
	}
	if failures < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s must be >= 1", failureKey)
	}

	openTimeout, err := getEnvAsPositiveDuration(prefix+"_CIRCUIT_OPEN_TIMEOUT", defaults.OpenTimeout.String())
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}

	halfOpenKey := prefix + "_CIRCUIT_HALF_OPEN_MAX_REQ"
	halfOpen, err := getEnvAsInt(halfOpenKey, defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s: %w", halfOpenKey, err)
	}
	if halfOpen < 1 {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("%s must be >= 1", halfOpenKey)
	}

	return resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failures,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpen,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	out, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
