package nbastats

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const (
	DefaultBaseURL = "https://stats.nba.com"
	allPlayersPath = "/stats/commonallplayers"

	defaultTimeout      = 30 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	maxBodyLogLen       = 512
)

var errNBAStatsTransient = crerr.New("nba stats transient failure")

var browserHeaders = [][2]string{
	{"User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"},
	{"Accept", "application/json, text/plain, */*"},
	{"Accept-Language", "en-US,en;q=0.9"},
	{"Accept-Encoding", "gzip"},
	{"Referer", "https://www.nba.com/"},
	{"Origin", "https://www.nba.com"},
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// Client reads the full player list from the NBA stats API.
type Client struct {
	httpClient   *fasthttp.Client
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	breaker      *resilience.CircuitBreaker
	logger       *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "fantasy-basketball",
			NoDefaultUserAgentHeader: true,
			ReadTimeout:              defaultTimeout,
			WriteTimeout:             defaultTimeout,
			MaxIdleConnDuration:      90 * time.Second,
		}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	logger := logging.OrDefault(cfg.Logger).Named("nbastats")
	breaker := resilience.NewOptionalCircuitBreaker("nbastats", cfg.CircuitBreaker)
	if breaker != nil {
		breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		})
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		timeout:      timeout,
		maxRetries:   maxRetries,
		retryBackoff: backoff,
		breaker:      breaker,
		logger:       logger,
	}
}

// FetchPlayers returns every player the provider lists for season, current
// or retired.
func (c *Client) FetchPlayers(ctx context.Context, season string) ([]player.Player, error) {
	ctx, span := otel.Tracer("github.com/riskibarqy/fantasy-basketball/external/nbastats").Start(ctx, "nbastats.FetchPlayers")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", usecase.ErrInvalidInput)
	}
	requestURL := c.allPlayersURL(season)
	span.SetAttributes(attribute.String("nbastats.season", season))

	var (
		body    []byte
		lastErr error
	)
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, c.retryBackoff*time.Duration(attempt)); err != nil {
				return nil, err
			}
		}

		err := c.breaker.Execute(func() error {
			var fetchErr error
			body, fetchErr = c.get(ctx, requestURL)
			return fetchErr
		}, isCircuitFailure)
		if err == nil {
			lastErr = nil
			break
		}
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			span.SetStatus(codes.Error, "circuit open")
			return nil, fmt.Errorf("%w: nba stats circuit is open", usecase.ErrDependencyUnavailable)
		}

		lastErr = err
		if !isCircuitFailure(err) {
			break
		}
		c.logger.WarnContext(ctx, "nba stats request failed, retrying",
			"attempt", attempt+1,
			"max_attempts", c.maxRetries+1,
			"error", err,
		)
	}
	if lastErr != nil {
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, lastErr.Error())
		return nil, lastErr
	}

	players, err := decodePlayers(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("nbastats.players", len(players)))
	c.logger.InfoContext(ctx, "nba stats players fetched", "season", season, "count", len(players))

	return players, nil
}

func (c *Client) allPlayersURL(season string) string {
	query := url.Values{}
	query.Set("LeagueID", "00")
	query.Set("Season", season)
	query.Set("IsOnlyCurrentSeason", "0")
	return c.baseURL + allPlayersPath + "?" + query.Encode()
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	for _, header := range browserHeaders {
		req.Header.Set(header[0], header[1])
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "request nba stats players"), errNBAStatsTransient)
	}

	status := resp.StatusCode()
	body := resp.Body()
	if bytes.EqualFold(resp.Header.ContentEncoding(), []byte("gzip")) {
		unzipped, err := resp.BodyGunzip()
		if err != nil {
			return nil, crerr.Wrap(err, "decompress nba stats response")
		}
		body = unzipped
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		err := crerr.Newf("nba stats returned status=%d body=%s", status, truncateForLog(string(body), maxBodyLogLen))
		if isRetryableStatus(status) {
			return nil, crerr.Mark(err, errNBAStatsTransient)
		}
		return nil, err
	}

	// The response body is owned by resp and released with it.
	return append([]byte(nil), body...), nil
}

type allPlayersResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func decodePlayers(body []byte) ([]player.Player, error) {
	var payload allPlayersResponse
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, crerr.Wrap(err, "decode nba stats response")
	}
	if len(payload.ResultSets) == 0 {
		return nil, fmt.Errorf("%w: nba stats response has no result sets", usecase.ErrDependencyUnavailable)
	}

	set := payload.ResultSets[0]
	columns := make(map[string]int, len(set.Headers))
	for i, header := range set.Headers {
		columns[header] = i
	}

	out := make([]player.Player, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		out = append(out, mapPlayerRow(row, columns))
	}
	return out, nil
}

func mapPlayerRow(values []any, columns map[string]int) player.Player {
	r := row{values: values, columns: columns}

	name := r.String("DISPLAY_FIRST_LAST")
	first, last := player.SplitName(name)
	toYear := r.Int("TO_YEAR")
	seasonExp := r.Int("SEASON_EXP")

	item := player.Player{
		NBAPlayerID:      int64(r.IntOr("PERSON_ID", 0)),
		Name:             name,
		FirstName:        first,
		LastName:         last,
		Position:         r.String("POSITION"),
		TeamID:           int64(r.IntOr("TEAM_ID", 0)),
		TeamName:         r.String("TEAM_NAME"),
		TeamAbbreviation: r.String("TEAM_ABBREVIATION"),
		JerseyNumber:     r.String("JERSEY"),
		Height:           r.String("HEIGHT"),
		Weight:           r.Int("WEIGHT"),
		BirthCountry:     r.String("COUNTRY"),
		College:          r.String("SCHOOL"),
		DraftYear:        r.Int("DRAFT_YEAR"),
		DraftRound:       r.Int("DRAFT_ROUND"),
		DraftNumber:      r.Int("DRAFT_NUMBER"),
		IsActive:         player.IsActiveThrough(toYear),
		IsRookie:         seasonExp != nil && *seasonExp == 0,
		FromYear:         r.Int("FROM_YEAR"),
		ToYear:           toYear,
	}
	if seasonExp != nil {
		item.YearsPro = *seasonExp
	}
	if birth := r.String("BIRTHDATE"); birth != "" {
		date, _, _ := strings.Cut(birth, "T")
		item.BirthDate = &date
	}

	return item
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errNBAStatsTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
