package autolineup

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const (
	functionName   = "auto-lineup"
	maxBodyRead    = 4096
	maxBodyLogSize = 1024
)

var errAutoLineupTransient = crerr.New("auto-lineup transient failure")

type ClientConfig struct {
	BaseURL        string
	ServiceKey     string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client invokes the remote auto-lineup function. It makes exactly one
// attempt per call.
type Client struct {
	httpClient *http.Client
	endpoint   string
	serviceKey string
	breaker    *resilience.CircuitBreaker
	logger     *logging.Logger
}

type assignRequest struct {
	LeagueID   string `json:"leagueId"`
	TeamID     string `json:"teamId"`
	WeekNumber int    `json:"weekNumber"`
	SeasonYear int    `json:"seasonYear"`
	SeasonID   string `json:"seasonId"`
	MatchupID  string `json:"matchupId"`
}

type assignResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Error          string `json:"error"`
	LineupEntries  int    `json:"lineupEntries"`
	RemovedInvalid int    `json:"removedInvalid"`
}

func NewClient(cfg ClientConfig, logger *logging.Logger) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid FUNCTIONS_BASE_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger = logging.OrDefault(logger).Named("autolineup")

	breaker := resilience.NewOptionalCircuitBreaker(functionName, cfg.CircuitBreaker)
	if breaker != nil {
		breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		})
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   baseURL + "/" + functionName,
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
		breaker:    breaker,
		logger:     logger,
	}, nil
}

func (c *Client) AutoAssign(ctx context.Context, req lineup.AutoAssignRequest) (lineup.AutoAssignResult, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "auto-lineup circuit breaker rejected request", "state", c.breaker.State())
		return lineup.AutoAssignResult{}, fmt.Errorf("%w: auto-lineup is temporarily unavailable: %v", usecase.ErrDependencyUnavailable, err)
	}

	body, err := sonic.Marshal(assignRequest{
		LeagueID:   req.LeagueID,
		TeamID:     req.TeamID,
		WeekNumber: req.WeekNumber,
		SeasonYear: req.SeasonYear,
		SeasonID:   req.SeasonID,
		MatchupID:  req.MatchupID,
	})
	if err != nil {
		return lineup.AutoAssignResult{}, crerr.Wrap(err, "marshal auto-lineup request")
	}

	bodyText := truncateForLog(string(body), maxBodyLogSize)
	curlPreview := buildCurlPreview(c.endpoint, bodyText)
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String("autolineup.url", c.endpoint),
			attribute.String("autolineup.league_id", req.LeagueID),
			attribute.String("autolineup.team_id", req.TeamID),
			attribute.Int("autolineup.week_number", req.WeekNumber),
			attribute.String("autolineup.request_curl_preview", curlPreview),
		)
	}
	c.logger.DebugContext(ctx, "auto-lineup request", "url", c.endpoint, "curl_preview", curlPreview)

	result, err := c.call(ctx, body)
	c.recordCircuitResult(err)
	if err != nil {
		c.logger.WarnContext(ctx, "auto-lineup failed",
			"league_id", req.LeagueID,
			"team_id", req.TeamID,
			"week_number", req.WeekNumber,
			"error", err,
		)
		return lineup.AutoAssignResult{}, err
	}

	c.logger.InfoContext(ctx, "auto-lineup completed",
		"league_id", req.LeagueID,
		"team_id", req.TeamID,
		"week_number", req.WeekNumber,
		"lineup_entries", result.LineupEntries,
		"removed_invalid", result.RemovedInvalid,
	)
	return result, nil
}

func (c *Client) call(ctx context.Context, body []byte) (lineup.AutoAssignResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return lineup.AutoAssignResult{}, crerr.Wrap(err, "create auto-lineup request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.serviceKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.serviceKey)
		httpReq.Header.Set("apikey", c.serviceKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return lineup.AutoAssignResult{}, ctxErr
		}
		return lineup.AutoAssignResult{}, &usecase.GatewayError{
			Op:      functionName,
			Message: err.Error(),
			Err:     fmt.Errorf("%w: %v", errAutoLineupTransient, err),
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
	if err != nil {
		return lineup.AutoAssignResult{}, &usecase.GatewayError{
			Op:      functionName,
			Message: "read response: " + err.Error(),
			Err:     fmt.Errorf("%w: %v", errAutoLineupTransient, err),
		}
	}

	var payload assignResponse
	decodeErr := sonic.Unmarshal(raw, &payload)

	if resp.StatusCode/100 != 2 {
		message := upstreamMessage(payload, decodeErr, resp.StatusCode, raw)
		cause := crerr.Newf("auto-lineup status=%d body=%s", resp.StatusCode, truncateForLog(strings.TrimSpace(string(raw)), maxBodyLogSize))
		if isRetryableStatus(resp.StatusCode) {
			cause = fmt.Errorf("%w: %v", errAutoLineupTransient, cause)
		}
		return lineup.AutoAssignResult{}, &usecase.GatewayError{Op: functionName, Message: message, Err: cause}
	}
	if decodeErr != nil {
		return lineup.AutoAssignResult{}, &usecase.GatewayError{
			Op:      functionName,
			Message: "invalid response body",
			Err:     crerr.Wrap(decodeErr, "decode auto-lineup response"),
		}
	}
	if !payload.Success {
		return lineup.AutoAssignResult{}, &usecase.GatewayError{
			Op:      functionName,
			Message: upstreamMessage(payload, nil, resp.StatusCode, raw),
		}
	}

	return lineup.AutoAssignResult{
		Success:        payload.Success,
		Message:        payload.Message,
		LineupEntries:  payload.LineupEntries,
		RemovedInvalid: payload.RemovedInvalid,
	}, nil
}

// upstreamMessage prefers the function's own error text over the status line.
func upstreamMessage(payload assignResponse, decodeErr error, status int, raw []byte) string {
	if decodeErr == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	if status/100 == 2 {
		return "auto-lineup reported failure"
	}
	if text := strings.TrimSpace(string(raw)); text != "" && decodeErr != nil {
		return fmt.Sprintf("status %d: %s", status, truncateForLog(text, 256))
	}
	return fmt.Sprintf("status %d: %s", status, http.StatusText(status))
}

func (c *Client) recordCircuitResult(err error) {
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errAutoLineupTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func buildCurlPreview(endpoint, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl -X POST")
	appendPart(shellQuote(endpoint))
	appendPart("-H")
	appendPart(shellQuote("Authorization: Bearer ***"))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	appendPart("-d")
	appendPart(shellQuote(body))

	return buf.String()
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
