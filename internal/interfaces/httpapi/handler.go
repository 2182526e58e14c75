package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Services struct {
	Positions  *usecase.LineupPositionService
	Weekly     *usecase.WeeklyLineupService
	AutoLineup *usecase.AutoLineupService
	Matchups   *usecase.MatchupService
	Scores     *usecase.ScoreService
	Trades     *usecase.TradeService
	Roster     *usecase.RosterStatusService
}

type Handler struct {
	positions  *usecase.LineupPositionService
	weekly     *usecase.WeeklyLineupService
	autoLineup *usecase.AutoLineupService
	matchups   *usecase.MatchupService
	scores     *usecase.ScoreService
	trades     *usecase.TradeService
	roster     *usecase.RosterStatusService
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	return &Handler{
		positions:  services.Positions,
		weekly:     services.Weekly,
		autoLineup: services.AutoLineup,
		matchups:   services.Matchups,
		scores:     services.Scores,
		trades:     services.Trades,
		roster:     services.Roster,
		logger:     logging.OrDefault(logger).Named("httpapi"),
		validator:  validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	return validateWith(ctx, h.validator, payload)
}

func validateWith(ctx context.Context, v *validator.Validate, payload any) error {
	if err := v.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeJSONBody rejects unknown fields. An empty body is allowed when
// allowEmpty is set and leaves dst untouched.
func decodeJSONBody(r *http.Request, dst any, allowEmpty bool) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) > maxRequestBodyBytes {
		return fmt.Errorf("%w: request body too large", usecase.ErrInvalidInput)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}

	decoder := sonic.ConfigStd.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func queryOptionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return &value, nil
}

func requirePrincipal(ctx context.Context) error {
	if _, ok := principalFromContext(ctx); !ok {
		return fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return nil
}
