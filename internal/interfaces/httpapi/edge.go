package httpapi

import (
	"context"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

const (
	edgePathPrefix   = "/functions/v1/"
	edgeAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// EdgeHandler serves the function-style endpoints. Their contract differs from
// the REST envelope: success is plain JSON and every failure is a 500
// {error, details} body.
type EdgeHandler struct {
	leagues   *usecase.LeagueCreationService
	players   *usecase.PlayerSyncService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewEdgeHandler(leagues *usecase.LeagueCreationService, players *usecase.PlayerSyncService, logger *logging.Logger) *EdgeHandler {
	return &EdgeHandler{
		leagues:   leagues,
		players:   players,
		logger:    logging.OrDefault(logger).Named("edge"),
		validator: validator.New(),
	}
}

func isEdgePath(path string) bool {
	return strings.HasPrefix(path, edgePathPrefix)
}

func setEdgeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", edgeAllowHeaders)
}

func edgeCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setEdgeCORSHeaders(w)
		next.ServeHTTP(w, r)
	})
}

type edgeErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeEdgeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeEdgeJSON")
	defer span.End()

	setEdgeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeEdgeError always answers 500. details carries the error classification.
func writeEdgeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	writeEdgeJSON(ctx, w, http.StatusInternalServerError, edgeErrorBody{
		Error:   err.Error(),
		Details: mapped.Reason,
	})
}

func (h *EdgeHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.EdgeHandler.Preflight")
	defer span.End()

	setEdgeCORSHeaders(w)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type rosterSlotRequest struct {
	Position string `json:"position" validate:"required"`
	Count    int    `json:"count" validate:"min=0"`
}

type createLeagueRequest struct {
	Name                    string                    `json:"name" validate:"required"`
	Description             string                    `json:"description"`
	MaxTeams                int                       `json:"maxTeams" validate:"required,gt=0"`
	ScoringType             string                    `json:"scoringType" validate:"required"`
	TeamName                string                    `json:"teamName" validate:"required"`
	FantasyScoringFormat    string                    `json:"fantasyScoringFormat"`
	DraftType               string                    `json:"draftType" validate:"omitempty,oneof=snake linear"`
	DraftRounds             int                       `json:"draftRounds" validate:"min=0"`
	RosterPositions         []rosterSlotRequest       `json:"rosterPositions" validate:"dive"`
	DraftDate               *string                   `json:"draftDate"`
	TradeDeadline           *string                   `json:"tradeDeadline"`
	SalaryCapAmount         int64                     `json:"salaryCapAmount" validate:"min=0"`
	StartersCount           int                       `json:"startersCount" validate:"min=0"`
	StartersMultiplier      float64                   `json:"startersMultiplier" validate:"min=0"`
	RotationCount           int                       `json:"rotationCount" validate:"min=0"`
	RotationMultiplier      float64                   `json:"rotationMultiplier" validate:"min=0"`
	BenchCount              int                       `json:"benchCount" validate:"min=0"`
	BenchMultiplier         float64                   `json:"benchMultiplier" validate:"min=0"`
	PositionUnitAssignments map[string]map[string]int `json:"positionUnitAssignments"`
}

func (req createLeagueRequest) toDomain() league.CreateInput {
	positions := make([]league.RosterSlot, 0, len(req.RosterPositions))
	for _, slot := range req.RosterPositions {
		positions = append(positions, league.RosterSlot{Position: strings.TrimSpace(slot.Position), Count: slot.Count})
	}
	return league.CreateInput{
		Name:                    req.Name,
		Description:             req.Description,
		MaxTeams:                req.MaxTeams,
		ScoringType:             req.ScoringType,
		TeamName:                req.TeamName,
		FantasyScoringFormat:    req.FantasyScoringFormat,
		DraftType:               league.DraftType(req.DraftType),
		DraftRounds:             req.DraftRounds,
		RosterPositions:         positions,
		DraftDate:               req.DraftDate,
		TradeDeadline:           req.TradeDeadline,
		SalaryCapAmount:         req.SalaryCapAmount,
		StartersCount:           req.StartersCount,
		StartersMultiplier:      req.StartersMultiplier,
		RotationCount:           req.RotationCount,
		RotationMultiplier:      req.RotationMultiplier,
		BenchCount:              req.BenchCount,
		BenchMultiplier:         req.BenchMultiplier,
		PositionUnitAssignments: req.PositionUnitAssignments,
	}
}

type createLeagueResponse struct {
	Success    bool               `json:"success"`
	League     edgeLeagueDTO      `json:"league"`
	Season     edgeSeasonDTO      `json:"season"`
	Teams      []edgeTeamDTO      `json:"teams"`
	DraftPicks []edgeDraftPickDTO `json:"draftPicks"`
}

type edgeLeagueDTO struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	CommissionerID       string `json:"commissioner_id"`
	MaxTeams             int    `json:"max_teams"`
	InviteCode           string `json:"invite_code"`
	PublicLeague         bool   `json:"public_league"`
	LeagueType           string `json:"league_type"`
	ScoringType          string `json:"scoring_type"`
	FantasyScoringFormat string `json:"fantasy_scoring_format"`
	DraftType            string `json:"draft_type"`
	DraftRounds          int    `json:"draft_rounds"`
	SalaryCapEnabled     bool   `json:"salary_cap_enabled"`
	TradesEnabled        bool   `json:"trades_enabled"`
}

type edgeSeasonDTO struct {
	ID                      string                    `json:"id"`
	LeagueID                string                    `json:"league_id"`
	SeasonYear              int                       `json:"season_year"`
	IsActive                bool                      `json:"is_active"`
	SalaryCapAmount         int64                     `json:"salary_cap_amount"`
	RosterPositions         []league.RosterSlot       `json:"roster_positions"`
	StartersCount           int                       `json:"starters_count"`
	RotationCount           int                       `json:"rotation_count"`
	BenchCount              int                       `json:"bench_count"`
	StartersMultiplier      float64                   `json:"starters_multiplier"`
	RotationMultiplier      float64                   `json:"rotation_multiplier"`
	BenchMultiplier         float64                   `json:"bench_multiplier"`
	PositionUnitAssignments map[string]map[string]int `json:"position_unit_assignments"`
	PlayoffTeams            int                       `json:"playoff_teams"`
	PlayoffWeeks            int                       `json:"playoff_weeks"`
	DraftDate               *string                   `json:"draft_date"`
	TradeDeadline           *string                   `json:"trade_deadline"`
}

type edgeTeamDTO struct {
	ID             string  `json:"id"`
	LeagueID       string  `json:"league_id"`
	SeasonID       string  `json:"season_id"`
	UserID         *string `json:"user_id"`
	TeamName       string  `json:"team_name"`
	IsCommissioner bool    `json:"is_commissioner"`
}

type edgeDraftPickDTO struct {
	ID           string `json:"id"`
	PickNumber   int    `json:"pick_number"`
	Round        int    `json:"round"`
	TeamPosition int    `json:"team_position"`
	TeamID       string `json:"fantasy_team_id"`
}

func createdToResponse(created league.Created) createLeagueResponse {
	l := created.League
	s := created.Season

	teams := make([]edgeTeamDTO, 0, len(created.Teams))
	for _, t := range created.Teams {
		teams = append(teams, edgeTeamDTO{
			ID:             t.ID,
			LeagueID:       t.LeagueID,
			SeasonID:       t.SeasonID,
			UserID:         t.UserID,
			TeamName:       t.TeamName,
			IsCommissioner: t.IsCommissioner,
		})
	}
	picks := make([]edgeDraftPickDTO, 0, len(created.DraftPicks))
	for _, p := range created.DraftPicks {
		picks = append(picks, edgeDraftPickDTO{
			ID:           p.ID,
			PickNumber:   p.PickNumber,
			Round:        p.Round,
			TeamPosition: p.TeamPosition,
			TeamID:       p.TeamID,
		})
	}

	return createLeagueResponse{
		Success: true,
		League: edgeLeagueDTO{
			ID:                   l.ID,
			Name:                 l.Name,
			Description:          l.Description,
			CommissionerID:       l.CommissionerID,
			MaxTeams:             l.MaxTeams,
			InviteCode:           l.InviteCode,
			PublicLeague:         l.PublicLeague,
			LeagueType:           l.LeagueType,
			ScoringType:          l.ScoringType,
			FantasyScoringFormat: l.FantasyScoringFormat,
			DraftType:            string(l.DraftType),
			DraftRounds:          l.DraftRounds,
			SalaryCapEnabled:     l.SalaryCapEnabled,
			TradesEnabled:        l.TradesEnabled,
		},
		Season: edgeSeasonDTO{
			ID:                      s.ID,
			LeagueID:                s.LeagueID,
			SeasonYear:              s.SeasonYear,
			IsActive:                s.IsActive,
			SalaryCapAmount:         s.SalaryCapAmount,
			RosterPositions:         s.RosterPositions,
			StartersCount:           s.StartersCount,
			RotationCount:           s.RotationCount,
			BenchCount:              s.BenchCount,
			StartersMultiplier:      s.StartersMultiplier,
			RotationMultiplier:      s.RotationMultiplier,
			BenchMultiplier:         s.BenchMultiplier,
			PositionUnitAssignments: s.PositionUnitAssignments,
			PlayoffTeams:            s.PlayoffTeams,
			PlayoffWeeks:            s.PlayoffWeeks,
			DraftDate:               s.DraftDate,
			TradeDeadline:           s.TradeDeadline,
		},
		Teams:      teams,
		DraftPicks: picks,
	}
}

func (h *EdgeHandler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.EdgeHandler.CreateLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeEdgeError(ctx, w, requirePrincipal(ctx))
		return
	}

	var req createLeagueRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		writeEdgeError(ctx, w, err)
		return
	}
	if err := validateWith(ctx, h.validator, req); err != nil {
		writeEdgeError(ctx, w, err)
		return
	}

	created, err := h.leagues.Create(ctx, principal.UserID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", principal.UserID, "error", err)
		writeEdgeError(ctx, w, err)
		return
	}

	writeEdgeJSON(ctx, w, http.StatusOK, createdToResponse(created))
}

type syncPlayersRequest struct {
	Season string `json:"season"`
}

type syncPlayersResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Errors   int    `json:"errors"`
	Total    int    `json:"total"`
}

func (h *EdgeHandler) SyncPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.EdgeHandler.SyncPlayers")
	defer span.End()

	var req syncPlayersRequest
	if err := decodeJSONBody(r, &req, true); err != nil {
		writeEdgeError(ctx, w, err)
		return
	}
	season := strings.TrimSpace(req.Season)
	if season == "" {
		season = usecase.DefaultSyncSeason
	}

	result, err := h.players.Sync(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "sync players failed", "season", season, "error", err)
		writeEdgeError(ctx, w, err)
		return
	}

	writeEdgeJSON(ctx, w, http.StatusOK, syncPlayersResponse{
		Message:  "Player sync completed",
		Imported: result.Imported,
		Updated:  result.Updated,
		Errors:   result.Errors,
		Total:    result.Total,
	})
}
