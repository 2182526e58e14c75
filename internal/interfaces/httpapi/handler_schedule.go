package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

func (h *Handler) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentWeek")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	week, err := h.matchups.CurrentWeek(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current week failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentWeekDTO{LeagueID: leagueID, WeekNumber: week})
}

func (h *Handler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchups")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	week, err := queryOptionalInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchups.ListMatchups(ctx, leagueID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchups failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchupToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	week, err := pathInt(r, "weekNumber")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.scores.Scoreboard(ctx, leagueID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "league_id", leagueID, "week_number", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchupScoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchupScoreToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCurrentFantasyWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentFantasyWeek")
	defer span.End()

	seasonYear, err := pathInt(r, "seasonYear")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.matchups.CurrentFantasyWeek(ctx, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get current fantasy week failed", "season_year", seasonYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentFantasyWeekToDTO(current))
}

func (h *Handler) GetWeeklyTeamScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyTeamScore")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	week, err := pathInt(r, "weekNumber")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, exists, err := h.scores.WeeklyTeamScore(ctx, leagueID, teamID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get weekly team score failed", "league_id", leagueID, "team_id", teamID, "week_number", week, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, fmt.Errorf("%w: no score for team %s week %d", usecase.ErrNotFound, teamID, week))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeklyTeamScoreToDTO(item))
}
