package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

func (h *Handler) RunAutoLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoLineup")
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req autoLineupRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.autoLineup.Run(ctx, lineup.AutoAssignRequest{
		LeagueID:   leagueID,
		TeamID:     teamID,
		WeekNumber: *req.WeekNumber,
		SeasonYear: req.SeasonYear,
		SeasonID:   req.SeasonID,
		MatchupID:  req.MatchupID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "auto-lineup failed", "league_id", leagueID, "team_id", teamID, "week_number", *req.WeekNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, autoLineupDTO{
		Success:        result.Success,
		Message:        result.Message,
		LineupEntries:  result.LineupEntries,
		RemovedInvalid: result.RemovedInvalid,
	})
}
