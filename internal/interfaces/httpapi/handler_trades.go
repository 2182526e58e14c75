package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListPendingTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingTrades")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	items, err := h.trades.ListPending(ctx, teamID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list pending trades failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pendingTradeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, pendingTradeToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// CountPendingTrades never fails; gateway errors degrade to zero.
func (h *Handler) CountPendingTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountPendingTrades")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: h.trades.CountPending(ctx, teamID, leagueID)})
}

func (h *Handler) GetPlayerRosterStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRosterStatus")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	userTeamID := strings.TrimSpace(r.URL.Query().Get("userTeamId"))

	status, err := h.roster.PlayerStatus(ctx, playerID, leagueID, userTeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player roster status failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterStatusToDTO(status))
}
