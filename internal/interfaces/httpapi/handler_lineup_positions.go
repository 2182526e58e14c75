package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

func (h *Handler) ListLineupPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineupPositions")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	zone := r.URL.Query().Get("zone")

	items, err := h.positions.List(ctx, leagueID, teamID, zone)
	if err != nil {
		h.logger.WarnContext(ctx, "list lineup positions failed", "league_id", leagueID, "team_id", teamID, "zone", zone, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]lineupPositionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, positionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpsertLineupPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertLineupPosition")
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req upsertLineupPositionRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.positions.Upsert(ctx, usecase.UpsertPositionInput{
		LeagueID: leagueID,
		TeamID:   teamID,
		PlayerID: req.PlayerID,
		Zone:     req.Zone,
		X:        *req.PositionX,
		Y:        *req.PositionY,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert lineup position failed", "league_id", leagueID, "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"updated": true})
}

// RemoveLineupPosition reads player_id and zone from the query string.
func (h *Handler) RemoveLineupPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveLineupPosition")
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	query := r.URL.Query()
	playerID := strings.TrimSpace(query.Get("player_id"))
	zone := query.Get("zone")

	if err := h.positions.Remove(ctx, leagueID, teamID, playerID, zone); err != nil {
		h.logger.WarnContext(ctx, "remove lineup position failed", "league_id", leagueID, "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"removed": true})
}

func (h *Handler) ClearLineupZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearLineupZone")
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	zone := r.PathValue("zone")

	if err := h.positions.Clear(ctx, leagueID, teamID, zone); err != nil {
		h.logger.WarnContext(ctx, "clear lineup zone failed", "league_id", leagueID, "team_id", teamID, "zone", zone, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"cleared": true})
}
