package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

func weekKeyFromPath(r *http.Request) (lineup.WeekKey, error) {
	seasonYear, err := pathInt(r, "seasonYear")
	if err != nil {
		return lineup.WeekKey{}, err
	}
	weekNumber, err := pathInt(r, "weekNumber")
	if err != nil {
		return lineup.WeekKey{}, err
	}
	return lineup.WeekKey{
		TeamID:     strings.TrimSpace(r.PathValue("teamID")),
		WeekNumber: weekNumber,
		SeasonYear: seasonYear,
	}, nil
}

// GetWeeklyLineup answers null data when nothing has been saved for the week.
func (h *Handler) GetWeeklyLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyLineup")
	defer span.End()

	key, err := weekKeyFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, exists, err := h.weekly.Read(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "get weekly lineup failed", "team_id", key.TeamID, "week_number", key.WeekNumber, "season_year", key.SeasonYear, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeklyLineupToDTO(item))
}

func (h *Handler) SaveWeeklyLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveWeeklyLineup")
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	key, err := weekKeyFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveWeeklyLineupRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toDomain()
	if err := h.weekly.Save(ctx, key, item); err != nil {
		h.logger.WarnContext(ctx, "save weekly lineup failed", "team_id", key.TeamID, "week_number", key.WeekNumber, "season_year", key.SeasonYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeklyLineupToDTO(item))
}

func (h *Handler) LockWeeklyLineup(w http.ResponseWriter, r *http.Request) {
	h.setWeeklyLock(w, r, "httpapi.Handler.LockWeeklyLineup", true)
}

func (h *Handler) UnlockWeeklyLineup(w http.ResponseWriter, r *http.Request) {
	h.setWeeklyLock(w, r, "httpapi.Handler.UnlockWeeklyLineup", false)
}

func (h *Handler) setWeeklyLock(w http.ResponseWriter, r *http.Request, spanName string, locked bool) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	if err := requirePrincipal(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	key, err := weekKeyFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if locked {
		err = h.weekly.Lock(ctx, key)
	} else {
		err = h.weekly.Unlock(ctx, key)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "set weekly lineup lock failed", "team_id", key.TeamID, "week_number", key.WeekNumber, "locked", locked, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"is_locked": locked})
}
