package httpapi

import "net/http"

func registerSystemRoutes(rt routes, handler *Handler, metricsHandler http.Handler) {
	rt.handleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		rt.mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerPublicRoutes(rt routes, handler *Handler) {
	rt.handleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/lineup-positions", handler.ListLineupPositions)
	rt.handleFunc("GET /v1/teams/{teamID}/weekly-lineups/{seasonYear}/{weekNumber}", handler.GetWeeklyLineup)
	rt.handleFunc("GET /v1/leagues/{leagueID}/current-week", handler.GetCurrentWeek)
	rt.handleFunc("GET /v1/leagues/{leagueID}/matchups", handler.ListMatchups)
	rt.handleFunc("GET /v1/leagues/{leagueID}/scoreboard/{weekNumber}", handler.GetScoreboard)
	rt.handleFunc("GET /v1/seasons/{seasonYear}/current-week", handler.GetCurrentFantasyWeek)
	rt.handleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/scores/{weekNumber}", handler.GetWeeklyTeamScore)
	rt.handleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/pending-trades", handler.ListPendingTrades)
	rt.handleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/pending-trades/count", handler.CountPendingTrades)
	rt.handleFunc("GET /v1/leagues/{leagueID}/players/{playerID}/roster-status", handler.GetPlayerRosterStatus)
}

func registerAuthorizedRoutes(rt routes, handler *Handler, verifier TokenVerifier) {
	authorized := func(pattern string, fn http.HandlerFunc) {
		rt.handle(pattern, RequireAuth(verifier, fn))
	}

	authorized("PUT /v1/leagues/{leagueID}/teams/{teamID}/lineup-positions", handler.UpsertLineupPosition)
	authorized("DELETE /v1/leagues/{leagueID}/teams/{teamID}/lineup-positions", handler.RemoveLineupPosition)
	authorized("DELETE /v1/leagues/{leagueID}/teams/{teamID}/lineup-positions/zones/{zone}", handler.ClearLineupZone)
	authorized("PUT /v1/teams/{teamID}/weekly-lineups/{seasonYear}/{weekNumber}", handler.SaveWeeklyLineup)
	authorized("POST /v1/teams/{teamID}/weekly-lineups/{seasonYear}/{weekNumber}/lock", handler.LockWeeklyLineup)
	authorized("POST /v1/teams/{teamID}/weekly-lineups/{seasonYear}/{weekNumber}/unlock", handler.UnlockWeeklyLineup)
	authorized("POST /v1/leagues/{leagueID}/teams/{teamID}/auto-lineup", handler.RunAutoLineup)
}

func registerEdgeRoutes(rt routes, edge *EdgeHandler, verifier TokenVerifier, serviceKey string) {
	rt.handleFunc("OPTIONS /functions/v1/{function}", edge.Preflight)
	rt.handle("POST /functions/v1/create-league", edgeCORS(requireAuth(verifier, writeEdgeError, http.HandlerFunc(edge.CreateLeague))))
	rt.handle("POST /functions/v1/sync-players", edgeCORS(RequireServiceKey(serviceKey, writeEdgeError, http.HandlerFunc(edge.SyncPlayers))))
}
