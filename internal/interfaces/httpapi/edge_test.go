package httpapi

import (
	"net/http"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestEdge_PreflightAnswersOK(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for _, fn := range []string{"create-league", "sync-players"} {
		rec := srv.do(t, http.MethodOptions, "/functions/v1/"+fn, "", map[string]string{"Origin": "https://anywhere.example.com"})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", rec.Body.String())
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestEdge_CreateLeagueRequiresBearerToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/functions/v1/create-league", `{"name":"New League","teamName":"Mine","maxTeams":4,"scoringType":"points"}`, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body edgeErrorBody
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Error, "Authorization")
	require.Equal(t, "unauthorized", body.Details)
	require.Empty(t, srv.store.Created())
}

func TestEdge_CreateLeagueValidationUsesErrorContract(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/functions/v1/create-league", `{"name":"New League","maxTeams":4}`, authHeader())

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body edgeErrorBody
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalidInput", body.Details)
	require.Empty(t, srv.store.Created())
}

func TestEdge_CreateLeague(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/functions/v1/create-league",
		`{"name":"New League","teamName":"Ava Ballers","maxTeams":4,"scoringType":"points","draftRounds":2}`, authHeader())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body createLeagueResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "user-ava", body.League.CommissionerID)
	require.Equal(t, "FanDuel", body.League.FantasyScoringFormat)
	require.Equal(t, "snake", body.League.DraftType)
	require.Len(t, body.League.InviteCode, 6)
	require.Equal(t, 2, body.Season.PlayoffTeams)
	require.Len(t, body.Teams, 4)
	require.Equal(t, "Ava Ballers", body.Teams[0].TeamName)
	require.True(t, body.Teams[0].IsCommissioner)
	require.Equal(t, "Team 4", body.Teams[3].TeamName)
	require.Len(t, body.DraftPicks, 8)

	// Snake order: round two starts with the last team.
	byPick := make(map[int]string, len(body.DraftPicks))
	for _, pick := range body.DraftPicks {
		byPick[pick.PickNumber] = pick.TeamID
	}
	require.Equal(t, body.Teams[0].ID, byPick[1])
	require.Equal(t, body.Teams[3].ID, byPick[4])
	require.Equal(t, body.Teams[3].ID, byPick[5])
	require.Equal(t, body.Teams[0].ID, byPick[8])
	require.Len(t, srv.store.Created(), 1)
}

func TestEdge_SyncPlayersRequiresServiceKey(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/functions/v1/sync-players", "", authHeader())

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body edgeErrorBody
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "unauthorized", body.Details)
}

func TestEdge_SyncPlayers(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodPost, "/functions/v1/sync-players", `{"season":"2024-25"}`, map[string]string{"apikey": testServiceKey})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body syncPlayersResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, syncPlayersResponse{Message: "Player sync completed", Imported: 2, Total: 2}, body)

	_, ok := srv.players.Player(2544)
	require.True(t, ok)

	// A second run updates what the first imported.
	rec = srv.do(t, http.MethodPost, "/functions/v1/sync-players", "", map[string]string{"Authorization": "Bearer " + testServiceKey})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Updated)
	require.Equal(t, 0, body.Imported)
}
