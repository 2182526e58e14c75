package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/roster"
)

type RosterStatusService struct {
	repo roster.Repository
}

func NewRosterStatusService(repo roster.Repository) *RosterStatusService {
	return &RosterStatusService{repo: repo}
}

// PlayerStatus reports where a player is rostered in a league. Missing player
// or league ids yield the empty status without a gateway call.
func (s *RosterStatusService) PlayerStatus(ctx context.Context, playerID, leagueID, userTeamID string) (roster.PlayerStatus, error) {
	playerID = strings.TrimSpace(playerID)
	leagueID = strings.TrimSpace(leagueID)
	if playerID == "" || leagueID == "" {
		return roster.PlayerStatus{}, nil
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.RosterStatusService.PlayerStatus")
	defer span.End()

	spots, err := s.repo.ListPlayerSpots(ctx, playerID, leagueID)
	if err != nil {
		recordSpanError(span, err)
		return roster.PlayerStatus{}, wrapGatewayError("get player roster spots", err)
	}
	return roster.StatusFromSpots(spots, strings.TrimSpace(userTeamID)), nil
}
