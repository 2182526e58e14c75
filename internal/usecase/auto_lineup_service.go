package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

// AutoLineupService delegates lineup assignment to the remote function. It
// makes a single attempt; the caller decides whether to retry.
type AutoLineupService struct {
	assigner lineup.Assigner
}

func NewAutoLineupService(assigner lineup.Assigner) *AutoLineupService {
	return &AutoLineupService{assigner: assigner}
}

func (s *AutoLineupService) Run(ctx context.Context, req lineup.AutoAssignRequest) (lineup.AutoAssignResult, error) {
	req.LeagueID = strings.TrimSpace(req.LeagueID)
	req.TeamID = strings.TrimSpace(req.TeamID)
	req.SeasonID = strings.TrimSpace(req.SeasonID)
	req.MatchupID = strings.TrimSpace(req.MatchupID)
	if err := req.Validate(); err != nil {
		return lineup.AutoAssignResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.assigner == nil {
		return lineup.AutoAssignResult{}, fmt.Errorf("%w: auto-lineup function is not configured", ErrDependencyUnavailable)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.AutoLineupService.Run",
		attribute.String("league_id", req.LeagueID),
		attribute.String("team_id", req.TeamID),
		attribute.Int("week_number", req.WeekNumber),
	)
	defer span.End()

	result, err := s.assigner.AutoAssign(ctx, req)
	if err != nil {
		recordSpanError(span, err)
		return lineup.AutoAssignResult{}, wrapGatewayError("auto-lineup", err)
	}
	return result, nil
}
