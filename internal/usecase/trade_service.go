package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

type TradeService struct {
	repo   trade.Repository
	logger *logging.Logger
}

func NewTradeService(repo trade.Repository, logger *logging.Logger) *TradeService {
	return &TradeService{
		repo:   repo,
		logger: logging.OrDefault(logger),
	}
}

func (s *TradeService) ListPending(ctx context.Context, teamID, leagueID string) ([]trade.PendingTrade, error) {
	teamID = strings.TrimSpace(teamID)
	leagueID = strings.TrimSpace(leagueID)
	if teamID == "" || leagueID == "" {
		return nil, fmt.Errorf("%w: team_id and league_id are required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ListPending")
	defer span.End()

	items, err := s.repo.ListPendingDraftTrades(ctx, teamID, leagueID)
	if err != nil {
		recordSpanError(span, err)
		return nil, wrapGatewayError("get pending draft trades", err)
	}
	if items == nil {
		items = []trade.PendingTrade{}
	}
	return items, nil
}

// CountPending degrades to 0 on any failure so badge counts never break a page.
func (s *TradeService) CountPending(ctx context.Context, teamID, leagueID string) int {
	if strings.TrimSpace(teamID) == "" {
		return 0
	}

	items, err := s.ListPending(ctx, teamID, leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "count pending trades failed",
			"team_id", teamID,
			"league_id", leagueID,
			"error", err,
		)
		return 0
	}
	return len(items)
}
