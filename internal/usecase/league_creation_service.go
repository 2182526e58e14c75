package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/id"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

const maxInviteCodeAttempts = 10

// LeagueCreationService writes a new league with its season, teams, roster
// spots and draft order.
type LeagueCreationService struct {
	repo   league.Repository
	codes  id.CodeGenerator
	logger *logging.Logger
}

func NewLeagueCreationService(repo league.Repository, codes id.CodeGenerator, logger *logging.Logger) *LeagueCreationService {
	if codes == nil {
		codes = id.NewInviteCodeGenerator()
	}
	return &LeagueCreationService{
		repo:   repo,
		codes:  codes,
		logger: logging.OrDefault(logger),
	}
}

// Create draws invite codes until one is free, regenerating when the code is
// taken or the insert hits a uniqueness conflict. After maxInviteCodeAttempts
// it fails with ErrUniquenessExhausted.
func (s *LeagueCreationService) Create(ctx context.Context, commissionerID string, input league.CreateInput) (league.Created, error) {
	commissionerID = strings.TrimSpace(commissionerID)
	if commissionerID == "" {
		return league.Created{}, fmt.Errorf("%w: commissioner is required", ErrUnauthorized)
	}
	if err := input.Validate(); err != nil {
		return league.Created{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueCreationService.Create")
	defer span.End()

	for attempt := 1; attempt <= maxInviteCodeAttempts; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			recordSpanError(span, err)
			return league.Created{}, fmt.Errorf("generate invite code: %w", err)
		}

		taken, err := s.repo.InviteCodeExists(ctx, code)
		if err != nil {
			recordSpanError(span, err)
			return league.Created{}, wrapGatewayError("check invite code", err)
		}
		if taken {
			s.logger.DebugContext(ctx, "invite code collision", "attempt", attempt)
			continue
		}

		created, err := s.repo.Create(ctx, league.NewBlueprint(input, commissionerID, code))
		if errors.Is(err, league.ErrDuplicateInviteCode) {
			s.logger.DebugContext(ctx, "invite code conflict on insert", "attempt", attempt)
			continue
		}
		if err != nil {
			recordSpanError(span, err)
			return league.Created{}, wrapGatewayError("create league", err)
		}

		s.logger.InfoContext(ctx, "league created",
			"league_id", created.League.ID,
			"teams", len(created.Teams),
			"draft_picks", len(created.DraftPicks),
		)
		return created, nil
	}

	err := fmt.Errorf("%w: no free invite code after %d attempts", ErrUniquenessExhausted, maxInviteCodeAttempts)
	recordSpanError(span, err)
	return league.Created{}, err
}
