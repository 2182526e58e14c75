package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
)

type UpsertPositionInput struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Zone     string
	X        float64
	Y        float64
}

// LineupPositionService reads and writes board positions. Coordinates are
// stored as provided.
type LineupPositionService struct {
	repo lineup.PositionRepository
}

func NewLineupPositionService(repo lineup.PositionRepository) *LineupPositionService {
	return &LineupPositionService{repo: repo}
}

// List never reports absence as an error; an empty board yields an empty slice.
func (s *LineupPositionService) List(ctx context.Context, leagueID, teamID, zoneRaw string) ([]lineup.Position, error) {
	leagueID, teamID, err := requireLeagueTeam(leagueID, teamID)
	if err != nil {
		return nil, err
	}
	zone, err := lineup.ParseZone(zoneRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LineupPositionService.List",
		attribute.String("league_id", leagueID),
		attribute.String("team_id", teamID),
	)
	defer span.End()

	items, err := s.repo.ListPositions(ctx, leagueID, teamID, zone)
	if err != nil {
		recordSpanError(span, err)
		return nil, wrapGatewayError("get lineup positions", err)
	}
	if items == nil {
		items = []lineup.Position{}
	}
	return items, nil
}

// Upsert places a player, updating coordinates when (team, player, zone) exists.
func (s *LineupPositionService) Upsert(ctx context.Context, input UpsertPositionInput) error {
	leagueID, teamID, err := requireLeagueTeam(input.LeagueID, input.TeamID)
	if err != nil {
		return err
	}
	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	zone, err := requireZone(input.Zone)
	if err != nil {
		return err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LineupPositionService.Upsert")
	defer span.End()

	err = s.repo.UpsertPosition(ctx, lineup.PositionUpsert{
		LeagueID: leagueID,
		TeamID:   teamID,
		PlayerID: playerID,
		Zone:     zone,
		X:        input.X,
		Y:        input.Y,
	})
	if err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("upsert lineup position", err)
	}
	return nil
}

// Remove succeeds when the position is already absent.
func (s *LineupPositionService) Remove(ctx context.Context, leagueID, teamID, playerID, zoneRaw string) error {
	leagueID, teamID, err := requireLeagueTeam(leagueID, teamID)
	if err != nil {
		return err
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	zone, err := requireZone(zoneRaw)
	if err != nil {
		return err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LineupPositionService.Remove")
	defer span.End()

	if err := s.repo.RemovePosition(ctx, leagueID, teamID, playerID, zone); err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("remove lineup position", err)
	}
	return nil
}

func (s *LineupPositionService) Clear(ctx context.Context, leagueID, teamID, zoneRaw string) error {
	leagueID, teamID, err := requireLeagueTeam(leagueID, teamID)
	if err != nil {
		return err
	}
	zone, err := requireZone(zoneRaw)
	if err != nil {
		return err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LineupPositionService.Clear")
	defer span.End()

	if err := s.repo.ClearZone(ctx, leagueID, teamID, zone); err != nil {
		recordSpanError(span, err)
		return wrapGatewayError("clear lineup zone", err)
	}
	return nil
}

func requireLeagueTeam(leagueID, teamID string) (string, string, error) {
	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return "", "", fmt.Errorf("%w: league_id and team_id are required", ErrInvalidInput)
	}
	return leagueID, teamID, nil
}

func requireZone(raw string) (lineup.Zone, error) {
	zone, err := lineup.ParseZone(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if zone == "" {
		return "", fmt.Errorf("%w: zone is required", ErrInvalidInput)
	}
	return zone, nil
}
