package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/league"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/player"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/schedule"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/score"
	"github.com/riskibarqy/fantasy-basketball/internal/domain/trade"
	"github.com/riskibarqy/fantasy-basketball/internal/platform/id"
)

type positionKey struct {
	leagueID string
	teamID   string
	playerID string
	zone     lineup.Zone
}

type storedPosition struct {
	seq  int64
	item lineup.Position
}

type scoreKey struct {
	leagueID   string
	teamID     string
	weekNumber int
}

type leagueRecord struct {
	league     league.League
	seasonID   string
	seasonYear int
}

type teamRecord struct {
	id       string
	leagueID string
	name     string
	userID   *string
	wins     int
	losses   int
}

type catalogPlayer struct {
	id          string
	name        string
	team        string
	position    string
	avatar      string
	nbaPlayerID int64
}

type rosterRecord struct {
	playerID string
	teamID   string
}

// Store is the shared in-process gateway state. Repositories are views over a
// single Store so writes from one are visible to the others.
type Store struct {
	mu  sync.RWMutex
	ids id.Generator
	now func() time.Time
	seq int64

	positions map[positionKey]storedPosition
	weekly    map[lineup.WeekKey]lineup.WeeklyLineup

	leagues     map[string]leagueRecord
	inviteCodes map[string]string
	teams       map[string]teamRecord
	catalog     map[string]catalogPlayer
	roster      []rosterRecord
	weeks       []schedule.FantasyWeek
	matchups    []schedule.WeeklyMatchup
	scores      map[scoreKey]score.WeeklyTeamScore
	trades      []trade.PendingTrade
	nbaPlayers  map[int64]player.Player

	created []league.Created
}

type Option func(*Store)

func WithIDGenerator(ids id.Generator) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore builds a store with the given seed applied.
func NewStore(seed Seed, opts ...Option) (*Store, error) {
	s := &Store{
		ids:         id.NewUUIDGenerator(),
		now:         time.Now,
		positions:   make(map[positionKey]storedPosition),
		weekly:      make(map[lineup.WeekKey]lineup.WeeklyLineup),
		leagues:     make(map[string]leagueRecord),
		inviteCodes: make(map[string]string),
		teams:       make(map[string]teamRecord),
		catalog:     make(map[string]catalogPlayer),
		scores:      make(map[scoreKey]score.WeeklyTeamScore),
		nbaPlayers:  make(map[int64]player.Player),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.apply(seed); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}
	return s, nil
}

// NewSeededStore builds a store from the embedded fixture dataset.
func NewSeededStore(opts ...Option) (*Store, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return NewStore(seed, opts...)
}

// Created returns every league written through the league repository.
func (s *Store) Created() []league.Created {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]league.Created(nil), s.created...)
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Store) matchupTeam(teamID string) schedule.MatchupTeam {
	team, ok := s.teams[teamID]
	if !ok {
		return schedule.MatchupTeam{ID: teamID}
	}
	return schedule.MatchupTeam{
		ID:       team.id,
		TeamName: team.name,
		UserID:   cloneString(team.userID),
		Wins:     team.wins,
		Losses:   team.losses,
	}
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
