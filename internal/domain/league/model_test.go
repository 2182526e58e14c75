package league

import "testing"

func TestBuildDraftOrder_Snake(t *testing.T) {
	t.Parallel()

	picks := BuildDraftOrder(3, 2, DraftTypeSnake)
	if len(picks) != 6 {
		t.Fatalf("unexpected pick count: %d", len(picks))
	}

	want := []struct{ round, position, pick int }{
		{1, 1, 1}, {1, 2, 2}, {1, 3, 3},
		{2, 1, 6}, {2, 2, 5}, {2, 3, 4},
	}
	for i, w := range want {
		got := picks[i]
		if got.Round != w.round || got.TeamPosition != w.position || got.PickNumber != w.pick {
			t.Fatalf("pick %d: got round=%d position=%d number=%d", i, got.Round, got.TeamPosition, got.PickNumber)
		}
	}
}

func TestBuildDraftOrder_Linear(t *testing.T) {
	t.Parallel()

	picks := BuildDraftOrder(2, 2, DraftTypeLinear)
	numbers := []int{picks[0].PickNumber, picks[1].PickNumber, picks[2].PickNumber, picks[3].PickNumber}
	if numbers[0] != 1 || numbers[1] != 2 || numbers[2] != 3 || numbers[3] != 4 {
		t.Fatalf("unexpected linear order: %v", numbers)
	}

	if got := BuildDraftOrder(0, 15, DraftTypeSnake); got != nil {
		t.Fatalf("expected no picks without teams, got %d", len(got))
	}
}

func TestNewBlueprint_Defaults(t *testing.T) {
	t.Parallel()

	bp := NewBlueprint(CreateInput{
		Name:        "Hardwood",
		MaxTeams:    4,
		ScoringType: "points",
		TeamName:    "Commish",
	}, "user-1", "ABC123")

	if bp.League.FantasyScoringFormat != DefaultScoringFormat || bp.League.DraftType != DraftTypeSnake || bp.League.DraftRounds != 15 {
		t.Fatalf("unexpected league defaults: %+v", bp.League)
	}
	if bp.Season.SeasonYear != 2025 || bp.Season.SalaryCapAmount != DefaultSalaryCap {
		t.Fatalf("unexpected season defaults: %+v", bp.Season)
	}
	if bp.Season.PlayoffTeams != 2 || bp.Season.PlayoffWeeks != 3 {
		t.Fatalf("unexpected playoff defaults: %+v", bp.Season)
	}
	if bp.Season.StartersMultiplier != 1.0 || bp.Season.RotationMultiplier != 0.75 || bp.Season.BenchMultiplier != 0.5 {
		t.Fatalf("unexpected multipliers: %+v", bp.Season)
	}
	if bp.Season.RosterSize() != 14 {
		t.Fatalf("unexpected roster size: %d", bp.Season.RosterSize())
	}

	if len(bp.Teams) != 4 {
		t.Fatalf("unexpected teams: %d", len(bp.Teams))
	}
	if !bp.Teams[0].IsCommissioner || bp.Teams[0].UserID == nil || *bp.Teams[0].UserID != "user-1" {
		t.Fatalf("first team must be the commissioner: %+v", bp.Teams[0])
	}
	if bp.Teams[1].TeamName != "Team 2" || bp.Teams[3].TeamName != "Team 4" || bp.Teams[3].UserID != nil {
		t.Fatalf("unexpected placeholder teams: %+v", bp.Teams)
	}

	if len(bp.DraftOrder) != 60 || bp.DraftState.TotalPicks != 60 || bp.DraftState.DraftStatus != "scheduled" {
		t.Fatalf("unexpected draft layout: picks=%d state=%+v", len(bp.DraftOrder), bp.DraftState)
	}
}

func TestCreateInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateInput{}).Validate(); err == nil {
		t.Fatalf("expected missing field error")
	}
	valid := CreateInput{Name: "L", TeamName: "T", MaxTeams: 2, ScoringType: "points"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valid.DraftType = "auction"
	if err := valid.Validate(); err == nil {
		t.Fatalf("expected invalid draft type error")
	}
}

func TestRosterSpotsFor_InjuredReserve(t *testing.T) {
	t.Parallel()

	season := Season{ID: "s1", RosterPositions: []RosterSlot{{Position: "G", Count: 2}, {Position: "IR", Count: 1}}}
	spots := RosterSpotsFor(season, "team-1")
	if len(spots) != 3 {
		t.Fatalf("unexpected spots: %d", len(spots))
	}
	if spots[0].IsInjuredReserve || !spots[2].IsInjuredReserve || spots[2].TeamID != "team-1" {
		t.Fatalf("unexpected spots: %+v", spots)
	}
}
