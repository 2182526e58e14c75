package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleWeeks() []FantasyWeek {
	round := 1
	return []FantasyWeek{
		{WeekNumber: 0, WeekName: "Preseason", StartDate: date(2024, 12, 25), EndDate: date(2024, 12, 31)},
		{WeekNumber: 1, WeekName: "Week 1", StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 7), IsRegularSeason: true},
		{WeekNumber: 2, WeekName: "Week 2", StartDate: date(2025, 1, 10), EndDate: date(2025, 1, 16), IsRegularSeason: true},
		{WeekNumber: 3, WeekName: "Playoffs", StartDate: date(2025, 1, 17), EndDate: date(2025, 1, 23), IsPlayoffWeek: true, PlayoffRound: &round},
	}
}

func TestFantasyWeek_ContainsIsInclusive(t *testing.T) {
	t.Parallel()

	week := FantasyWeek{StartDate: date(2024, 1, 8), EndDate: date(2024, 1, 14)}
	cases := []struct {
		day  time.Time
		want bool
	}{
		{day: date(2024, 1, 8), want: true},
		{day: time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC), want: true},
		{day: date(2024, 1, 15), want: false},
		{day: date(2024, 1, 7), want: false},
	}
	for _, tc := range cases {
		if got := week.Contains(tc.day); got != tc.want {
			t.Fatalf("Contains(%s)=%v, want %v", tc.day.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestResolvePhase(t *testing.T) {
	t.Parallel()

	weeks := sampleWeeks()
	cases := []struct {
		name      string
		day       time.Time
		wantWeek  int
		wantPhase SeasonPhase
		wantNil   bool
	}{
		{name: "preseason week", day: date(2024, 12, 28), wantWeek: 0, wantPhase: PhasePreseason},
		{name: "regular week", day: date(2025, 1, 3), wantWeek: 1, wantPhase: PhaseRegularSeason},
		{name: "gap uses last completed week", day: date(2025, 1, 8), wantWeek: 1, wantPhase: PhaseRegularSeason},
		{name: "playoff week", day: date(2025, 1, 20), wantWeek: 3, wantPhase: PhasePlayoffs},
		{name: "before season", day: date(2024, 11, 1), wantNil: true, wantPhase: PhaseOffseason},
		{name: "after season", day: date(2025, 3, 1), wantNil: true, wantPhase: PhaseOffseason},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			week, phase := ResolvePhase(weeks, tc.day)
			if phase != tc.wantPhase {
				t.Fatalf("unexpected phase: got=%s want=%s", phase, tc.wantPhase)
			}
			if tc.wantNil {
				if week != nil {
					t.Fatalf("expected no week, got %d", week.WeekNumber)
				}
				return
			}
			if week == nil || week.WeekNumber != tc.wantWeek {
				t.Fatalf("unexpected week: %+v", week)
			}
		})
	}
}

func TestResolvePhase_NoWeeks(t *testing.T) {
	t.Parallel()

	week, phase := ResolvePhase(nil, date(2025, 1, 1))
	if week != nil || phase != PhaseOffseason {
		t.Fatalf("expected offseason without week, got %+v %s", week, phase)
	}
}
