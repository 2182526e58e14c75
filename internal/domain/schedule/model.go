package schedule

import "time"

type MatchupStatus string

const (
	MatchupStatusScheduled MatchupStatus = "scheduled"
	MatchupStatusLive      MatchupStatus = "live"
	MatchupStatusCompleted MatchupStatus = "completed"
)

type SeasonType string

const (
	SeasonTypeRegular      SeasonType = "regular"
	SeasonTypePlayoff      SeasonType = "playoff"
	SeasonTypeChampionship SeasonType = "championship"
)

type SeasonPhase string

const (
	PhasePreseason     SeasonPhase = "preseason"
	PhaseRegularSeason SeasonPhase = "regular_season"
	PhasePlayoffs      SeasonPhase = "playoffs"
	PhaseOffseason     SeasonPhase = "offseason"
)

// FantasyWeek is a read-only scoring period. StartDate and EndDate are
// calendar dates; the range is inclusive on both ends.
type FantasyWeek struct {
	ID              string
	SeasonYear      int
	WeekNumber      int
	WeekName        string
	StartDate       time.Time
	EndDate         time.Time
	IsRegularSeason bool
	IsPlayoffWeek   bool
	PlayoffRound    *int
	IsActive        bool
}

// Contains reports whether day falls within the week, compared by date.
func (w FantasyWeek) Contains(day time.Time) bool {
	d := dateOf(day)
	return !d.Before(dateOf(w.StartDate)) && !d.After(dateOf(w.EndDate))
}

func (w FantasyWeek) Phase() SeasonPhase {
	switch {
	case w.WeekNumber == 0:
		return PhasePreseason
	case w.IsPlayoffWeek:
		return PhasePlayoffs
	case w.IsRegularSeason:
		return PhaseRegularSeason
	default:
		return PhaseOffseason
	}
}

type MatchupTeam struct {
	ID       string
	TeamName string
	UserID   *string
	Wins     int
	Losses   int
}

type WeeklyMatchup struct {
	ID          string
	LeagueID    string
	WeekNumber  int
	MatchupDate time.Time
	Status      MatchupStatus
	SeasonType  SeasonType
	Team1ID     string
	Team2ID     string
	Team1Score  *float64
	Team2Score  *float64
	Team1       MatchupTeam
	Team2       MatchupTeam
}

// MatchupFilter selects a league's matchups, optionally for a single week.
type MatchupFilter struct {
	LeagueID   string
	WeekNumber *int
}

// FindWeekContaining scans weeks in order and returns the first one whose
// range contains day.
func FindWeekContaining(weeks []FantasyWeek, day time.Time) (FantasyWeek, bool) {
	for _, week := range weeks {
		if week.Contains(day) {
			return week, true
		}
	}
	return FantasyWeek{}, false
}

// ResolvePhase finds the week for day and its season phase. Between weeks the
// most recently completed week is used; outside the season no week is returned.
// weeks must be ordered by week number.
func ResolvePhase(weeks []FantasyWeek, day time.Time) (*FantasyWeek, SeasonPhase) {
	if len(weeks) == 0 {
		return nil, PhaseOffseason
	}

	if week, ok := FindWeekContaining(weeks, day); ok {
		return &week, week.Phase()
	}

	d := dateOf(day)
	if d.Before(dateOf(weeks[0].StartDate)) || d.After(dateOf(weeks[len(weeks)-1].EndDate)) {
		return nil, PhaseOffseason
	}

	for i := len(weeks) - 1; i >= 0; i-- {
		if d.After(dateOf(weeks[i].EndDate)) {
			week := weeks[i]
			return &week, week.Phase()
		}
	}

	return nil, PhaseOffseason
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
