package score

// WeeklyTeamScore is the computed score breakdown for a team's week.
type WeeklyTeamScore struct {
	TotalScore    float64
	StartersScore float64
	RotationScore float64
	BenchScore    float64
	PlayerCount   int
}

// MatchupScore pairs a matchup with both teams' computed weekly scores.
type MatchupScore struct {
	MatchupID  string
	WeekNumber int
	Team1ID    string
	Team2ID    string
	Team1Score *WeeklyTeamScore
	Team2Score *WeeklyTeamScore
}

// Leader returns the id of the team ahead, or empty on a tie or missing scores.
func (m MatchupScore) Leader() string {
	if m.Team1Score == nil || m.Team2Score == nil {
		return ""
	}
	switch {
	case m.Team1Score.TotalScore > m.Team2Score.TotalScore:
		return m.Team1ID
	case m.Team2Score.TotalScore > m.Team1Score.TotalScore:
		return m.Team2ID
	default:
		return ""
	}
}
