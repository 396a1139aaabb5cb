package model

// Team identifies a fantasy roster in the league.
type Team struct {
	RosterID int
	TeamName string
	OwnerID  string
}

// SeasonStandings is the cumulative record for one team. It is a pure
// fold over the team's weekly results and matchups and is recomputed
// from scratch on every run, never mutated incrementally.
type SeasonStandings struct {
	RosterID          int
	OwnerID           string
	TeamName          string
	TotalWeeks        int
	Wins              int
	Losses            int
	Ties              int
	WinPercentage     float64
	TotalBenchPoints  float64
	AverageBenchPoint float64
	BestWeekPoints    float64
	BestWeekNumber    int
	WorstWeekPoints   float64
	WorstWeekNumber   int
	WeeklyResults     []WeeklyBenchResult
	MatchupHistory    []BenchMatchup
}

// WeeklyTrend aggregates one week of results across the whole league.
type WeeklyTrend struct {
	Week          int
	AveragePoints float64
	HighestScore  float64
	LowestScore   float64
	TotalPoints   float64
	TeamsPlayed   int
}

// LeagueStats are league-wide scalar aggregates over every weekly
// result. All fields are zero when no weeks have been processed.
type LeagueStats struct {
	TotalWeeks         int
	TotalTeams         int
	TotalMatchups      int
	AverageWeeklyPoint float64
	HighestWeeklyScore float64
	LowestWeeklyScore  float64
	TotalPointsScored  float64
}

// LeagueAnalytics is the full analytics view consumed by the
// dashboard. TeamPerformance embeds the standings list as-is.
type LeagueAnalytics struct {
	LeagueStats     LeagueStats
	WeeklyTrends    []WeeklyTrend
	TeamPerformance []SeasonStandings
}
