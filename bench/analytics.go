package bench

import (
	"slices"

	"github.com/Tom-Gray/beerLeague/model"
)

// ComputeAnalytics folds every weekly result into the league-wide
// analytics view. The standings are embedded as TeamPerformance
// without recomputation. Empty input produces zeroed stats and an
// empty trend list, never an error.
func ComputeAnalytics(results []model.WeeklyBenchResult, matchups []model.BenchMatchup, standings []model.SeasonStandings) *model.LeagueAnalytics {
	analytics := &model.LeagueAnalytics{
		LeagueStats: model.LeagueStats{
			TotalMatchups: len(matchups),
		},
		WeeklyTrends:    []model.WeeklyTrend{},
		TeamPerformance: standings,
	}
	if analytics.TeamPerformance == nil {
		analytics.TeamPerformance = []model.SeasonStandings{}
	}
	if len(results) == 0 {
		return analytics
	}

	teams := make(map[int]bool)
	byWeek := make(map[int][]model.WeeklyBenchResult)
	total, highest, lowest := 0.0, results[0].TotalBenchPoints, results[0].TotalBenchPoints
	for _, r := range results {
		teams[r.RosterID] = true
		byWeek[r.Week] = append(byWeek[r.Week], r)

		total += r.TotalBenchPoints
		highest = max(highest, r.TotalBenchPoints)
		lowest = min(lowest, r.TotalBenchPoints)
	}

	analytics.LeagueStats.TotalWeeks = len(byWeek)
	analytics.LeagueStats.TotalTeams = len(teams)
	analytics.LeagueStats.AverageWeeklyPoint = round2(total / float64(len(results)))
	analytics.LeagueStats.HighestWeeklyScore = round2(highest)
	analytics.LeagueStats.LowestWeeklyScore = round2(lowest)
	analytics.LeagueStats.TotalPointsScored = round2(total)

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	slices.Sort(weeks)

	for _, w := range weeks {
		analytics.WeeklyTrends = append(analytics.WeeklyTrends, weekTrend(w, byWeek[w]))
	}

	return analytics
}

func weekTrend(week int, results []model.WeeklyBenchResult) model.WeeklyTrend {
	total, highest, lowest := 0.0, results[0].TotalBenchPoints, results[0].TotalBenchPoints
	for _, r := range results {
		total += r.TotalBenchPoints
		highest = max(highest, r.TotalBenchPoints)
		lowest = min(lowest, r.TotalBenchPoints)
	}

	return model.WeeklyTrend{
		Week:          week,
		AveragePoints: round2(total / float64(len(results))),
		HighestScore:  round2(highest),
		LowestScore:   round2(lowest),
		TotalPoints:   round2(total),
		TeamsPlayed:   len(results),
	}
}
