package bench

import (
	"slices"

	"github.com/Tom-Gray/beerLeague/model"
)

// ComputeStandings folds every weekly result and matchup into one
// SeasonStandings per roster seen in the weekly results. It is a pure
// function of its inputs: the same records always produce the same
// standings, and nothing is mutated incrementally between runs.
//
// Wins and losses come from matchup winners. A tied matchup counts
// toward neither, but still shows in the matchup history. The win
// percentage is wins over decided matchups, 0.0 when none have been
// decided.
func ComputeStandings(results []model.WeeklyBenchResult, matchups []model.BenchMatchup) []model.SeasonStandings {
	resultsByRoster := make(map[int][]model.WeeklyBenchResult)
	for _, r := range results {
		resultsByRoster[r.RosterID] = append(resultsByRoster[r.RosterID], r)
	}

	matchupsByRoster := make(map[int][]model.BenchMatchup)
	for _, m := range matchups {
		matchupsByRoster[m.Team1RosterID] = append(matchupsByRoster[m.Team1RosterID], m)
		matchupsByRoster[m.Team2RosterID] = append(matchupsByRoster[m.Team2RosterID], m)
	}

	rosterIDs := make([]int, 0, len(resultsByRoster))
	for id := range resultsByRoster {
		rosterIDs = append(rosterIDs, id)
	}
	slices.Sort(rosterIDs)

	standings := make([]model.SeasonStandings, 0, len(rosterIDs))
	for _, rosterID := range rosterIDs {
		standings = append(standings, computeTeamStandings(rosterID, resultsByRoster[rosterID], matchupsByRoster[rosterID]))
	}

	// Display ranking. The sort key is deliberately isolated so the
	// ranking policy is a one-line change.
	slices.SortFunc(standings, standingsRank)

	return standings
}

// standingsRank orders standings for display: total bench points
// descending, roster id ascending on ties. Win percentage is tracked
// but is not the ranking metric.
func standingsRank(a, b model.SeasonStandings) int {
	if a.TotalBenchPoints != b.TotalBenchPoints {
		if a.TotalBenchPoints > b.TotalBenchPoints {
			return -1
		}
		return 1
	}
	return a.RosterID - b.RosterID
}

func computeTeamStandings(rosterID int, results []model.WeeklyBenchResult, matchups []model.BenchMatchup) model.SeasonStandings {
	results = slices.Clone(results)
	slices.SortFunc(results, func(a, b model.WeeklyBenchResult) int {
		return a.Week - b.Week
	})

	matchups = slices.Clone(matchups)
	slices.SortFunc(matchups, func(a, b model.BenchMatchup) int {
		if a.Week != b.Week {
			return a.Week - b.Week
		}
		return a.MatchupID - b.MatchupID
	})

	s := model.SeasonStandings{
		RosterID:       rosterID,
		TotalWeeks:     len(results),
		WeeklyResults:  results,
		MatchupHistory: matchups,
	}

	if len(results) > 0 {
		s.OwnerID = results[0].OwnerID
		s.TeamName = results[0].TeamName
	}

	total := 0.0
	for i, r := range results {
		total += r.TotalBenchPoints

		// Strict comparisons keep the earliest week on ties.
		if i == 0 || r.TotalBenchPoints > s.BestWeekPoints {
			s.BestWeekPoints = r.TotalBenchPoints
			s.BestWeekNumber = r.Week
		}
		if i == 0 || r.TotalBenchPoints < s.WorstWeekPoints {
			s.WorstWeekPoints = r.TotalBenchPoints
			s.WorstWeekNumber = r.Week
		}
	}
	s.TotalBenchPoints = round2(total)
	if len(results) > 0 {
		s.AverageBenchPoint = round2(total / float64(len(results)))
	}

	for _, m := range matchups {
		switch {
		case m.IsTie():
			s.Ties++
		case m.WinnerRosterID == rosterID:
			s.Wins++
		default:
			s.Losses++
		}
	}

	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinPercentage = round3(float64(s.Wins) / float64(decided))
	}

	return s
}
