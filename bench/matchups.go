package bench

import (
	"slices"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
)

// PairMatchups groups a week's results into head-to-head bench
// matchups using the matchup ids from the platform's entries. A roster
// on a schedule bye (no matchup id) produces no matchup, and a pairing
// with a missing weekly result on either side is skipped rather than
// scored on partial data.
//
// An exact points tie is recorded with no winner and a zero margin.
func PairMatchups(results []model.WeeklyBenchResult, entries []model.MatchupEntry, now time.Time) []model.BenchMatchup {
	resultByRoster := make(map[int]model.WeeklyBenchResult, len(results))
	for _, r := range results {
		resultByRoster[r.RosterID] = r
	}

	pairings := make(map[int][]int)
	for _, e := range entries {
		if e.MatchupID == 0 || e.RosterID == 0 {
			continue
		}
		pairings[e.MatchupID] = append(pairings[e.MatchupID], e.RosterID)
	}

	ids := make([]int, 0, len(pairings))
	for id := range pairings {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	matchups := make([]model.BenchMatchup, 0, len(ids))
	for _, matchupID := range ids {
		rosterIDs := pairings[matchupID]
		if len(rosterIDs) != 2 {
			continue
		}

		r1, ok1 := resultByRoster[rosterIDs[0]]
		r2, ok2 := resultByRoster[rosterIDs[1]]
		if !ok1 || !ok2 {
			continue
		}

		m := model.BenchMatchup{
			Week:          r1.Week,
			MatchupID:     matchupID,
			Team1RosterID: r1.RosterID,
			Team1Name:     r1.TeamName,
			Team1Points:   r1.TotalBenchPoints,
			Team2RosterID: r2.RosterID,
			Team2Name:     r2.TeamName,
			Team2Points:   r2.TotalBenchPoints,
			Recorded:      now,
		}

		switch {
		case r1.TotalBenchPoints > r2.TotalBenchPoints:
			m.WinnerRosterID = r1.RosterID
			m.MarginOfVictory = round2(r1.TotalBenchPoints - r2.TotalBenchPoints)
		case r2.TotalBenchPoints > r1.TotalBenchPoints:
			m.WinnerRosterID = r2.RosterID
			m.MarginOfVictory = round2(r2.TotalBenchPoints - r1.TotalBenchPoints)
		}

		matchups = append(matchups, m)
	}

	return matchups
}
