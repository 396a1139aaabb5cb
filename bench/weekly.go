package bench

import (
	"fmt"
	"slices"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
)

// PlayerLookup resolves a player id to its display data. A lookup must
// always succeed; unknown ids resolve to a renderable placeholder.
type PlayerLookup interface {
	Lookup(id string) model.Player
}

// BuildWeeklyResults turns one week's matchup entries into a
// WeeklyBenchResult per roster. Entries are the platform's per-roster
// matchup records, rosters supply owner ids and IR reserve lists, and
// teamNames maps roster ids to display names. An empty entries slice
// (bye week, future week) yields an empty result list.
func BuildWeeklyResults(week int, entries []model.MatchupEntry, rosters []model.Roster, teamNames map[int]string, lookup PlayerLookup, now time.Time) []model.WeeklyBenchResult {
	if len(entries) == 0 {
		return nil
	}

	reserveByRoster := make(map[int][]string, len(rosters))
	ownerByRoster := make(map[int]string, len(rosters))
	for _, r := range rosters {
		reserveByRoster[r.RosterID] = r.Reserve
		ownerByRoster[r.RosterID] = r.OwnerID
	}

	results := make([]model.WeeklyBenchResult, 0, len(entries))
	for _, e := range entries {
		if e.RosterID == 0 {
			continue
		}

		benchIDs := Identify(e.Players, e.Starters, reserveByRoster[e.RosterID])

		ownerID := ownerByRoster[e.RosterID]
		if ownerID == "" {
			ownerID = fmt.Sprintf("owner_%d", e.RosterID)
		}

		teamName := teamNames[e.RosterID]
		if teamName == "" {
			teamName = fmt.Sprintf("Team_%d", e.RosterID)
		}

		players := make([]model.BenchPlayer, 0, len(benchIDs))
		total := 0.0
		for _, id := range benchIDs {
			pts := pointsFor(id, e.PlayerPoints)
			total += pts

			info := lookup.Lookup(id)
			players = append(players, model.BenchPlayer{
				PlayerID:   id,
				PlayerName: info.FullName(),
				Position:   info.Position,
				Team:       info.Team,
				Points:     pts,
				Week:       week,
				RosterID:   e.RosterID,
				OwnerID:    ownerID,
			})
		}

		// Highest scorers first; player id breaks ties so the order is
		// stable across runs.
		slices.SortFunc(players, func(a, b model.BenchPlayer) int {
			if a.Points != b.Points {
				if a.Points > b.Points {
					return -1
				}
				return 1
			}
			return cmpString(a.PlayerID, b.PlayerID)
		})

		results = append(results, model.WeeklyBenchResult{
			Week:             week,
			RosterID:         e.RosterID,
			OwnerID:          ownerID,
			TeamName:         teamName,
			BenchPlayers:     players,
			TotalBenchPoints: round2(total),
			BenchPlayerCount: len(players),
			Recorded:         now,
		})
	}

	slices.SortFunc(results, func(a, b model.WeeklyBenchResult) int {
		return a.RosterID - b.RosterID
	})

	return results
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
