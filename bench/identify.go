// Package bench implements the bench scoring pipeline: identifying
// bench players, aggregating weekly results, pairing head-to-head
// matchups, and folding a season into standings and league analytics.
// Everything in this package is a pure function over data already in
// memory; no network or file I/O happens here.
package bench

import (
	"math"
	"slices"
)

// Identify returns the ids of the rostered players who were neither in
// the starting lineup nor on the IR reserve list. A starter or reserve
// id that is not on the roster is a known upstream anomaly (a player
// dropped mid-week) and is ignored rather than treated as an error.
// The result is sorted so that repeated runs serialize identically.
func Identify(players, starters, reserve []string) []string {
	if len(players) == 0 {
		return nil
	}

	exclude := make(map[string]bool, len(starters)+len(reserve))
	for _, id := range starters {
		exclude[id] = true
	}
	for _, id := range reserve {
		exclude[id] = true
	}

	bench := make([]string, 0, len(players))
	seen := make(map[string]bool, len(players))
	for _, id := range players {
		// Sleeper pads empty lineup slots with "0"
		if id == "" || id == "0" {
			continue
		}
		if !exclude[id] && !seen[id] {
			bench = append(bench, id)
			seen[id] = true
		}
	}

	slices.Sort(bench)
	return bench
}

// pointsFor looks up a bench player's score for the week. Ids missing
// from the points map are players who did not play (bye, injury) and
// score 0.0.
func pointsFor(id string, points map[string]float64) float64 {
	return points[id]
}

// round2 rounds to 2 decimal places, the precision used for all point
// totals in the persisted artifacts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to 3 decimal places, used for win percentages.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
