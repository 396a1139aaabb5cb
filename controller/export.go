package controller

import (
	"context"
	"log"

	"github.com/Tom-Gray/beerLeague/bench"
)

// The CSV snapshot names are stable so re-exports overwrite in place
// instead of piling up timestamped copies.
const (
	weeklyResultsCSV = "weekly_results.csv"
	matchupsCSV      = "weekly_matchups.csv"
	standingsCSV     = "season_standings.csv"
)

func (c *controller) ExportDashboard(ctx context.Context) error {
	results, matchups, err := c.seasonData(ctx)
	if err != nil {
		return err
	}
	standings := bench.ComputeStandings(results, matchups)

	if err := c.store.SaveWeeklyResults(results, weeklyResultsCSV); err != nil {
		return err
	}
	if err := c.store.SaveMatchups(matchups, matchupsCSV); err != nil {
		return err
	}
	if err := c.store.SaveStandings(standings, standingsCSV); err != nil {
		return err
	}
	if err := c.store.WriteDashboard(results, matchups, standings); err != nil {
		return err
	}

	log.Printf("exported %d results, %d matchups, %d standings", len(results), len(matchups), len(standings))
	return nil
}
