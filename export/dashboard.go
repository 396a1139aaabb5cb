package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Tom-Gray/beerLeague/bench"
	"github.com/Tom-Gray/beerLeague/model"
)

// The dashboard is a static site that reads these files directly, so
// the names are part of its contract.
const (
	standingsFile     = "standings.json"
	matchupsFile      = "matchups.json"
	analyticsFile     = "analytics.json"
	teamsFile         = "teams.json"
	weeklyResultsFile = "weekly-results.json"
)

// WriteDashboard renders the full set of dashboard JSON files from the
// season's data.
func (s *Store) WriteDashboard(results []model.WeeklyBenchResult, matchups []model.BenchMatchup, standings []model.SeasonStandings) error {
	analytics := bench.ComputeAnalytics(results, matchups, standings)

	files := map[string]any{
		standingsFile:     StandingViews(standings),
		matchupsFile:      MatchupViews(matchups, results),
		analyticsFile:     NewAnalyticsView(analytics),
		teamsFile:         TeamRefs(results),
		weeklyResultsFile: WeeklyResultViews(results),
	}

	for name, data := range files {
		if err := s.writeJSON(name, data); err != nil {
			return err
		}
		log.Printf("exported %s", s.path(name))
	}
	return nil
}

func (s *Store) writeJSON(filename string, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filename, err)
	}
	if err := os.WriteFile(s.path(filename), b, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}
