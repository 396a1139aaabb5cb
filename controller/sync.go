package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Tom-Gray/beerLeague/bench"
	"github.com/Tom-Gray/beerLeague/model"
)

func (c *controller) SyncWeek(ctx context.Context, week int) error {
	start := time.Now()
	log.Printf("syncing week %d for league %s", week, c.leagueID)

	if c.players.Stale() {
		if err := c.players.Refresh(); err != nil {
			return fmt.Errorf("error refreshing players before sync: %w", err)
		}
	}

	rosters, err := c.sleeper.GetRosters(c.leagueID)
	if err != nil {
		return err
	}
	names, err := c.sleeper.GetLeagueUsers(c.leagueID)
	if err != nil {
		return err
	}

	teams, teamNames := buildTeams(rosters, names)
	if err := c.db.SaveTeams(ctx, teams); err != nil {
		return err
	}

	entries, err := c.sleeper.GetMatchups(c.leagueID, week)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Printf("week %d has no matchup data yet, nothing to sync", week)
		return nil
	}

	now := c.clock.Now().UTC()
	results := bench.BuildWeeklyResults(week, entries, rosters, teamNames, c.players, now)
	matchups := bench.PairMatchups(results, entries, now)

	if err := c.db.SaveWeeklyResults(ctx, week, results); err != nil {
		return err
	}
	if err := c.db.SaveMatchups(ctx, week, matchups); err != nil {
		return err
	}

	log.Printf("synced week %d: %d results, %d matchups, took %v",
		week, len(results), len(matchups), time.Since(start))
	return nil
}

func (c *controller) SyncSeason(ctx context.Context) error {
	state, err := c.sleeper.GetNFLState()
	if err != nil {
		return err
	}

	for week := 1; week <= state.Week; week++ {
		if err := c.SyncWeek(ctx, week); err != nil {
			// One bad week must not abort the rest of the season.
			log.Printf("error syncing week %d, continuing: %v", week, err)
		}
	}
	return nil
}

func (c *controller) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

			if err := c.syncCurrentWeek(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}

func (c *controller) syncCurrentWeek(ctx context.Context) error {
	state, err := c.sleeper.GetNFLState()
	if err != nil {
		return err
	}
	if err := c.SyncWeek(ctx, state.Week); err != nil {
		return err
	}
	return c.ExportDashboard(ctx)
}

// buildTeams joins rosters with the user display names. A roster whose
// owner has no user record keeps a synthetic name so it still shows up
// everywhere.
func buildTeams(rosters []model.Roster, names map[string]string) ([]model.Team, map[int]string) {
	teams := make([]model.Team, 0, len(rosters))
	teamNames := make(map[int]string, len(rosters))
	for _, r := range rosters {
		name, found := names[r.OwnerID]
		if !found || name == "" {
			name = fmt.Sprintf("Team_%d", r.RosterID)
		}
		teams = append(teams, model.Team{
			RosterID: r.RosterID,
			OwnerID:  r.OwnerID,
			TeamName: name,
		})
		teamNames[r.RosterID] = name
	}
	return teams, teamNames
}
