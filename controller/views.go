package controller

import (
	"context"

	"github.com/Tom-Gray/beerLeague/bench"
	"github.com/Tom-Gray/beerLeague/model"
)

// Standings and analytics are always recomputed from the stored weekly
// records rather than maintained incrementally, so a re-synced week can
// never leave them out of date.

func (c *controller) GetStandings(ctx context.Context) ([]model.SeasonStandings, error) {
	results, matchups, err := c.seasonData(ctx)
	if err != nil {
		return nil, err
	}
	return bench.ComputeStandings(results, matchups), nil
}

func (c *controller) GetTeamStandings(ctx context.Context, rosterID int) (*model.SeasonStandings, error) {
	standings, err := c.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	for i := range standings {
		if standings[i].RosterID == rosterID {
			return &standings[i], nil
		}
	}

	// A team with no synced weeks yet is still a valid team.
	team, err := c.db.GetTeam(ctx, rosterID)
	if err != nil {
		return nil, err
	}
	return &model.SeasonStandings{
		RosterID: team.RosterID,
		OwnerID:  team.OwnerID,
		TeamName: team.TeamName,
	}, nil
}

func (c *controller) GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error) {
	if week == 0 {
		return c.db.GetAllWeeklyResults(ctx)
	}
	return c.db.GetWeeklyResults(ctx, week)
}

func (c *controller) GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error) {
	if week == 0 {
		return c.db.GetAllMatchups(ctx)
	}
	return c.db.GetMatchups(ctx, week)
}

func (c *controller) GetAnalytics(ctx context.Context) (*model.LeagueAnalytics, error) {
	results, matchups, err := c.seasonData(ctx)
	if err != nil {
		return nil, err
	}
	standings := bench.ComputeStandings(results, matchups)
	return bench.ComputeAnalytics(results, matchups, standings), nil
}

func (c *controller) GetTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.GetTeams(ctx)
}

func (c *controller) seasonData(ctx context.Context) ([]model.WeeklyBenchResult, []model.BenchMatchup, error) {
	results, err := c.db.GetAllWeeklyResults(ctx)
	if err != nil {
		return nil, nil, err
	}
	matchups, err := c.db.GetAllMatchups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return results, matchups, nil
}
