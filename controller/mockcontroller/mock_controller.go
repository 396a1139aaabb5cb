package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) SyncWeek(ctx context.Context, week int) error {
	args := c.Called(ctx, week)
	return args.Error(0)
}

func (c *C) SyncSeason(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GetStandings(ctx context.Context) ([]model.SeasonStandings, error) {
	args := c.Called(ctx)

	var res []model.SeasonStandings
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SeasonStandings)
	}

	return res, args.Error(1)
}

func (c *C) GetTeamStandings(ctx context.Context, rosterID int) (*model.SeasonStandings, error) {
	args := c.Called(ctx, rosterID)

	var res *model.SeasonStandings
	if args.Get(0) != nil {
		res = args.Get(0).(*model.SeasonStandings)
	}

	return res, args.Error(1)
}

func (c *C) GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error) {
	args := c.Called(ctx, week)

	var res []model.WeeklyBenchResult
	if args.Get(0) != nil {
		res = args.Get(0).([]model.WeeklyBenchResult)
	}

	return res, args.Error(1)
}

func (c *C) GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error) {
	args := c.Called(ctx, week)

	var res []model.BenchMatchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.BenchMatchup)
	}

	return res, args.Error(1)
}

func (c *C) GetAnalytics(ctx context.Context) (*model.LeagueAnalytics, error) {
	args := c.Called(ctx)

	var res *model.LeagueAnalytics
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LeagueAnalytics)
	}

	return res, args.Error(1)
}

func (c *C) GetTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) ExportDashboard(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}
