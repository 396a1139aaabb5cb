package mockdb

import (
	"context"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveTeams(ctx context.Context, teams []model.Team) error {
	args := db.Called(ctx, teams)
	return args.Error(0)
}

func (db *DB) GetTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, rosterID int) (*model.Team, error) {
	args := db.Called(ctx, rosterID)

	var res *model.Team
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Team)
	}

	return res, args.Error(1)
}

func (db *DB) SaveWeeklyResults(ctx context.Context, week int, results []model.WeeklyBenchResult) error {
	args := db.Called(ctx, week, results)
	return args.Error(0)
}

func (db *DB) GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error) {
	args := db.Called(ctx, week)

	var res []model.WeeklyBenchResult
	if args.Get(0) != nil {
		res = args.Get(0).([]model.WeeklyBenchResult)
	}

	return res, args.Error(1)
}

func (db *DB) GetAllWeeklyResults(ctx context.Context) ([]model.WeeklyBenchResult, error) {
	args := db.Called(ctx)

	var res []model.WeeklyBenchResult
	if args.Get(0) != nil {
		res = args.Get(0).([]model.WeeklyBenchResult)
	}

	return res, args.Error(1)
}

func (db *DB) SaveMatchups(ctx context.Context, week int, matchups []model.BenchMatchup) error {
	args := db.Called(ctx, week, matchups)
	return args.Error(0)
}

func (db *DB) GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error) {
	args := db.Called(ctx, week)

	var res []model.BenchMatchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.BenchMatchup)
	}

	return res, args.Error(1)
}

func (db *DB) GetAllMatchups(ctx context.Context) ([]model.BenchMatchup, error) {
	args := db.Called(ctx)

	var res []model.BenchMatchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.BenchMatchup)
	}

	return res, args.Error(1)
}
