package db

import (
	"context"

	"github.com/Tom-Gray/beerLeague/model"
)

type DB interface {
	// SaveTeams upserts the league's teams keyed by roster id.
	SaveTeams(ctx context.Context, teams []model.Team) error
	GetTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, rosterID int) (*model.Team, error)

	// SaveWeeklyResults replaces all stored results for the week, bench
	// player rows included. Re-syncing a week is idempotent.
	SaveWeeklyResults(ctx context.Context, week int, results []model.WeeklyBenchResult) error
	GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error)
	GetAllWeeklyResults(ctx context.Context) ([]model.WeeklyBenchResult, error)

	// SaveMatchups replaces all stored matchups for the week.
	SaveMatchups(ctx context.Context, week int, matchups []model.BenchMatchup) error
	GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error)
	GetAllMatchups(ctx context.Context) ([]model.BenchMatchup, error)
}
