package controller

import (
	"context"
	"sync"
	"time"

	"github.com/Tom-Gray/beerLeague/db"
	"github.com/Tom-Gray/beerLeague/export"
	"github.com/Tom-Gray/beerLeague/model"
	"github.com/Tom-Gray/beerLeague/players"
	"github.com/Tom-Gray/beerLeague/sleeper"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// SyncWeek pulls one week's matchup data from Sleeper, scores every
	// bench, and replaces the stored results and matchups for the week.
	SyncWeek(ctx context.Context, week int) error
	// SyncSeason syncs every week from 1 through the current NFL week.
	// A week that fails to sync is logged and skipped so the rest of
	// the season still gets processed.
	SyncSeason(ctx context.Context) error
	RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	GetStandings(ctx context.Context) ([]model.SeasonStandings, error)
	GetTeamStandings(ctx context.Context, rosterID int) (*model.SeasonStandings, error)
	// GetWeeklyResults and GetMatchups return a single week's records,
	// or the full season when week is 0.
	GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error)
	GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error)
	GetAnalytics(ctx context.Context) (*model.LeagueAnalytics, error)
	GetTeams(ctx context.Context) ([]model.Team, error)

	// ExportDashboard writes the CSV snapshots and dashboard JSON files
	// from the currently stored season data.
	ExportDashboard(ctx context.Context) error
}

type controller struct {
	clock    clock.Clock
	sleeper  sleeper.Client
	db       db.DB
	players  *players.Cache
	store    *export.Store
	leagueID string
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB, players *players.Cache, store *export.Store, leagueID string) (C, error) {
	c := &controller{
		clock:    clock,
		sleeper:  sleeper,
		db:       db,
		players:  players,
		store:    store,
		leagueID: leagueID,
	}
	return c, nil
}
