package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tom-Gray/beerLeague/db"
	"github.com/Tom-Gray/beerLeague/db/mockdb"
	"github.com/Tom-Gray/beerLeague/export"
	"github.com/Tom-Gray/beerLeague/model"
	"github.com/Tom-Gray/beerLeague/players"
	"github.com/Tom-Gray/beerLeague/sleeper"
	"github.com/Tom-Gray/beerLeague/sleeper/mocksleeper"
	"github.com/Tom-Gray/beerLeague/testutils"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

type testFixture struct {
	ctrl        C
	db          *mockdb.DB
	clock       *clock.Mock
	fakeSleeper *testutils.FakeSleeperServer
	dataDir     string
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	fakeSleeper := testutils.NewFakeSleeperServer()
	t.Cleanup(fakeSleeper.Close)

	mockClock := clock.NewMock()
	client := sleeper.NewForTest(fakeSleeper.URL())

	dataDir := t.TempDir()
	cache := players.NewCache(client, filepath.Join(dataDir, "players.json"), mockClock)
	if err := cache.Load(); err != nil {
		t.Fatalf("error loading player cache: %v", err)
	}

	store, err := export.NewStore(dataDir)
	if err != nil {
		t.Fatalf("error creating export store: %v", err)
	}

	mdb := &mockdb.DB{}
	ctrl, err := New(mockClock, client, mdb, cache, store, testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	return &testFixture{
		ctrl:        ctrl,
		db:          mdb,
		clock:       mockClock,
		fakeSleeper: fakeSleeper,
		dataDir:     dataDir,
	}
}

func TestSyncWeek(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	var savedTeams []model.Team
	var savedResults []model.WeeklyBenchResult
	var savedMatchups []model.BenchMatchup

	f.db.On("SaveTeams", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedTeams = args.Get(1).([]model.Team)
	}).Return(nil)
	f.db.On("SaveWeeklyResults", mock.Anything, 1, mock.Anything).Run(func(args mock.Arguments) {
		savedResults = args.Get(2).([]model.WeeklyBenchResult)
	}).Return(nil)
	f.db.On("SaveMatchups", mock.Anything, 1, mock.Anything).Run(func(args mock.Arguments) {
		savedMatchups = args.Get(2).([]model.BenchMatchup)
	}).Return(nil)

	if err := f.ctrl.SyncWeek(ctx, 1); err != nil {
		t.Fatalf("error syncing week: %v", err)
	}
	f.db.AssertExpectations(t)

	if len(savedTeams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(savedTeams))
	}
	if savedTeams[0].TeamName != "Hop Devils" {
		t.Errorf("expected custom team name, got %s", savedTeams[0].TeamName)
	}
	if savedTeams[1].TeamName != "mww" {
		t.Errorf("expected display name fallback, got %s", savedTeams[1].TeamName)
	}

	if len(savedResults) != 4 {
		t.Fatalf("expected 4 results, got %d", len(savedResults))
	}

	// Roster 1 started two players and has its third on IR, so its
	// bench is empty.
	r1 := savedResults[0]
	if r1.RosterID != 1 || r1.BenchPlayerCount != 0 || r1.TotalBenchPoints != 0.0 {
		t.Errorf("expected empty bench for roster 1, got %+v", r1)
	}

	r2 := savedResults[1]
	if r2.TotalBenchPoints != 7.7 || r2.BenchPlayerCount != 1 {
		t.Errorf("expected 7.7 from one bench player for roster 2, got %+v", r2)
	}
	if r2.BenchPlayers[0].PlayerName != "T.J. Hockenson" {
		t.Errorf("expected resolved player name, got %s", r2.BenchPlayers[0].PlayerName)
	}

	// Roster 4 benched a player Sleeper no longer lists.
	r4 := savedResults[3]
	if r4.BenchPlayers[0].PlayerName != "Player_1234" {
		t.Errorf("expected placeholder name, got %s", r4.BenchPlayers[0].PlayerName)
	}
	if r4.TotalBenchPoints != 5.5 {
		t.Errorf("expected 5.5 for roster 4, got %v", r4.TotalBenchPoints)
	}

	if len(savedMatchups) != 2 {
		t.Fatalf("expected 2 matchups, got %d", len(savedMatchups))
	}
	if savedMatchups[0].WinnerRosterID != 2 || savedMatchups[0].MarginOfVictory != 7.7 {
		t.Errorf("expected roster 2 winning by 7.7, got %+v", savedMatchups[0])
	}
	if savedMatchups[1].WinnerRosterID != 3 || savedMatchups[1].MarginOfVictory != 3.5 {
		t.Errorf("expected roster 3 winning by 3.5, got %+v", savedMatchups[1])
	}

	for _, r := range savedResults {
		if !r.Recorded.Equal(f.clock.Now().UTC()) {
			t.Errorf("expected recorded time from the clock, got %v", r.Recorded)
		}
	}
}

func TestSyncWeek_unplayedWeekIsNoop(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.db.On("SaveTeams", mock.Anything, mock.Anything).Return(nil)

	if err := f.ctrl.SyncWeek(ctx, 16); err != nil {
		t.Fatalf("error syncing unplayed week: %v", err)
	}

	f.db.AssertNotCalled(t, "SaveWeeklyResults", mock.Anything, mock.Anything, mock.Anything)
	f.db.AssertNotCalled(t, "SaveMatchups", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncWeek_dbError(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	dbErr := errors.New("connection lost")
	f.db.On("SaveTeams", mock.Anything, mock.Anything).Return(dbErr)

	if err := f.ctrl.SyncWeek(ctx, 1); !errors.Is(err, dbErr) {
		t.Errorf("expected db error to surface, got: %v", err)
	}
}

func TestSyncSeason(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.db.On("SaveTeams", mock.Anything, mock.Anything).Return(nil)
	f.db.On("SaveWeeklyResults", mock.Anything, 1, mock.Anything).Return(nil)
	f.db.On("SaveMatchups", mock.Anything, 1, mock.Anything).Return(nil)
	f.db.On("SaveWeeklyResults", mock.Anything, 2, mock.Anything).Return(nil)
	f.db.On("SaveMatchups", mock.Anything, 2, mock.Anything).Return(nil)

	// The fake NFL state says the season is in week 2.
	if err := f.ctrl.SyncSeason(ctx); err != nil {
		t.Fatalf("error syncing season: %v", err)
	}
	f.db.AssertExpectations(t)
}

func TestSyncSeason_badWeekIsSkipped(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.db.On("SaveTeams", mock.Anything, mock.Anything).Return(nil)
	f.db.On("SaveWeeklyResults", mock.Anything, 1, mock.Anything).Return(errors.New("connection lost"))
	f.db.On("SaveWeeklyResults", mock.Anything, 2, mock.Anything).Return(nil)
	f.db.On("SaveMatchups", mock.Anything, 2, mock.Anything).Return(nil)

	// Week 1 fails to store, week 2 must still be synced.
	if err := f.ctrl.SyncSeason(ctx); err != nil {
		t.Fatalf("error syncing season: %v", err)
	}
	f.db.AssertExpectations(t)
}

func TestSyncSeason_sleeperError(t *testing.T) {
	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("LoadPlayers").Return([]model.Player{}, nil)

	stateErr := errors.New("sleeper unavailable")
	mockSleeper.On("GetNFLState").Return(nil, stateErr)

	dataDir := t.TempDir()
	cache := players.NewCache(mockSleeper, filepath.Join(dataDir, "players.json"), clock.NewMock())
	if err := cache.Load(); err != nil {
		t.Fatalf("error loading player cache: %v", err)
	}
	store, err := export.NewStore(dataDir)
	if err != nil {
		t.Fatalf("error creating export store: %v", err)
	}

	ctrl, err := New(clock.NewMock(), mockSleeper, &mockdb.DB{}, cache, store, testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	if err := ctrl.SyncSeason(context.Background()); !errors.Is(err, stateErr) {
		t.Errorf("expected sleeper error to surface, got: %v", err)
	}
}

func TestGetStandings(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	results := []model.WeeklyBenchResult{
		{Week: 1, RosterID: 1, TeamName: "Hop Devils", TotalBenchPoints: 10.0},
		{Week: 1, RosterID: 2, TeamName: "Lager Heads", TotalBenchPoints: 20.0},
	}
	matchups := []model.BenchMatchup{
		{Week: 1, MatchupID: 1, Team1RosterID: 1, Team2RosterID: 2, WinnerRosterID: 2},
	}
	f.db.On("GetAllWeeklyResults", mock.Anything).Return(results, nil)
	f.db.On("GetAllMatchups", mock.Anything).Return(matchups, nil)

	standings, err := f.ctrl.GetStandings(ctx)
	if err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(standings))
	}
	if standings[0].RosterID != 2 || standings[0].Wins != 1 {
		t.Errorf("expected roster 2 on top with a win, got %+v", standings[0])
	}
}

func TestGetTeamStandings_noSyncedWeeks(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.db.On("GetAllWeeklyResults", mock.Anything).Return(nil, nil)
	f.db.On("GetAllMatchups", mock.Anything).Return(nil, nil)
	f.db.On("GetTeam", mock.Anything, 3).Return(&model.Team{RosterID: 3, OwnerID: "owner-c", TeamName: "Stout Hearts"}, nil)

	s, err := f.ctrl.GetTeamStandings(ctx, 3)
	if err != nil {
		t.Fatalf("error getting team standings: %v", err)
	}
	if s.TeamName != "Stout Hearts" || s.TotalWeeks != 0 {
		t.Errorf("expected empty standings for known team, got %+v", s)
	}
}

func TestGetTeamStandings_unknownTeam(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	f.db.On("GetAllWeeklyResults", mock.Anything).Return(nil, nil)
	f.db.On("GetAllMatchups", mock.Anything).Return(nil, nil)
	f.db.On("GetTeam", mock.Anything, 99).Return(nil, db.ErrTeamNotFound)

	if _, err := f.ctrl.GetTeamStandings(ctx, 99); !errors.Is(err, db.ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got: %v", err)
	}
}

func TestGetMatchups_weekZeroReturnsSeason(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	all := []model.BenchMatchup{
		{Week: 1, MatchupID: 1}, {Week: 2, MatchupID: 1},
	}
	f.db.On("GetAllMatchups", mock.Anything).Return(all, nil)

	matchups, err := f.ctrl.GetMatchups(ctx, 0)
	if err != nil {
		t.Fatalf("error getting matchups: %v", err)
	}
	if len(matchups) != 2 {
		t.Errorf("expected full season, got %d matchups", len(matchups))
	}
	f.db.AssertNotCalled(t, "GetMatchups", mock.Anything, mock.Anything)
}

func TestExportDashboard(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	results := []model.WeeklyBenchResult{
		{Week: 1, RosterID: 1, TeamName: "Hop Devils", TotalBenchPoints: 10.0, BenchPlayers: []model.BenchPlayer{}},
	}
	f.db.On("GetAllWeeklyResults", mock.Anything).Return(results, nil)
	f.db.On("GetAllMatchups", mock.Anything).Return(nil, nil)

	if err := f.ctrl.ExportDashboard(ctx); err != nil {
		t.Fatalf("error exporting dashboard: %v", err)
	}

	for _, name := range []string{
		"weekly_results.csv", "weekly_matchups.csv", "season_standings.csv",
		"standings.json", "matchups.json", "analytics.json", "teams.json", "weekly-results.json",
	} {
		if _, err := os.Stat(filepath.Join(f.dataDir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}
