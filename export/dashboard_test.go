package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tom-Gray/beerLeague/bench"
)

func TestWriteDashboard(t *testing.T) {
	s := testStore(t)
	results := testResults()
	matchups := testMatchups()
	standings := bench.ComputeStandings(results, matchups)

	if err := s.WriteDashboard(results, matchups, standings); err != nil {
		t.Fatalf("error writing dashboard: %v", err)
	}

	for _, name := range []string{standingsFile, matchupsFile, analyticsFile, teamsFile, weeklyResultsFile} {
		if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteDashboard_standingsShape(t *testing.T) {
	s := testStore(t)
	results := testResults()
	matchups := testMatchups()
	standings := bench.ComputeStandings(results, matchups)

	if err := s.WriteDashboard(results, matchups, standings); err != nil {
		t.Fatalf("error writing dashboard: %v", err)
	}

	var loaded []StandingView
	readJSON(t, s, standingsFile, &loaded)

	if len(loaded) != 2 {
		t.Fatalf("expected 2 standings, got %d", len(loaded))
	}
	first := loaded[0]
	if first.Team.RosterID != 1 || first.Team.TeamName != "Hop Devils" {
		t.Errorf("unexpected leader: %+v", first.Team)
	}
	if first.Wins != 1 || first.Ties != 1 {
		t.Errorf("expected 1 win and 1 tie, got %d/%d", first.Wins, first.Ties)
	}
}

func TestWriteDashboard_tieMatchupHasNullWinner(t *testing.T) {
	s := testStore(t)
	results := testResults()
	matchups := testMatchups()
	standings := bench.ComputeStandings(results, matchups)

	if err := s.WriteDashboard(results, matchups, standings); err != nil {
		t.Fatalf("error writing dashboard: %v", err)
	}

	var loaded []MatchupView
	readJSON(t, s, matchupsFile, &loaded)

	if len(loaded) != 2 {
		t.Fatalf("expected 2 matchups, got %d", len(loaded))
	}

	decided := loaded[0]
	if decided.Winner == nil || decided.Winner.RosterID != 1 {
		t.Errorf("expected roster 1 as winner, got %+v", decided.Winner)
	}
	if decided.MarginOfVictory == nil || *decided.MarginOfVictory != 7.5 {
		t.Errorf("expected margin 7.5, got %v", decided.MarginOfVictory)
	}
	if len(decided.Team1.BenchPlayers) != 1 {
		t.Errorf("expected bench detail joined in, got %d players", len(decided.Team1.BenchPlayers))
	}

	tie := loaded[1]
	if tie.Winner != nil {
		t.Errorf("expected null winner for a tie, got %+v", tie.Winner)
	}
	if tie.MarginOfVictory != nil {
		t.Errorf("expected null margin for a tie, got %v", *tie.MarginOfVictory)
	}
}

func TestWriteDashboard_teams(t *testing.T) {
	s := testStore(t)
	results := testResults()

	if err := s.WriteDashboard(results, nil, nil); err != nil {
		t.Fatalf("error writing dashboard: %v", err)
	}

	var loaded []TeamRef
	readJSON(t, s, teamsFile, &loaded)

	expected := []TeamRef{
		{RosterID: 1, TeamName: "Hop Devils", OwnerID: "owner-a"},
		{RosterID: 2, TeamName: "Lager, Heads", OwnerID: "owner-b"},
	}
	if len(loaded) != len(expected) {
		t.Fatalf("expected %d teams, got %d", len(expected), len(loaded))
	}
	for i := range expected {
		if loaded[i] != expected[i] {
			t.Errorf("team %d: expected %+v, got %+v", i, expected[i], loaded[i])
		}
	}
}

func TestWriteDashboard_emptySeason(t *testing.T) {
	s := testStore(t)

	if err := s.WriteDashboard(nil, nil, nil); err != nil {
		t.Fatalf("error writing dashboard: %v", err)
	}

	var analytics AnalyticsView
	readJSON(t, s, analyticsFile, &analytics)

	if analytics.LeagueStats.TotalWeeks != 0 {
		t.Errorf("expected 0 weeks, got %d", analytics.LeagueStats.TotalWeeks)
	}
	if analytics.WeeklyTrends == nil || len(analytics.WeeklyTrends) != 0 {
		t.Errorf("expected empty trends, got %v", analytics.WeeklyTrends)
	}
}

func readJSON(t *testing.T, s *Store, name string, out any) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		t.Fatalf("error reading %s: %v", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("error parsing %s: %v", name, err)
	}
}
