package model

import (
	"time"
)

// BenchPlayer is a rostered player who was not in the starting lineup
// for a given week. Derived, never fetched directly.
type BenchPlayer struct {
	PlayerID   string
	PlayerName string
	Position   Position
	Team       *NFLTeam
	Points     float64
	Week       int
	RosterID   int
	OwnerID    string
}

// WeeklyBenchResult is the unit of historical record: one per
// (roster, week). TotalBenchPoints is always the sum of the bench
// players' points and BenchPlayerCount their number.
type WeeklyBenchResult struct {
	Week             int
	RosterID         int
	OwnerID          string
	TeamName         string
	BenchPlayers     []BenchPlayer
	TotalBenchPoints float64
	BenchPlayerCount int
	Recorded         time.Time
}

// BenchMatchup scores one scheduled head-to-head pairing for a week.
// WinnerRosterID is 0 when the two sides tied exactly; ties are
// recorded with a zero margin and no winner.
type BenchMatchup struct {
	Week            int
	MatchupID       int
	Team1RosterID   int
	Team1Name       string
	Team1Points     float64
	Team2RosterID   int
	Team2Name       string
	Team2Points     float64
	WinnerRosterID  int
	MarginOfVictory float64
	Recorded        time.Time
}

// IsTie reports whether the matchup ended without a winner.
func (m *BenchMatchup) IsTie() bool {
	return m.WinnerRosterID == 0
}

// Involves reports whether rosterID played in this matchup.
func (m *BenchMatchup) Involves(rosterID int) bool {
	return m.Team1RosterID == rosterID || m.Team2RosterID == rosterID
}

// Opponent returns the roster id of the other side of the matchup, or
// 0 if rosterID was not part of it.
func (m *BenchMatchup) Opponent(rosterID int) int {
	switch rosterID {
	case m.Team1RosterID:
		return m.Team2RosterID
	case m.Team2RosterID:
		return m.Team1RosterID
	default:
		return 0
	}
}
