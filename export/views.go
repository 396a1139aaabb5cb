// Package export renders bench scoring data into the CSV snapshots and
// dashboard JSON files consumed outside the service.
package export

import (
	"slices"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
)

// TeamRef identifies a team in exported documents.
type TeamRef struct {
	RosterID int    `json:"roster_id"`
	TeamName string `json:"team_name"`
	OwnerID  string `json:"owner_id"`
}

// PlayerLine is one bench player's score in an exported document.
type PlayerLine struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
}

type StandingView struct {
	Team          TeamRef `json:"team"`
	TotalPoints   float64 `json:"total_points"`
	AveragePoints float64 `json:"average_points"`
	WeeksPlayed   int     `json:"weeks_played"`
	BestWeek      float64 `json:"best_week"`
	WorstWeek     float64 `json:"worst_week"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPercentage float64 `json:"win_percentage"`
}

type MatchupSide struct {
	RosterID     int          `json:"roster_id"`
	TeamName     string       `json:"team_name"`
	BenchPoints  float64      `json:"bench_points"`
	BenchPlayers []PlayerLine `json:"bench_players"`
}

// MatchupView is one head-to-head pairing. Winner and MarginOfVictory
// are null for ties.
type MatchupView struct {
	ID              int          `json:"id"`
	Week            int          `json:"week"`
	MatchupID       int          `json:"matchup_id"`
	Team1           MatchupSide  `json:"team1"`
	Team2           MatchupSide  `json:"team2"`
	Winner          *MatchupSide `json:"winner"`
	MarginOfVictory *float64     `json:"margin_of_victory"`
	DateRecorded    time.Time    `json:"date_recorded"`
}

type LeagueStatsView struct {
	TotalWeeks         int     `json:"total_weeks"`
	TotalTeams         int     `json:"total_teams"`
	TotalMatchups      int     `json:"total_matchups"`
	AverageWeeklyPoint float64 `json:"average_weekly_points"`
	HighestWeeklyScore float64 `json:"highest_weekly_score"`
	LowestWeeklyScore  float64 `json:"lowest_weekly_score"`
	TotalPointsScored  float64 `json:"total_points_scored"`
}

type TrendView struct {
	Week          int     `json:"week"`
	AveragePoints float64 `json:"average_points"`
	HighestScore  float64 `json:"highest_score"`
	LowestScore   float64 `json:"lowest_score"`
	TotalPoints   float64 `json:"total_points"`
	TeamsPlayed   int     `json:"teams_played"`
}

type AnalyticsView struct {
	LeagueStats     LeagueStatsView `json:"league_stats"`
	WeeklyTrends    []TrendView     `json:"weekly_trends"`
	TeamPerformance []StandingView  `json:"team_performance"`
}

type WeeklyResultView struct {
	Week             int          `json:"week"`
	RosterID         int          `json:"roster_id"`
	TeamName         string       `json:"team_name"`
	TotalBenchPoints float64      `json:"total_bench_points"`
	BenchPlayerCount int          `json:"bench_player_count"`
	DateRecorded     time.Time    `json:"date_recorded"`
	BenchPlayers     []PlayerLine `json:"bench_players"`
}

func playerLines(players []model.BenchPlayer) []PlayerLine {
	lines := make([]PlayerLine, 0, len(players))
	for _, p := range players {
		lines = append(lines, PlayerLine{
			PlayerID: p.PlayerID,
			Name:     p.PlayerName,
			Position: string(p.Position),
			Team:     p.Team.String(),
			Points:   p.Points,
		})
	}
	return lines
}

func StandingViews(standings []model.SeasonStandings) []StandingView {
	views := make([]StandingView, 0, len(standings))
	for _, s := range standings {
		views = append(views, StandingView{
			Team: TeamRef{
				RosterID: s.RosterID,
				TeamName: s.TeamName,
				OwnerID:  s.OwnerID,
			},
			TotalPoints:   s.TotalBenchPoints,
			AveragePoints: s.AverageBenchPoint,
			WeeksPlayed:   s.TotalWeeks,
			BestWeek:      s.BestWeekPoints,
			WorstWeek:     s.WorstWeekPoints,
			Wins:          s.Wins,
			Losses:        s.Losses,
			Ties:          s.Ties,
			WinPercentage: s.WinPercentage,
		})
	}
	return views
}

// MatchupViews joins matchups with the bench detail from the weekly
// results for the same roster and week.
func MatchupViews(matchups []model.BenchMatchup, results []model.WeeklyBenchResult) []MatchupView {
	type key struct {
		rosterID int
		week     int
	}
	detail := make(map[key][]PlayerLine)
	for _, r := range results {
		detail[key{rosterID: r.RosterID, week: r.Week}] = playerLines(r.BenchPlayers)
	}

	side := func(m model.BenchMatchup, rosterID int, name string, points float64) MatchupSide {
		players := detail[key{rosterID: rosterID, week: m.Week}]
		if players == nil {
			players = []PlayerLine{}
		}
		return MatchupSide{
			RosterID:     rosterID,
			TeamName:     name,
			BenchPoints:  points,
			BenchPlayers: players,
		}
	}

	views := make([]MatchupView, 0, len(matchups))
	for i, m := range matchups {
		v := MatchupView{
			ID:           i + 1,
			Week:         m.Week,
			MatchupID:    m.MatchupID,
			Team1:        side(m, m.Team1RosterID, m.Team1Name, m.Team1Points),
			Team2:        side(m, m.Team2RosterID, m.Team2Name, m.Team2Points),
			DateRecorded: m.Recorded,
		}
		if !m.IsTie() {
			winner := v.Team1
			if m.WinnerRosterID == m.Team2RosterID {
				winner = v.Team2
			}
			margin := m.MarginOfVictory
			v.Winner = &winner
			v.MarginOfVictory = &margin
		}
		views = append(views, v)
	}
	return views
}

func NewAnalyticsView(a *model.LeagueAnalytics) AnalyticsView {
	trends := make([]TrendView, 0, len(a.WeeklyTrends))
	for _, t := range a.WeeklyTrends {
		trends = append(trends, TrendView{
			Week:          t.Week,
			AveragePoints: t.AveragePoints,
			HighestScore:  t.HighestScore,
			LowestScore:   t.LowestScore,
			TotalPoints:   t.TotalPoints,
			TeamsPlayed:   t.TeamsPlayed,
		})
	}

	return AnalyticsView{
		LeagueStats: LeagueStatsView{
			TotalWeeks:         a.LeagueStats.TotalWeeks,
			TotalTeams:         a.LeagueStats.TotalTeams,
			TotalMatchups:      a.LeagueStats.TotalMatchups,
			AverageWeeklyPoint: a.LeagueStats.AverageWeeklyPoint,
			HighestWeeklyScore: a.LeagueStats.HighestWeeklyScore,
			LowestWeeklyScore:  a.LeagueStats.LowestWeeklyScore,
			TotalPointsScored:  a.LeagueStats.TotalPointsScored,
		},
		WeeklyTrends:    trends,
		TeamPerformance: StandingViews(a.TeamPerformance),
	}
}

// TeamRefs lists the unique teams seen in the weekly results, ordered
// by roster id.
func TeamRefs(results []model.WeeklyBenchResult) []TeamRef {
	seen := make(map[int]TeamRef)
	for _, r := range results {
		if _, found := seen[r.RosterID]; !found {
			seen[r.RosterID] = TeamRef{
				RosterID: r.RosterID,
				TeamName: r.TeamName,
				OwnerID:  r.OwnerID,
			}
		}
	}

	refs := make([]TeamRef, 0, len(seen))
	for _, ref := range seen {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b TeamRef) int {
		return a.RosterID - b.RosterID
	})
	return refs
}

func WeeklyResultViews(results []model.WeeklyBenchResult) []WeeklyResultView {
	views := make([]WeeklyResultView, 0, len(results))
	for _, r := range results {
		views = append(views, WeeklyResultView{
			Week:             r.Week,
			RosterID:         r.RosterID,
			TeamName:         r.TeamName,
			TotalBenchPoints: r.TotalBenchPoints,
			BenchPlayerCount: r.BenchPlayerCount,
			DateRecorded:     r.Recorded,
			BenchPlayers:     playerLines(r.BenchPlayers),
		})
	}
	return views
}
