package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
)

// Store writes and reads export files under a single data directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(filename string) string {
	return filepath.Join(s.dir, filename)
}

var weeklyResultColumns = []string{
	"week", "roster_id", "owner_id", "team_name",
	"total_bench_points", "bench_player_count", "date_recorded",
	"bench_players_detail",
}

// SaveWeeklyResults writes results as CSV. The bench player detail is
// embedded as a JSON column so the file stays one row per team-week.
func (s *Store) SaveWeeklyResults(results []model.WeeklyBenchResult, filename string) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		detail, err := json.Marshal(playerLines(r.BenchPlayers))
		if err != nil {
			return fmt.Errorf("error encoding bench detail for roster %d week %d: %w", r.RosterID, r.Week, err)
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Week),
			strconv.Itoa(r.RosterID),
			r.OwnerID,
			r.TeamName,
			formatFloat(r.TotalBenchPoints),
			strconv.Itoa(r.BenchPlayerCount),
			r.Recorded.Format(time.RFC3339Nano),
			string(detail),
		})
	}
	return s.writeCSV(filename, weeklyResultColumns, rows)
}

// LoadWeeklyResults reads a file written by SaveWeeklyResults. A
// missing file is not an error, it just means no history yet. A
// malformed row aborts the whole load since a partial history would
// silently skew the standings.
func (s *Store) LoadWeeklyResults(filename string) ([]model.WeeklyBenchResult, error) {
	rows, err := s.readCSV(filename, weeklyResultColumns)
	if err != nil {
		return nil, err
	}

	results := make([]model.WeeklyBenchResult, 0, len(rows))
	for i, row := range rows {
		r, err := parseWeeklyResult(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filename, i+1, err)
		}
		results = append(results, r)
	}
	return results, nil
}

func parseWeeklyResult(row []string) (model.WeeklyBenchResult, error) {
	var r model.WeeklyBenchResult
	var err error

	if r.Week, err = strconv.Atoi(row[0]); err != nil {
		return r, fmt.Errorf("bad week %q: %w", row[0], err)
	}
	if r.RosterID, err = strconv.Atoi(row[1]); err != nil {
		return r, fmt.Errorf("bad roster_id %q: %w", row[1], err)
	}
	r.OwnerID = row[2]
	r.TeamName = row[3]
	if r.TotalBenchPoints, err = strconv.ParseFloat(row[4], 64); err != nil {
		return r, fmt.Errorf("bad total_bench_points %q: %w", row[4], err)
	}
	if r.BenchPlayerCount, err = strconv.Atoi(row[5]); err != nil {
		return r, fmt.Errorf("bad bench_player_count %q: %w", row[5], err)
	}
	if r.Recorded, err = time.Parse(time.RFC3339Nano, row[6]); err != nil {
		return r, fmt.Errorf("bad date_recorded %q: %w", row[6], err)
	}

	var lines []PlayerLine
	if err := json.Unmarshal([]byte(row[7]), &lines); err != nil {
		return r, fmt.Errorf("bad bench_players_detail: %w", err)
	}
	r.BenchPlayers = make([]model.BenchPlayer, 0, len(lines))
	for _, l := range lines {
		r.BenchPlayers = append(r.BenchPlayers, model.BenchPlayer{
			PlayerID:   l.PlayerID,
			PlayerName: l.Name,
			Position:   model.ParsePosition(l.Position),
			Team:       model.ParseTeam(l.Team),
			Points:     l.Points,
			Week:       r.Week,
			RosterID:   r.RosterID,
			OwnerID:    r.OwnerID,
		})
	}

	return r, nil
}

var matchupColumns = []string{
	"week", "matchup_id", "team1_roster_id", "team1_name", "team1_bench_points",
	"team2_roster_id", "team2_name", "team2_bench_points",
	"winner_roster_id", "margin_of_victory", "date_recorded",
}

func (s *Store) SaveMatchups(matchups []model.BenchMatchup, filename string) error {
	rows := make([][]string, 0, len(matchups))
	for _, m := range matchups {
		rows = append(rows, []string{
			strconv.Itoa(m.Week),
			strconv.Itoa(m.MatchupID),
			strconv.Itoa(m.Team1RosterID),
			m.Team1Name,
			formatFloat(m.Team1Points),
			strconv.Itoa(m.Team2RosterID),
			m.Team2Name,
			formatFloat(m.Team2Points),
			strconv.Itoa(m.WinnerRosterID),
			formatFloat(m.MarginOfVictory),
			m.Recorded.Format(time.RFC3339Nano),
		})
	}
	return s.writeCSV(filename, matchupColumns, rows)
}

func (s *Store) LoadMatchups(filename string) ([]model.BenchMatchup, error) {
	rows, err := s.readCSV(filename, matchupColumns)
	if err != nil {
		return nil, err
	}

	matchups := make([]model.BenchMatchup, 0, len(rows))
	for i, row := range rows {
		m, err := parseMatchup(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filename, i+1, err)
		}
		matchups = append(matchups, m)
	}
	return matchups, nil
}

func parseMatchup(row []string) (model.BenchMatchup, error) {
	var m model.BenchMatchup
	var err error

	if m.Week, err = strconv.Atoi(row[0]); err != nil {
		return m, fmt.Errorf("bad week %q: %w", row[0], err)
	}
	if m.MatchupID, err = strconv.Atoi(row[1]); err != nil {
		return m, fmt.Errorf("bad matchup_id %q: %w", row[1], err)
	}
	if m.Team1RosterID, err = strconv.Atoi(row[2]); err != nil {
		return m, fmt.Errorf("bad team1_roster_id %q: %w", row[2], err)
	}
	m.Team1Name = row[3]
	if m.Team1Points, err = strconv.ParseFloat(row[4], 64); err != nil {
		return m, fmt.Errorf("bad team1_bench_points %q: %w", row[4], err)
	}
	if m.Team2RosterID, err = strconv.Atoi(row[5]); err != nil {
		return m, fmt.Errorf("bad team2_roster_id %q: %w", row[5], err)
	}
	m.Team2Name = row[6]
	if m.Team2Points, err = strconv.ParseFloat(row[7], 64); err != nil {
		return m, fmt.Errorf("bad team2_bench_points %q: %w", row[7], err)
	}
	if m.WinnerRosterID, err = strconv.Atoi(row[8]); err != nil {
		return m, fmt.Errorf("bad winner_roster_id %q: %w", row[8], err)
	}
	if m.MarginOfVictory, err = strconv.ParseFloat(row[9], 64); err != nil {
		return m, fmt.Errorf("bad margin_of_victory %q: %w", row[9], err)
	}
	if m.Recorded, err = time.Parse(time.RFC3339Nano, row[10]); err != nil {
		return m, fmt.Errorf("bad date_recorded %q: %w", row[10], err)
	}

	return m, nil
}

var standingsColumns = []string{
	"rank", "roster_id", "owner_id", "team_name", "total_weeks",
	"wins", "losses", "ties", "win_percentage", "total_bench_points",
	"average_bench_points", "best_week_points", "best_week_number",
	"worst_week_points", "worst_week_number",
}

// SaveStandings writes the season summary. The rank column is the
// position in the given slice, which is already display-ordered.
func (s *Store) SaveStandings(standings []model.SeasonStandings, filename string) error {
	rows := make([][]string, 0, len(standings))
	for i, st := range standings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(st.RosterID),
			st.OwnerID,
			st.TeamName,
			strconv.Itoa(st.TotalWeeks),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.Ties),
			formatFloat(st.WinPercentage),
			formatFloat(st.TotalBenchPoints),
			formatFloat(st.AverageBenchPoint),
			formatFloat(st.BestWeekPoints),
			strconv.Itoa(st.BestWeekNumber),
			formatFloat(st.WorstWeekPoints),
			strconv.Itoa(st.WorstWeekNumber),
		})
	}
	return s.writeCSV(filename, standingsColumns, rows)
}

func (s *Store) writeCSV(filename string, header []string, rows [][]string) error {
	f, err := os.Create(s.path(filename))
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("error writing %s header: %w", filename, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}

func (s *Store) readCSV(filename string, header []string) ([][]string, error) {
	f, err := os.Open(s.path(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening %s: %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
