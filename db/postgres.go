package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTeamNotFound error = errors.New("team not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) SaveTeams(ctx context.Context, teams []model.Team) error {
	const query = `INSERT INTO teams (roster_id, owner_id, team_name)
		VALUES (@rosterID, @ownerID, @teamName)
		ON CONFLICT (roster_id) DO UPDATE
			SET owner_id=@ownerID, team_name=@teamName, updated=@updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range teams {
		args := pgx.NamedArgs{
			"rosterID": t.RosterID,
			"ownerID":  t.OwnerID,
			"teamName": t.TeamName,
			"updated":  db.timestamptz(),
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving team %d: %w", t.RosterID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing teams transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT roster_id, owner_id, team_name FROM teams ORDER BY roster_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}

	teams := make([]model.Team, 0, 12)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.RosterID, &t.OwnerID, &t.TeamName); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, rosterID int) (*model.Team, error) {
	const query = `SELECT roster_id, owner_id, team_name FROM teams WHERE roster_id=@rosterID`

	args := pgx.NamedArgs{
		"rosterID": rosterID,
	}
	var t model.Team
	err := db.pool.QueryRow(ctx, query, args).Scan(&t.RosterID, &t.OwnerID, &t.TeamName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %d: %w", rosterID, err)
	}
	return &t, nil
}

func (db *postgresDB) SaveWeeklyResults(ctx context.Context, week int, results []model.WeeklyBenchResult) error {
	const deleteResults = `DELETE FROM weekly_results WHERE week=@week`

	const insertResult = `INSERT INTO weekly_results (
			week, roster_id, owner_id, team_name,
			total_bench_points, bench_player_count, recorded
		) VALUES (
			@week, @rosterID, @ownerID, @teamName,
			@totalBenchPoints, @benchPlayerCount, @recorded
		)`

	const insertPlayer = `INSERT INTO bench_players (
			week, roster_id, owner_id, player_id, player_name,
			position, team, points
		) VALUES (
			@week, @rosterID, @ownerID, @playerID, @playerName,
			@position, @team, @points
		)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Deleting cascades to the week's bench_players rows.
	if _, err := tx.Exec(ctx, deleteResults, pgx.NamedArgs{"week": week}); err != nil {
		return fmt.Errorf("error clearing week %d results: %w", week, err)
	}

	for _, r := range results {
		args := pgx.NamedArgs{
			"week":             r.Week,
			"rosterID":         r.RosterID,
			"ownerID":          r.OwnerID,
			"teamName":         r.TeamName,
			"totalBenchPoints": r.TotalBenchPoints,
			"benchPlayerCount": r.BenchPlayerCount,
			"recorded": pgtype.Timestamptz{
				Time:  r.Recorded,
				Valid: true,
			},
		}
		if _, err := tx.Exec(ctx, insertResult, args); err != nil {
			return fmt.Errorf("error inserting week %d result for roster %d: %w", week, r.RosterID, err)
		}

		for _, p := range r.BenchPlayers {
			args := pgx.NamedArgs{
				"week":       p.Week,
				"rosterID":   p.RosterID,
				"ownerID":    p.OwnerID,
				"playerID":   p.PlayerID,
				"playerName": p.PlayerName,
				"position":   &DBPosition{position: p.Position},
				"team":       &DBNFLTeam{team: p.Team},
				"points":     p.Points,
			}
			if _, err := tx.Exec(ctx, insertPlayer, args); err != nil {
				return fmt.Errorf("error inserting bench player %s for roster %d: %w", p.PlayerID, p.RosterID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing week %d results: %w", week, err)
	}
	return nil
}

func (db *postgresDB) GetWeeklyResults(ctx context.Context, week int) ([]model.WeeklyBenchResult, error) {
	const query = `SELECT week, roster_id, owner_id, team_name,
				total_bench_points, bench_player_count, recorded
			FROM weekly_results WHERE week=@week ORDER BY roster_id`

	return db.queryWeeklyResults(ctx, query, pgx.NamedArgs{"week": week})
}

func (db *postgresDB) GetAllWeeklyResults(ctx context.Context) ([]model.WeeklyBenchResult, error) {
	const query = `SELECT week, roster_id, owner_id, team_name,
				total_bench_points, bench_player_count, recorded
			FROM weekly_results ORDER BY week, roster_id`

	return db.queryWeeklyResults(ctx, query, pgx.NamedArgs{})
}

func (db *postgresDB) queryWeeklyResults(ctx context.Context, query string, args pgx.NamedArgs) ([]model.WeeklyBenchResult, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying weekly results: %w", err)
	}

	results := make([]model.WeeklyBenchResult, 0, 16)
	for rows.Next() {
		var r model.WeeklyBenchResult
		var recorded pgtype.Timestamptz
		err := rows.Scan(&r.Week, &r.RosterID, &r.OwnerID, &r.TeamName,
			&r.TotalBenchPoints, &r.BenchPlayerCount, &recorded)
		if err != nil {
			return nil, fmt.Errorf("error scanning weekly result: %w", err)
		}
		r.Recorded = recorded.Time.UTC()
		results = append(results, r)
	}
	rows.Close()

	for i := range results {
		players, err := db.getBenchPlayers(ctx, results[i].Week, results[i].RosterID)
		if err != nil {
			return nil, err
		}
		results[i].BenchPlayers = players
	}
	return results, nil
}

func (db *postgresDB) getBenchPlayers(ctx context.Context, week, rosterID int) ([]model.BenchPlayer, error) {
	const query = `SELECT player_id, player_name, position, team, points, owner_id
			FROM bench_players WHERE week=@week AND roster_id=@rosterID
			ORDER BY points DESC, player_id`

	args := pgx.NamedArgs{
		"week":     week,
		"rosterID": rosterID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying bench players: %w", err)
	}

	players := make([]model.BenchPlayer, 0, 8)
	for rows.Next() {
		p := model.BenchPlayer{
			Week:     week,
			RosterID: rosterID,
		}
		var pos DBPosition
		var team DBNFLTeam
		err := rows.Scan(&p.PlayerID, &p.PlayerName, &pos, &team, &p.Points, &p.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("error scanning bench player: %w", err)
		}
		p.Position = pos.position
		p.Team = team.team
		players = append(players, p)
	}
	return players, nil
}

func (db *postgresDB) SaveMatchups(ctx context.Context, week int, matchups []model.BenchMatchup) error {
	const deleteMatchups = `DELETE FROM matchups WHERE week=@week`

	const insertMatchup = `INSERT INTO matchups (
			week, matchup_id, team1_roster_id, team1_name, team1_points,
			team2_roster_id, team2_name, team2_points,
			winner_roster_id, margin_of_victory, recorded
		) VALUES (
			@week, @matchupID, @team1RosterID, @team1Name, @team1Points,
			@team2RosterID, @team2Name, @team2Points,
			@winnerRosterID, @marginOfVictory, @recorded
		)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteMatchups, pgx.NamedArgs{"week": week}); err != nil {
		return fmt.Errorf("error clearing week %d matchups: %w", week, err)
	}

	for _, m := range matchups {
		args := pgx.NamedArgs{
			"week":            m.Week,
			"matchupID":       m.MatchupID,
			"team1RosterID":   m.Team1RosterID,
			"team1Name":       m.Team1Name,
			"team1Points":     m.Team1Points,
			"team2RosterID":   m.Team2RosterID,
			"team2Name":       m.Team2Name,
			"team2Points":     m.Team2Points,
			"winnerRosterID":  m.WinnerRosterID,
			"marginOfVictory": m.MarginOfVictory,
			"recorded": pgtype.Timestamptz{
				Time:  m.Recorded,
				Valid: true,
			},
		}
		if _, err := tx.Exec(ctx, insertMatchup, args); err != nil {
			return fmt.Errorf("error inserting week %d matchup %d: %w", week, m.MatchupID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing week %d matchups: %w", week, err)
	}
	return nil
}

func (db *postgresDB) GetMatchups(ctx context.Context, week int) ([]model.BenchMatchup, error) {
	const query = `SELECT week, matchup_id, team1_roster_id, team1_name, team1_points,
				team2_roster_id, team2_name, team2_points,
				winner_roster_id, margin_of_victory, recorded
			FROM matchups WHERE week=@week ORDER BY matchup_id`

	return db.queryMatchups(ctx, query, pgx.NamedArgs{"week": week})
}

func (db *postgresDB) GetAllMatchups(ctx context.Context) ([]model.BenchMatchup, error) {
	const query = `SELECT week, matchup_id, team1_roster_id, team1_name, team1_points,
				team2_roster_id, team2_name, team2_points,
				winner_roster_id, margin_of_victory, recorded
			FROM matchups ORDER BY week, matchup_id`

	return db.queryMatchups(ctx, query, pgx.NamedArgs{})
}

func (db *postgresDB) queryMatchups(ctx context.Context, query string, args pgx.NamedArgs) ([]model.BenchMatchup, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying matchups: %w", err)
	}

	matchups := make([]model.BenchMatchup, 0, 8)
	for rows.Next() {
		var m model.BenchMatchup
		var recorded pgtype.Timestamptz
		err := rows.Scan(&m.Week, &m.MatchupID,
			&m.Team1RosterID, &m.Team1Name, &m.Team1Points,
			&m.Team2RosterID, &m.Team2Name, &m.Team2Points,
			&m.WinnerRosterID, &m.MarginOfVictory, &recorded)
		if err != nil {
			return nil, fmt.Errorf("error scanning matchup: %w", err)
		}
		m.Recorded = recorded.Time.UTC()
		matchups = append(matchups, m)
	}
	return matchups, nil
}

func (db *postgresDB) timestamptz() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

type DBNFLTeam struct {
	team *model.NFLTeam
}

func (t *DBNFLTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBNFLTeam) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: t.team.String(),
		Valid:  true,
	}, nil
}
