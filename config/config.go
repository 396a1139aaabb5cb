// Package config collects the environment settings the service runs
// with. Call godotenv.Load before FromEnv if a .env file should be
// honored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultPort          = 3000
	defaultDataDir       = "data"
	defaultSyncFrequency = time.Hour
)

// ErrMissingLeagueID is returned when SLEEPER_LEAGUE_ID is not set.
// There is nothing to score without a league.
var ErrMissingLeagueID = errors.New("SLEEPER_LEAGUE_ID must be set")

type Config struct {
	// LeagueID is the Sleeper league to score. Required.
	LeagueID string
	// ConnString is the Postgres connection string.
	ConnString string
	// Port for the web server.
	Port int
	// DataDir holds the player cache snapshot, CSV snapshots, and
	// dashboard JSON files.
	DataDir string
	// SyncFrequency is how often the current week is re-synced.
	SyncFrequency time.Duration
	// AdminPass protects the /admin routes.
	AdminPass string
}

func FromEnv() (*Config, error) {
	c := &Config{
		LeagueID:      os.Getenv("SLEEPER_LEAGUE_ID"),
		ConnString:    os.Getenv("POSTGRES_CONN_STR"),
		Port:          defaultPort,
		DataDir:       defaultDataDir,
		SyncFrequency: defaultSyncFrequency,
		AdminPass:     os.Getenv("ADMIN_PASS"),
	}

	if c.LeagueID == "" {
		return nil, ErrMissingLeagueID
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("error parsing port number: %w", err)
		}
		c.Port = p
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		c.DataDir = dir
	}

	if freq := os.Getenv("SYNC_FREQUENCY"); freq != "" {
		f, err := time.ParseDuration(freq)
		if err != nil {
			return nil, fmt.Errorf("error parsing sync frequency: %w", err)
		}
		c.SyncFrequency = f
	}

	return c, nil
}

// PlayersFile is where the 24-hour player cache snapshot lives.
func (c *Config) PlayersFile() string {
	return filepath.Join(c.DataDir, "players.json")
}
