package config

import (
	"errors"
	"testing"
	"time"
)

func TestFromEnv_defaults(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "871862798520845312")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.LeagueID != "871862798520845312" {
		t.Errorf("unexpected league id: %s", c.LeagueID)
	}
	if c.Port != 3000 {
		t.Errorf("expected default port, got %d", c.Port)
	}
	if c.DataDir != "data" {
		t.Errorf("expected default data dir, got %s", c.DataDir)
	}
	if c.SyncFrequency != time.Hour {
		t.Errorf("expected default sync frequency, got %v", c.SyncFrequency)
	}
	if c.PlayersFile() != "data/players.json" {
		t.Errorf("unexpected players file: %s", c.PlayersFile())
	}
}

func TestFromEnv_overrides(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "871862798520845312")
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_DIR", "/var/lib/beerleague")
	t.Setenv("SYNC_FREQUENCY", "30m")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Port != 8080 {
		t.Errorf("unexpected port: %d", c.Port)
	}
	if c.DataDir != "/var/lib/beerleague" {
		t.Errorf("unexpected data dir: %s", c.DataDir)
	}
	if c.SyncFrequency != 30*time.Minute {
		t.Errorf("unexpected sync frequency: %v", c.SyncFrequency)
	}
}

func TestFromEnv_missingLeagueID(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "")

	if _, err := FromEnv(); !errors.Is(err, ErrMissingLeagueID) {
		t.Errorf("expected ErrMissingLeagueID, got: %v", err)
	}
}

func TestFromEnv_badPort(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "871862798520845312")
	t.Setenv("PORT", "not-a-port")

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for a bad port")
	}
}

func TestFromEnv_badSyncFrequency(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "871862798520845312")
	t.Setenv("SYNC_FREQUENCY", "weekly")

	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for a bad sync frequency")
	}
}
